package normalize

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	entity "warehouse.GO/model/entity"
	outboundEntity "warehouse.GO/model/entity/outbound"
)

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	dateType    = reflect.TypeOf(entity.Date{})
	statusType  = reflect.TypeOf(outboundEntity.Status(""))
)

// collector gathers coercion warnings for one row. Hooks never fail; they
// substitute the zero value and record what was dropped.
type collector struct {
	list []string
}

func (c *collector) add(format string, args ...interface{}) {
	c.list = append(c.list, fmt.Sprintf(format, args...))
}

func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch v := data.(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fmt.Sprint(data), nil
		}
		return data, nil
	}
}

func trimStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if s, ok := data.(string); ok && t.Kind() == reflect.String {
			return strings.TrimSpace(s), nil
		}
		return data, nil
	}
}

func statusHook(c *collector) mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != statusType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		if st, ok := outboundEntity.ParseStatus(s); ok {
			return st, nil
		}
		c.add("invalid status %q, using %s", s, outboundEntity.StatusPending)
		return outboundEntity.StatusPending, nil
	}
}

func intHook(c *collector) mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Int {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			n, ok := ParseInt(v)
			if !ok {
				c.add("invalid number %q, using 0", v)
			}
			return n, nil
		case float64:
			n, ok := roundInt(v)
			if !ok {
				c.add("invalid number %v, using 0", v)
			}
			return n, nil
		case float32:
			n, ok := roundInt(float64(v))
			if !ok {
				c.add("invalid number %v, using 0", v)
			}
			return n, nil
		case decimal.Decimal:
			n, ok := roundInt(v.InexactFloat64())
			if !ok {
				c.add("invalid number %s, using 0", v)
			}
			return n, nil
		}
		return data, nil
	}
}

func decimalHook(c *collector) mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case decimal.Decimal:
			return v, nil
		case string:
			d, ok := ParseDecimal(v)
			if !ok {
				c.add("invalid decimal %q, using 0", v)
			}
			return d, nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		}
		c.add("invalid decimal %v, using 0", data)
		return decimal.Zero, nil
	}
}

func dateHook(c *collector) mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != dateType {
			return data, nil
		}
		switch v := data.(type) {
		case entity.Date:
			return v, nil
		case string:
			if d, err := entity.ParseDate(v); err == nil {
				return d, nil
			}
			if serial, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				if d, ok := serialDate(serial); ok {
					return d, nil
				}
			}
			c.add("invalid date %q, left empty", v)
			return entity.Date{}, nil
		case float64:
			if d, ok := serialDate(v); ok {
				return d, nil
			}
		case int:
			if d, ok := serialDate(float64(v)); ok {
				return d, nil
			}
		}
		c.add("invalid date %v, left empty", data)
		return entity.Date{}, nil
	}
}

// serialDate converts a spreadsheet date serial number.
func serialDate(v float64) (entity.Date, bool) {
	if v <= 0 {
		return entity.Date{}, false
	}
	t, err := excelize.ExcelDateToTime(v, false)
	if err != nil {
		return entity.Date{}, false
	}
	return entity.DateOf(t), true
}

// ParseInt reads an integer written with optional thousands separators or a
// fractional part (rounded). ok is false for non-numeric input, which yields 0.
func ParseInt(s string) (int, bool) {
	s = stripNumber(s)
	if s == "" {
		return 0, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return roundInt(f)
	}
	return 0, false
}

// roundInt rounds f to the nearest int. ok is false when f is not finite or
// does not fit in an int.
func roundInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Round(f)
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// ParseDecimal is ParseInt for decimal quantities.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = stripNumber(s)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func stripNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimPrefix(s, "+")
}
