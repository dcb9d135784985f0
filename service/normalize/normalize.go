package normalize

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"warehouse.GO/service/spreadsheet"
)

// Normalize converts one row into a T whose mapstructure tags match the schema field names.
// It is total: the returned record is always usable, and any dropped values are
// described in the returned warnings.
func Normalize[T any](s Schema, row spreadsheet.Row) (T, []string) {
	var out T
	c := &collector{}
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			numberToStringHook(),
			trimStringHook(),
			statusHook(c),
			intHook(c),
			decimalHook(c),
			dateHook(c),
		),
		Result:     &out,
		TagName:    "mapstructure",
		ZeroFields: true,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return out, []string{fmt.Sprintf("decoder: %v", err)}
	}
	if err := dec.Decode(s.Canonical(row)); err != nil {
		c.add("%v", err)
	}
	return out, c.list
}

// NormalizeAll normalizes a batch. Warnings are prefixed with the 1-based record
// number; unknown columns are reported once each.
func NormalizeAll[T any](s Schema, rows []spreadsheet.Row) ([]T, []string) {
	var warnings []string
	for _, h := range s.Unknown(rows) {
		warnings = append(warnings, fmt.Sprintf("column %q: unknown, skipping", h))
	}
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		rec, ws := Normalize[T](s, row)
		for _, w := range ws {
			warnings = append(warnings, fmt.Sprintf("record %d: %s", i+1, w))
		}
		out = append(out, rec)
	}
	return out, warnings
}
