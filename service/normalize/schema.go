// Package normalize maps loosely keyed spreadsheet rows onto canonical records.
//
// Every canonical field has an ordered list of accepted source headers. The first
// header present with a non-empty value wins; otherwise the field keeps its default.
// Malformed numbers, decimals and dates fall back to zero and produce a warning.
// No row is ever rejected.
package normalize

import (
	"sort"
	"strings"

	"warehouse.GO/service/spreadsheet"
)

// Kind is the value type of a canonical field.
type Kind int

const (
	Text Kind = iota
	Int
	Decimal
	Date
	Status
)

// Field describes one canonical field. Name is the mapstructure tag of the
// record field and Header the column used on export. Aliases are further
// accepted source headers in priority order. Default replaces the zero value
// when no alias matches.
type Field struct {
	Name    string
	Header  string
	Aliases []string
	Kind    Kind
	Default interface{}
}

// Keys returns every accepted source header in priority order: the export
// header, the aliases, then the field name itself.
func (f Field) Keys() []string {
	keys := make([]string, 0, len(f.Aliases)+2)
	seen := make(map[string]bool, len(f.Aliases)+2)
	for _, k := range append(append([]string{f.Header}, f.Aliases...), f.Name) {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// Schema is the ordered field list of one domain.
type Schema struct {
	Domain string
	Fields []Field
}

// Headers returns the export headers in column order.
func (s Schema) Headers() []string {
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Header
	}
	return out
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// fold makes header matching tolerant of case and whitespace differences.
func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// Unknown lists the headers in rows that no field accepts, sorted.
func (s Schema) Unknown(rows []spreadsheet.Row) []string {
	known := make(map[string]bool)
	for _, f := range s.Fields {
		for _, k := range f.Keys() {
			known[fold(k)] = true
		}
	}
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		for k := range row {
			if known[fold(k)] || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Canonical resolves aliases for every field of row. Fields with no usable
// source value are omitted unless they carry a Default.
func (s Schema) Canonical(row spreadsheet.Row) map[string]interface{} {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// On a fold collision the lowest header in byte order wins.
	folded := make(map[string]string, len(row))
	for _, k := range keys {
		fk := fold(k)
		if _, dup := folded[fk]; !dup {
			folded[fk] = k
		}
	}

	out := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		if v, ok := resolve(row, folded, f); ok {
			out[f.Name] = v
			continue
		}
		if f.Default != nil {
			out[f.Name] = f.Default
		}
	}
	return out
}

// resolve returns the value of the first accepted header that is present and non-empty.
// An exact header match is preferred over a case/whitespace-insensitive one.
func resolve(row spreadsheet.Row, folded map[string]string, f Field) (interface{}, bool) {
	for _, key := range f.Keys() {
		if v, ok := row[key]; ok && !empty(v) {
			return v, true
		}
		if orig, ok := folded[fold(key)]; ok {
			if v := row[orig]; !empty(v) {
				return v, true
			}
		}
	}
	return nil, false
}

func empty(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	}
	return false
}
