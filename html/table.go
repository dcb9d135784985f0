package html

import (
	"html/template"
	"slices"
	"strings"
)

// Row is one rendered table line.
type Row struct {
	Key     string
	Cells   []string
	Flagged bool
}

// HTML renders the row as a <tr>. Cell text is escaped.
func (r Row) HTML() template.HTML {
	var b strings.Builder
	b.WriteString(`<tr data-key="`)
	b.WriteString(template.HTMLEscapeString(r.Key))
	b.WriteString(`"`)
	if r.Flagged {
		b.WriteString(` class="flagged"`)
	}
	b.WriteString(">")
	for _, c := range r.Cells {
		b.WriteString("<td>")
		b.WriteString(template.HTMLEscapeString(c))
		b.WriteString("</td>")
	}
	b.WriteString("</tr>")
	return template.HTML(b.String())
}

// text is the searchable content of the row.
func (r Row) text() string {
	return strings.ToLower(strings.Join(r.Cells, "\x00"))
}

// RowFunc renders one record. It must not depend on anything but the record.
type RowFunc[T any] func(T) Row

// Markup turns a RowFunc into a record-to-markup template.
func Markup[T any](fn RowFunc[T]) func(T) template.HTML {
	return func(rec T) template.HTML { return fn(rec).HTML() }
}

// Table holds the rendered rows of one view. It never owns records.
type Table[T any] struct {
	Headers []string
	render  RowFunc[T]
	rows    []Row
}

func NewTable[T any](headers []string, render RowFunc[T]) *Table[T] {
	return &Table[T]{Headers: headers, render: render}
}

func (t *Table[T]) Clear() {
	t.rows = nil
}

func (t *Table[T]) AddRow(rec T) {
	t.rows = append(t.rows, t.render(rec))
}

// Fill replaces the rendered rows with recs.
func (t *Table[T]) Fill(recs []T) {
	t.Clear()
	for _, rec := range recs {
		t.AddRow(rec)
	}
}

func (t *Table[T]) Rows() []Row {
	return slices.Clone(t.rows)
}

func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Search returns the rendered rows whose text contains term, case-insensitively.
// An empty term returns every row.
func (t *Table[T]) Search(term string) []Row {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(t.rows)
	}
	var out []Row
	for _, r := range t.rows {
		if strings.Contains(r.text(), term) {
			out = append(out, r)
		}
	}
	return out
}
