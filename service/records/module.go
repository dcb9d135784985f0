// Package records binds each record domain's store to its spreadsheet schema
// and export layout.
package records

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"warehouse.GO/service/normalize"
	"warehouse.GO/service/spreadsheet"
	"warehouse.GO/service/store"
)

// Mode selects how an import batch is applied.
type Mode string

const (
	// ModeReplace swaps the whole sequence for the imported batch.
	ModeReplace Mode = "replace"
	// ModeMerge upserts the batch by key.
	ModeMerge Mode = "merge"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeReplace:
		return ModeReplace, nil
	case ModeMerge:
		return ModeMerge, nil
	}
	return "", fmt.Errorf("unknown import mode %q (want replace or merge)", s)
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	Domain        string        `json:"domain"`
	Mode          Mode          `json:"mode"`
	TotalRows     int           `json:"totalRows"`
	Added         int           `json:"added"`
	Updated       int           `json:"updated"`
	Skipped       int           `json:"skipped"`
	Warnings      []string      `json:"warnings"`
	ReadTime      time.Duration `json:"readTime"`
	NormalizeTime time.Duration `json:"normalizeTime"`
	StoreTime     time.Duration `json:"storeTime"`
	TotalTime     time.Duration `json:"totalTime"`
}

// Domain is the type-erased view of a Module used by import/export front ends.
type Domain interface {
	Name() string
	SheetName() string
	Headers() []string
	Len() int
	Load(ctx context.Context) error
	Delete(ctx context.Context, key string) error
	Reset(ctx context.Context) (int, error)
	Import(ctx context.Context, rows []spreadsheet.Row, mode Mode) (*ImportResult, error)
	ImportReader(ctx context.Context, r io.Reader, format spreadsheet.Format, mode Mode) (*ImportResult, error)
	ImportFile(ctx context.Context, path string, mode Mode) (*ImportResult, error)
	Export(term string) spreadsheet.Sheet
	OnChange(fn func(domain string))
}

// Module is one record domain: its store, import schema and export layout.
type Module[T any] struct {
	Store  *store.Store[T]
	Schema normalize.Schema
	// Sheet is the export sheet and file name.
	Sheet string
	// Cells returns export values keyed by schema field name.
	Cells func(T) map[string]interface{}
	// Validate checks form input. Imports skip it.
	Validate func(T) error
}

var _ Domain = (*Module[struct{}])(nil)

func (m *Module[T]) Name() string                   { return m.Store.Name() }
func (m *Module[T]) SheetName() string              { return m.Sheet }
func (m *Module[T]) Headers() []string              { return m.Schema.Headers() }
func (m *Module[T]) Len() int                       { return m.Store.Len() }
func (m *Module[T]) Load(ctx context.Context) error { return m.Store.Load(ctx) }
func (m *Module[T]) OnChange(fn func(string))       { m.Store.OnChange(fn) }

func (m *Module[T]) Delete(ctx context.Context, key string) error {
	return m.Store.Delete(ctx, key)
}

// Reset drops the saved records and restores the sample rows.
func (m *Module[T]) Reset(ctx context.Context) (int, error) {
	return m.Store.Reset(ctx)
}

// Create validates form input and adds it.
func (m *Module[T]) Create(ctx context.Context, rec T) (T, error) {
	if m.Validate != nil {
		if err := m.Validate(rec); err != nil {
			return rec, err
		}
	}
	return m.Store.Add(ctx, rec)
}

// Save validates form input and updates the stored record with the same key.
func (m *Module[T]) Save(ctx context.Context, rec T) (T, error) {
	if m.Validate != nil {
		if err := m.Validate(rec); err != nil {
			return rec, err
		}
	}
	return m.Store.Update(ctx, rec)
}

// Import normalizes rows and applies the whole batch, or nothing on failure.
func (m *Module[T]) Import(ctx context.Context, rows []spreadsheet.Row, mode Mode) (*ImportResult, error) {
	start := time.Now()
	result := &ImportResult{Domain: m.Name(), Mode: mode, TotalRows: len(rows)}

	recs, warnings := normalize.NormalizeAll[T](m.Schema, rows)
	result.Warnings = warnings
	result.NormalizeTime = time.Since(start)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	storeStart := time.Now()
	var (
		ch  store.Change
		err error
	)
	if mode == ModeMerge {
		ch, err = m.Store.Merge(ctx, recs)
	} else {
		ch, err = m.Store.Replace(ctx, recs)
	}
	result.StoreTime = time.Since(storeStart)
	result.TotalTime = time.Since(start)
	if err != nil {
		return result, fmt.Errorf("import %s: %w", m.Name(), err)
	}
	result.Added, result.Updated, result.Skipped = ch.Added, ch.Updated, ch.Skipped
	return result, nil
}

// ImportReader parses a spreadsheet from r and imports it.
func (m *Module[T]) ImportReader(ctx context.Context, r io.Reader, format spreadsheet.Format, mode Mode) (*ImportResult, error) {
	start := time.Now()
	rows, err := spreadsheet.Read(ctx, r, format)
	if err != nil {
		return nil, err
	}
	readTime := time.Since(start)
	result, err := m.Import(ctx, rows, mode)
	if result != nil {
		result.ReadTime = readTime
		result.TotalTime = time.Since(start)
	}
	return result, err
}

func (m *Module[T]) ImportFile(ctx context.Context, path string, mode Mode) (*ImportResult, error) {
	start := time.Now()
	rows, err := spreadsheet.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	readTime := time.Since(start)
	result, err := m.Import(ctx, rows, mode)
	if result != nil {
		result.ReadTime = readTime
		result.TotalTime = time.Since(start)
	}
	return result, err
}

// Row returns the export values of rec in schema column order.
func (m *Module[T]) Row(rec T) []interface{} {
	cells := m.Cells(rec)
	row := make([]interface{}, len(m.Schema.Fields))
	for i, f := range m.Schema.Fields {
		row[i] = cells[f.Name]
	}
	return row
}

// Export renders the records matching term as a sheet, one row per record.
func (m *Module[T]) Export(term string) spreadsheet.Sheet {
	recs := m.Store.Search(term)
	sheet := spreadsheet.Sheet{
		Name:    m.Sheet,
		Headers: m.Schema.Headers(),
		Rows:    make([][]interface{}, 0, len(recs)),
	}
	for _, rec := range recs {
		sheet.Rows = append(sheet.Rows, m.Row(rec))
	}
	return sheet
}
