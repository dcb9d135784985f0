// Package spreadsheet converts between spreadsheet files and loosely typed rows.
package spreadsheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one data row keyed by column header. Values are strings when read
// from a file and may be numbers when supplied as JSON.
type Row map[string]interface{}

// Format is a supported file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

var (
	// ErrUnreadable wraps every parse failure of a spreadsheet file.
	ErrUnreadable = errors.New("spreadsheet: unreadable file")
	// ErrUnsupported is returned for file names with an unknown extension.
	ErrUnsupported = errors.New("spreadsheet: unsupported format")
)

const utf8BOM = "\ufeff"

// FormatOf picks the format from a file name extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// ParseFormat accepts "xlsx" or "csv"; empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// ReadFile opens path and reads its rows using the extension to pick the format.
func ReadFile(ctx context.Context, path string) ([]Row, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()
	return Read(ctx, f, format)
}

func Read(ctx context.Context, r io.Reader, format Format) ([]Row, error) {
	switch format {
	case FormatXLSX:
		return ReadXLSX(ctx, r)
	case FormatCSV:
		return ReadCSV(ctx, r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, format)
}

// ReadXLSX reads the first sheet. Its first row is the header row.
func ReadXLSX(ctx context.Context, r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)
	}
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, sheets[0], err)
	}
	return rowsFromGrid(ctx, grid)
}

func ReadCSV(ctx context.Context, r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	grid, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return rowsFromGrid(ctx, grid)
}

// rowsFromGrid maps each data row onto the header row. Empty cells are left
// out and blank rows are skipped. Repeated headers get a numeric suffix.
func rowsFromGrid(ctx context.Context, grid [][]string) ([]Row, error) {
	if len(grid) == 0 {
		return []Row{}, nil
	}
	headers := headerNames(grid[0])

	rows := make([]Row, 0, len(grid)-1)
	for i, cells := range grid[1:] {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row := make(Row, len(cells))
		for c, v := range cells {
			if c >= len(headers) || headers[c] == "" {
				continue
			}
			if strings.TrimSpace(v) == "" {
				continue
			}
			row[headers[c]] = v
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func headerNames(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
		if h == "" {
			continue
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			headers[i] = fmt.Sprintf("%s_%d", h, n+1)
			continue
		}
		seen[h] = 0
		headers[i] = h
	}
	return headers
}
