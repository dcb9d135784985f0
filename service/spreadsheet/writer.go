package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is a rendered table ready to be written: fixed column order, one row per record.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// FileName returns the download name for the sheet in the given format.
func (s Sheet) FileName(format Format) string {
	return s.Name + "." + string(format)
}

// ContentType returns the MIME type for format.
func ContentType(format Format) string {
	if format == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func Write(w io.Writer, s Sheet, format Format) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, s)
	case FormatCSV:
		return WriteCSV(w, s)
	}
	return fmt.Errorf("%w: %q", ErrUnsupported, format)
}

// Bytes renders s in format into memory.
func Bytes(s Sheet, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, s, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXLSX writes a single-sheet workbook with a styled header row.
func WriteXLSX(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := s.Name
	if name == "" {
		name = "Sheet1"
	}
	if name != "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#808080", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, h := range s.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
			return err
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, colName, colName, 14); err != nil {
			return err
		}
	}

	for r, values := range s.Rows {
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
		}
	}

	return f.Write(w)
}

// WriteCSV writes s with a UTF-8 byte order mark so spreadsheet apps detect the encoding.
func WriteCSV(w io.Writer, s Sheet) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(s.Headers); err != nil {
		return err
	}
	for _, values := range s.Rows {
		record := make([]string, len(values))
		for i, v := range values {
			if v != nil {
				record[i] = fmt.Sprintf("%v", v)
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
