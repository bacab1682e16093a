// Package report renders query-engine results into the three output
// formats the CLI supports: table, JSON, and CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects a renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// Table is a generic header+rows result any report can render.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Render writes t to w in the requested format.
func Render(w io.Writer, t Table, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, t)
	case FormatCSV:
		return renderCSV(w, t)
	default:
		return renderTable(w, t)
	}
}

// renderTable computes column widths from header and data, left-aligns
// every cell, and separates the header from the body with a row of "--"
// rules, one per column.
func renderTable(w io.Writer, t Table) error {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}

	writeRow(t.Columns)

	rules := make([]string, len(widths))
	for i, width := range widths {
		rules[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(rules, "  "))

	for _, row := range t.Rows {
		writeRow(row)
	}
	return nil
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func renderJSON(w io.Writer, t Table) error {
	rows := make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		m := make(map[string]string, len(t.Columns))
		for j, col := range t.Columns {
			if j < len(row) {
				m[col] = row[j]
			}
		}
		rows[i] = m
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
