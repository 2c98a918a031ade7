package ui

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Table renders aligned key/value style text output.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends one row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Print writes the table to stdout, columns padded to their widest
// cell.
func (t *Table) Print() {
	if len(t.Rows) == 0 {
		return
	}

	widths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		widths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := make([]string, 0, len(t.Headers))
	for i, header := range t.Headers {
		line = append(line, padRight(header, widths[i]))
	}
	fmt.Println(strings.Join(line, "  "))

	for _, row := range t.Rows {
		line = line[:0]
		for i, cell := range row {
			if i < len(widths) {
				cell = padRight(cell, widths[i])
			}
			line = append(line, cell)
		}
		fmt.Println(strings.Join(line, "  "))
	}
}

// padRight pads s with spaces to width; wider cells pass through.
func padRight(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// PrintJSON writes v to stdout as indented JSON, for piping into
// other tooling.
func PrintJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(out))
	return err
}
