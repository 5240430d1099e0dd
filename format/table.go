package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table renders a boxed table once all rows are known. Widths are measured
// in runes so non-ASCII names stay aligned.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a boxed table writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{writer: w}
}

// Header sets the header cells.
func (t *Table) Header(headers []string) {
	t.headers = headers
}

// Row adds a row. Missing trailing cells render empty.
func (t *Table) Row(row []string) {
	t.rows = append(t.rows, row)
}

// Render writes the table. Nothing is written for a table with neither
// header nor rows.
func (t *Table) Render() {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return
	}

	widths := t.widths()
	rule := borderLine(widths)

	fmt.Fprintln(t.writer, rule)
	if len(t.headers) > 0 {
		fmt.Fprintln(t.writer, boxedLine(t.headers, widths))
		fmt.Fprintln(t.writer, rule)
	}
	for _, row := range t.rows {
		fmt.Fprintln(t.writer, boxedLine(row, widths))
	}
	fmt.Fprintln(t.writer, rule)
}

// widths returns the rune width of each column, at least 1.
func (t *Table) widths() []int {
	n := len(t.headers)
	for _, row := range t.rows {
		n = max(n, len(row))
	}

	widths := make([]int, n)
	for i := range widths {
		widths[i] = 1
	}
	for _, row := range append([][]string{t.headers}, t.rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

func borderLine(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func boxedLine(row []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		parts[i] = " " + cell + strings.Repeat(" ", w-utf8.RuneCountInString(cell)+1)
	}
	return "|" + strings.Join(parts, "|") + "|"
}

// TabTable streams rows as they arrive. Columns are separated by two tabs and
// the header is underlined with one run of dashes per column, as long as the
// column's header text.
type TabTable struct {
	writer io.Writer
	rows   int
}

// NewTabTable creates a streaming table writing to w.
func NewTabTable(w io.Writer) *TabTable {
	return &TabTable{writer: w}
}

const columnSeparator = "\t\t"

// Header writes the header line and the separator line.
func (t *TabTable) Header(headers []string) {
	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", utf8.RuneCountInString(h))
	}
	fmt.Fprintln(t.writer, strings.Join(headers, columnSeparator))
	fmt.Fprintln(t.writer, strings.Join(dashes, columnSeparator))
}

// Row writes one data line.
func (t *TabTable) Row(cells []string) {
	t.rows++
	fmt.Fprintln(t.writer, strings.Join(cells, columnSeparator))
}

// Rows returns the number of data lines written.
func (t *TabTable) Rows() int {
	return t.rows
}
