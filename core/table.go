package core

import "strings"

// ColumnType selects how a fixed-layout cell is rendered.
type ColumnType int

const (
	TextType ColumnType = iota
	IntType
	FloatType
	DateType
)

func (t ColumnType) String() string {
	switch t {
	case IntType:
		return "INTEGER"
	case FloatType:
		return "REAL"
	case DateType:
		return "DATE"
	default:
		return "TEXT"
	}
}

// Column describes one column of a fixed output layout. Name is the result
// column to read, Label is printed in the header.
type Column struct {
	Name  string     `json:"name"`
	Label string     `json:"label"`
	Type  ColumnType `json:"type"`
}

// ColumnSpec is an ordered output layout.
type ColumnSpec []Column

// Labels returns the header labels, falling back to the column name.
func (layout ColumnSpec) Labels() []string {
	labels := make([]string, len(layout))
	for i, column := range layout {
		labels[i] = column.Label
		if labels[i] == "" {
			labels[i] = column.Name
		}
	}
	return labels
}

// TableColumn is a column as declared in the database schema.
type TableColumn struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// Table is a database table with its declared columns.
type Table struct {
	Name    string        `json:"name"`
	Columns []TableColumn `json:"columns"`
}

// Column returns the named column, matching case-insensitively.
func (table Table) Column(name string) (TableColumn, bool) {
	for _, column := range table.Columns {
		if strings.EqualFold(column.Name, name) {
			return column, true
		}
	}
	return TableColumn{}, false
}
