package core

import "strings"

// Row is one result row, addressable by position and by column name.
type Row struct {
	columns []string
	values  []Value
}

// NewRow pairs column names with values by position.
func NewRow(columns []string, values []Value) Row {
	return Row{columns: columns, values: values}
}

func (r Row) Len() int { return len(r.values) }

func (r Row) Columns() []string { return r.columns }

func (r Row) Values() []Value { return r.values }

// At returns the value at a zero-based position, NULL when out of range.
func (r Row) At(i int) Value {
	if i < 0 || i >= len(r.values) {
		return Null()
	}
	return r.values[i]
}

// Get returns the value of the named column. Names match case-insensitively
// and may be qualified ("Games.GameName" matches "GameName").
func (r Row) Get(name string) (Value, bool) {
	for i, column := range r.columns {
		if strings.EqualFold(column, name) && i < len(r.values) {
			return r.values[i], true
		}
	}
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		return r.Get(name[dot+1:])
	}
	return Null(), false
}

// Strings renders every value with Value.String.
func (r Row) Strings() []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		out[i] = v.String()
	}
	return out
}
