package format

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/nickyhof/GamesDB/core"
	"github.com/nickyhof/GamesDB/db"
)

const noResultsMessage = "No results were returned!"

// Generic prints any result using the cursor's column names as the header.
// The cursor is consumed and closed.
func Generic(w io.Writer, title string, cursor *db.Cursor) (int, error) {
	if cursor == nil {
		fmt.Fprintln(w, noResultsMessage)
		return 0, core.ErrNoResults
	}
	defer cursor.Close()

	printTitle(w, title)

	table := NewTabTable(w)
	table.Header(cursor.Columns())
	for cursor.Next() {
		table.Row(cursor.Row().Strings())
	}
	if err := cursor.Err(); err != nil {
		return table.Rows(), err
	}

	printTotal(w, table.Rows())
	return table.Rows(), nil
}

// Fixed prints a result with a known layout. Values are looked up by column
// name and rendered according to the column's type; the header uses the
// layout's labels.
func Fixed(w io.Writer, title string, cursor *db.Cursor, layout core.ColumnSpec) (int, error) {
	if cursor == nil {
		fmt.Fprintln(w, noResultsMessage)
		return 0, core.ErrNoResults
	}
	defer cursor.Close()

	for _, column := range layout {
		if !hasColumn(cursor.Columns(), column.Name) {
			return 0, core.NewQueryError("render", cursor.Query(),
				fmt.Errorf("column %q not in result %v", column.Name, cursor.Columns()))
		}
	}

	printTitle(w, title)

	table := NewTabTable(w)
	table.Header(layout.Labels())
	for cursor.Next() {
		row := cursor.Row()
		cells := make([]string, len(layout))
		for i, column := range layout {
			v, _ := row.Get(column.Name)
			cells[i] = typedCell(v, column.Type)
		}
		table.Row(cells)
	}
	if err := cursor.Err(); err != nil {
		return table.Rows(), err
	}

	printTotal(w, table.Rows())
	return table.Rows(), nil
}

// Schema prints every table's declared columns.
func Schema(w io.Writer, tables []core.Table) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== DATABASE SCHEMA =====")

	for _, t := range tables {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "TABLE: %s\n", t.Name)

		table := NewTable(w)
		table.Header([]string{"Column Name", "Data Type", "Nullable"})
		for _, column := range t.Columns {
			nullable := "NOT NULL"
			if column.Nullable {
				nullable = "NULL"
			}
			table.Row([]string{column.Name, column.Type, nullable})
		}
		table.Render()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "==========================")
}

// QueryHeader prints the banner shown before each numbered query.
func QueryHeader(w io.Writer, number int, description string) {
	rule := "/" + strings.Repeat("*", 73) + "/"
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "/* QUERY %d: %s\n", number, description)
	fmt.Fprintln(w, rule)
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)
}

func printTotal(w io.Writer, rows int) {
	fmt.Fprintf(w, "\nTotal rows: %d\n", rows)
}

func hasColumn(columns []string, name string) bool {
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return slices.ContainsFunc(columns, func(c string) bool {
		return strings.EqualFold(c, name)
	})
}

func typedCell(v core.Value, typ core.ColumnType) string {
	if v.IsNull() {
		return v.String()
	}
	switch typ {
	case core.IntType:
		if i, ok := v.Int64(); ok {
			return strconv.FormatInt(i, 10)
		}
	case core.FloatType:
		if f, ok := v.Float64(); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	case core.DateType:
		if t, ok := v.Time(); ok {
			return t.Format(core.DateLayout)
		}
	}
	return v.String()
}
