package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/nickyhof/GamesDB/core"
)

const listTablesQuery = "SELECT name FROM sqlite_master " +
	"WHERE type = 'table' AND name NOT LIKE 'sqlite_%' " +
	"ORDER BY name"

// Schema lists the user tables and their declared columns. SQLite's
// internal tables are skipped.
func (e *Executor) Schema(ctx context.Context) ([]core.Table, error) {
	cursor, err := e.Query(ctx, listTablesQuery)
	if err != nil {
		return nil, err
	}

	var names []string
	for cursor.Next() {
		names = append(names, cursor.Row().At(0).String())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	tables := make([]core.Table, 0, len(names))
	for _, name := range names {
		columns, err := e.tableColumns(ctx, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, core.Table{Name: name, Columns: columns})
	}
	return tables, nil
}

func (e *Executor) tableColumns(ctx context.Context, table string) ([]core.TableColumn, error) {
	cursor, err := e.Query(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table)))
	if err != nil {
		return nil, err
	}

	var columns []core.TableColumn
	for cursor.Next() {
		row := cursor.Row()
		name, _ := row.Get("name")
		typ, _ := row.Get("type")
		notNull, _ := row.Get("notnull")
		flag, _ := notNull.Int64()
		columns = append(columns, core.TableColumn{
			Name:     name.String(),
			Type:     typ.String(),
			Nullable: flag == 0,
		})
	}
	return columns, cursor.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
