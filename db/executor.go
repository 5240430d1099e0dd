package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nickyhof/GamesDB/core"
	"github.com/xwb1989/sqlparser"
)

// ErrNotReadOnly is returned when a query method is handed a statement that
// modifies data or schema.
var ErrNotReadOnly = errors.New("statement is not read-only")

// Queryer is the part of *sql.DB the executor needs. *conn.Handle, *sql.DB
// and *sql.Conn all satisfy it.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Statement is a query template with its positional parameters.
type Statement struct {
	Query  string
	Params []core.Value
}

// Args returns the parameters in the form passed to the driver.
func (s Statement) Args() []any {
	args := make([]any, len(s.Params))
	for i, p := range s.Params {
		args[i] = p.Arg()
	}
	return args
}

// Executor runs statements against one handle and logs every failure with
// the statement text.
type Executor struct {
	q      Queryer
	logger *log.Logger
}

// NewExecutor creates an executor over q. A nil logger selects log.Default.
func NewExecutor(q Queryer, logger *log.Logger) *Executor {
	if logger == nil {
		logger = log.Default()
	}
	return &Executor{q: q, logger: logger}
}

// Query runs a read-only statement without parameters.
func (e *Executor) Query(ctx context.Context, query string) (*Cursor, error) {
	if err := checkReadOnly(query); err != nil {
		return nil, e.fail("Query execution error", "query", query, err)
	}

	rows, err := e.q.QueryContext(ctx, query)
	if err != nil {
		return nil, e.fail("Query execution error", "query", query, err)
	}

	cursor, err := newCursor(rows, nil, query)
	if err != nil {
		return nil, e.fail("Query execution error", "query", query, err)
	}
	return cursor, nil
}

// Update runs a mutating statement without parameters.
func (e *Executor) Update(ctx context.Context, stmt string) (UpdateResult, error) {
	res, err := e.q.ExecContext(ctx, stmt)
	if err != nil {
		return UpdateResult{}, e.fail("Update execution error", "update", stmt, err)
	}

	result, err := newUpdateResult(res)
	if err != nil {
		return UpdateResult{}, e.fail("Update execution error", "update", stmt, err)
	}
	return result, nil
}

// PreparedQuery prepares template, binds params by position and runs it.
// The statement is closed together with the returned cursor.
func (e *Executor) PreparedQuery(ctx context.Context, template string, params ...core.Value) (*Cursor, error) {
	if err := checkReadOnly(template); err != nil {
		return nil, e.fail("Prepared query error", "prepared query", template, err)
	}

	stmt, err := e.q.PrepareContext(ctx, template)
	if err != nil {
		return nil, e.fail("Prepared query error", "prepared query", template, err)
	}

	rows, err := stmt.QueryContext(ctx, Statement{Query: template, Params: params}.Args()...)
	if err != nil {
		stmt.Close()
		return nil, e.fail("Prepared query error", "prepared query", template, err)
	}

	cursor, err := newCursor(rows, stmt, template)
	if err != nil {
		return nil, e.fail("Prepared query error", "prepared query", template, err)
	}
	return cursor, nil
}

// PreparedUpdate prepares template, binds params by position and runs it.
func (e *Executor) PreparedUpdate(ctx context.Context, template string, params ...core.Value) (UpdateResult, error) {
	stmt, err := e.q.PrepareContext(ctx, template)
	if err != nil {
		return UpdateResult{}, e.fail("Prepared update error", "prepared update", template, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, Statement{Query: template, Params: params}.Args()...)
	if err != nil {
		return UpdateResult{}, e.fail("Prepared update error", "prepared update", template, err)
	}

	result, err := newUpdateResult(res)
	if err != nil {
		return UpdateResult{}, e.fail("Prepared update error", "prepared update", template, err)
	}
	return result, nil
}

// Run executes s as a query.
func (e *Executor) Run(ctx context.Context, s Statement) (*Cursor, error) {
	if len(s.Params) == 0 {
		return e.Query(ctx, s.Query)
	}
	return e.PreparedQuery(ctx, s.Query, s.Params...)
}

// Version returns the SQLite library version of the connection.
func (e *Executor) Version(ctx context.Context) (string, error) {
	cursor, err := e.Query(ctx, "SELECT sqlite_version()")
	if err != nil {
		return "", err
	}
	defer cursor.Close()

	if !cursor.Next() {
		if err := cursor.Err(); err != nil {
			return "", err
		}
		return "", core.NewQueryError("version", cursor.Query(), core.ErrNoResults)
	}
	return cursor.Row().At(0).String(), nil
}

func (e *Executor) fail(prefix, op, query string, err error) error {
	e.logger.Printf("%s: %v", prefix, err)
	e.logger.Printf("Query: %s", query)
	return core.NewQueryError(op, query, err)
}

// checkReadOnly refuses statements that write. Statements the classifier
// does not recognise (WITH, PRAGMA, VALUES) are left to the driver.
func checkReadOnly(query string) error {
	switch kind := sqlparser.Preview(query); kind {
	case sqlparser.StmtInsert, sqlparser.StmtReplace, sqlparser.StmtUpdate,
		sqlparser.StmtDelete, sqlparser.StmtDDL:
		return fmt.Errorf("%w: %s", ErrNotReadOnly, strings.ToUpper(sqlparser.StmtType(kind)))
	}
	return nil
}
