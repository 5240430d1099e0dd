package db

import (
	"database/sql"

	"github.com/nickyhof/GamesDB/core"
)

// UpdateResult reports the effect of a mutating statement.
type UpdateResult struct {
	RowsAffected int64
	LastInsertID int64
}

func newUpdateResult(res sql.Result) (UpdateResult, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return UpdateResult{}, err
	}
	// Not every statement produces an insert id.
	id, _ := res.LastInsertId()
	return UpdateResult{RowsAffected: affected, LastInsertID: id}, nil
}

// Cursor is a forward-only, single-pass sequence of rows. It is valid only
// while the handle it came from is open. A cursor closes itself once the last
// row has been read.
type Cursor struct {
	rows    *sql.Rows
	stmt    *sql.Stmt
	query   string
	columns []string
	current core.Row
	count   int
	err     error
	closed  bool
}

func newCursor(rows *sql.Rows, stmt *sql.Stmt, query string) (*Cursor, error) {
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		if stmt != nil {
			stmt.Close()
		}
		return nil, err
	}
	return &Cursor{rows: rows, stmt: stmt, query: query, columns: columns}, nil
}

// Columns returns the result column names in query order.
func (c *Cursor) Columns() []string {
	return c.columns
}

// Query returns the statement text the cursor was produced by.
func (c *Cursor) Query() string {
	return c.query
}

// Next advances to the next row. It returns false at the end of the rows or
// on error; Err distinguishes the two.
func (c *Cursor) Next() bool {
	if c.closed || c.err != nil {
		return false
	}

	if !c.rows.Next() {
		c.err = c.rows.Err()
		c.Close()
		return false
	}

	dest := make([]any, len(c.columns))
	ptrs := make([]any, len(c.columns))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		c.err = err
		c.Close()
		return false
	}

	values := make([]core.Value, len(dest))
	for i, raw := range dest {
		v, err := core.ValueOf(raw)
		if err != nil {
			c.err = err
			c.Close()
			return false
		}
		values[i] = v
	}

	c.current = core.NewRow(c.columns, values)
	c.count++
	return true
}

// Row returns the row Next positioned the cursor on.
func (c *Cursor) Row() core.Row {
	return c.current
}

// Count returns the number of rows read so far.
func (c *Cursor) Count() int {
	return c.count
}

// Err returns the error that stopped iteration, if any.
func (c *Cursor) Err() error {
	if c.err == nil {
		return nil
	}
	return core.NewQueryError("read", c.query, c.err)
}

// All reads the remaining rows.
func (c *Cursor) All() ([]core.Row, error) {
	var rows []core.Row
	for c.Next() {
		rows = append(rows, c.Row())
	}
	return rows, c.Err()
}

// Close releases the rows and, for prepared queries, the statement. It is
// safe to call more than once.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	err := c.rows.Close()
	if c.stmt != nil {
		if stmtErr := c.stmt.Close(); err == nil {
			err = stmtErr
		}
	}
	return err
}
