// Package core provides core types used throughout GamesDB.
//
// The package defines the dynamically typed Value used for both
// prepared-statement parameters and cursor cells, the Row returned by a
// cursor, the column layouts consumed by the fixed-schema formatter, and the
// error taxonomy shared by the connection manager and the executor.
//
// # Values
//
// A Value is a tagged variant. Only the supported kinds can be constructed:
//
//	params := []core.Value{
//	    core.Text("Action-Adventure"),
//	    core.Date(time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC)),
//	    core.Int(42),
//	    core.Null(),
//	}
//
// # Column Layouts
//
//	games := core.ColumnSpec{
//	    {Name: "GameID", Label: "Game ID", Type: core.IntType},
//	    {Name: "GameName", Label: "Game Name", Type: core.TextType},
//	    {Name: "ReleaseDate", Label: "Release Date", Type: core.DateType},
//	}
//
// # Errors
//
// Failures are reported as *Error values that unwrap to one of ErrNotFound,
// ErrDriverUnavailable, ErrConnection or ErrExecution and to the underlying
// driver error, so callers match them with errors.Is.
package core
