// Package GamesDB runs demonstration queries against an embedded SQLite
// database and prints the results as text tables.
//
// The work is split across three packages: conn opens and closes the
// database file, db executes plain and prepared statements and returns
// cursors, and format prints cursors. This package ties them together.
//
// # Quick Start
//
//	instance, err := GamesDB.Open(ctx, "db/database.sqlite")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer instance.Close()
//
//	instance.Show(ctx, os.Stdout, "All games", db.Statement{Query: "SELECT * FROM Games"})
//
//	instance.Show(ctx, os.Stdout, "Action-Adventure after 1985", db.Statement{
//	    Query:  "SELECT * FROM Games WHERE Genre = ? AND ReleaseDate > ?",
//	    Params: []core.Value{core.Text("Action-Adventure"), core.Text("1985-01-01")},
//	})
//
// # Output
//
// Results print as a title, a header line of column names separated by two
// tabs, a line of dashes under each name, one line per row with NULL for
// missing values, and a "Total rows: N" trailer.
//
// # Drivers
//
// The default build uses the pure Go modernc.org/sqlite driver. Build with
// -tags cgo_sqlite to use github.com/mattn/go-sqlite3 instead.
package GamesDB
