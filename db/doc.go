// Package db runs statements against an open database handle.
//
// The Executor type is the main entry point. Read statements return a
// forward-only Cursor, mutating statements return an UpdateResult.
//
// # Executor Usage
//
//	exec := db.NewExecutor(handle, nil)
//	cursor, err := exec.Query(ctx, "SELECT * FROM Games")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cursor.Close()
//	for cursor.Next() {
//	    fmt.Println(cursor.Row().Get("GameName"))
//	}
//
// # Prepared Statements
//
// Parameters are core.Value variants bound by position:
//
//	cursor, err := exec.PreparedQuery(ctx,
//	    "SELECT * FROM Games WHERE Genre = ? AND ReleaseDate > ?",
//	    core.Text("Action-Adventure"), core.Text("1985-01-01"))
//
// Every failure is logged together with the statement text and returned as
// a *core.Error that matches core.ErrExecution.
package db
