// Package conn opens and closes the embedded SQLite database.
//
// The driver is fixed at build time. The default build registers the pure Go
// modernc.org/sqlite driver under the name "sqlite". Building with the
// cgo_sqlite tag registers github.com/mattn/go-sqlite3 under "sqlite3"
// instead.
//
//	handle, err := conn.Connect(ctx, "db/database.sqlite")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Disconnect(handle)
//
// A database file may also live behind a URL. Stage copies http(s)://,
// s3:// and file:// locations into a local cache and returns the path to
// hand to Connect.
package conn
