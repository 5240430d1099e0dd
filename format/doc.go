// Package format prints query results as text.
//
// Generic introspects the cursor's column names, Fixed prints a known column
// layout with its own header labels. Both print a title, a header line, a
// dashed separator, one line per row and a trailing total, and return the
// number of rows printed.
//
//	cursor, err := exec.Query(ctx, "SELECT * FROM Games")
//	if err != nil {
//	    log.Println(err)
//	}
//	n, err := format.Generic(os.Stdout, "All table content", cursor)
//
// A nil cursor prints "No results were returned!" and returns
// core.ErrNoResults, so an empty result (0, nil) and a failed query can be
// told apart.
package format
