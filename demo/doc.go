// Package demo holds the two demonstration programs.
//
// The classroom program tests the connection, then prints a SELECT, a JOIN
// and a prepared query through the generic formatter. The starter program
// checks the driver, falls back to an absolute path when the relative one
// fails, prints the schema and uses fixed column layouts. The two programs
// run against different database files and their queries are kept separate.
package demo
