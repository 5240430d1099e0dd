// Package gamestest builds throwaway SQLite databases holding the Games,
// Players and PlayerGames tables the demonstration queries run against.
package gamestest

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Schema creates the three demo tables.
var Schema = []string{
	`CREATE TABLE Games (
		GameID INTEGER PRIMARY KEY,
		GameName TEXT NOT NULL,
		ReleaseDate DATE,
		Genre TEXT
	)`,
	`CREATE TABLE Players (
		PlayerID INTEGER PRIMARY KEY,
		FirstName TEXT NOT NULL,
		LastName TEXT,
		Email TEXT
	)`,
	`CREATE TABLE PlayerGames (
		PlayerGameID INTEGER PRIMARY KEY AUTOINCREMENT,
		PlayerID INTEGER NOT NULL REFERENCES Players(PlayerID),
		GameID INTEGER NOT NULL REFERENCES Games(GameID),
		Score INTEGER
	)`,
}

// Seed fills the tables. Exactly one Action-Adventure game is released after
// 1985-01-01, exactly one Action game after 2020-01-01, and one score is NULL.
var Seed = []string{
	`INSERT INTO Games (GameID, GameName, ReleaseDate, Genre) VALUES
		(1, 'The Legend of Zelda', '1986-02-21', 'Action-Adventure'),
		(2, 'Super Mario Bros.', '1985-09-13', 'Platformer'),
		(3, 'Tetris', '1984-06-06', 'Puzzle'),
		(4, 'Castlevania', '1986-09-26', 'Platformer'),
		(5, 'Elden Ring', '2022-02-25', 'Action'),
		(6, 'Adventure', '1980-01-01', 'Action-Adventure')`,
	`INSERT INTO Players (PlayerID, FirstName, LastName, Email) VALUES
		(1, 'Alice', 'Smith', 'alice@example.com'),
		(2, 'Bob', 'Jones', NULL),
		(3, 'Carol', 'White', 'carol@example.com')`,
	`INSERT INTO PlayerGames (PlayerID, GameID, Score) VALUES
		(2, 4, 8100),
		(1, 1, 9500),
		(2, 5, NULL),
		(1, 2, 7200)`,
}

// Counts of the seeded data.
const (
	GameCount      = 6
	PlayerCount    = 3
	JoinRowCount   = 4
	UserTableCount = 3
)

// NewDatabase creates a seeded database file and returns its path.
func NewDatabase(t testing.TB) string {
	t.Helper()
	return NewDatabaseWith(t, append(append([]string{}, Schema...), Seed...)...)
}

// NewDatabaseWith creates a database file by running stmts in order.
func NewDatabaseWith(t testing.TB, stmts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "games.sqlite")
	WriteDatabase(t, path, stmts...)
	return path
}

// WriteDatabase creates the database file at path, and any missing parent
// directories, by running stmts in order.
func WriteDatabase(t testing.TB, path string, stmts ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	// An empty database still needs a file on disk.
	if _, err := db.Exec("PRAGMA user_version = 1"); err != nil {
		t.Fatalf("Failed to initialise database: %v", err)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to run %q: %v", stmt, err)
		}
	}
}
