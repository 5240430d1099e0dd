package GamesDB

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nickyhof/GamesDB/conn"
	"github.com/nickyhof/GamesDB/core"
	"github.com/nickyhof/GamesDB/db"
	"github.com/nickyhof/GamesDB/internal/gamestest"
)

// TestFunc is the signature for test functions that work with any database location
type TestFunc func(t *testing.T, instance *Instance)

// runWithBothLocations runs a test function against a local file and a copy
// staged over HTTP
func runWithBothLocations(t *testing.T, testFunc TestFunc) {
	t.Run("Local", func(t *testing.T) {
		instance, err := Open(context.Background(), gamestest.NewDatabase(t))
		if err != nil {
			t.Fatalf("Failed to open database: %v", err)
		}
		defer instance.Close()
		testFunc(t, instance)
	})

	t.Run("HTTP", func(t *testing.T) {
		source := gamestest.NewDatabase(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, source)
		}))
		defer server.Close()

		path, err := conn.Stage(context.Background(), server.URL+"/games.sqlite", conn.RemoteConfig{CacheDir: t.TempDir()})
		if err != nil {
			t.Fatalf("Failed to stage database: %v", err)
		}

		instance, err := Open(context.Background(), path)
		if err != nil {
			t.Fatalf("Failed to open staged database: %v", err)
		}
		defer instance.Close()
		testFunc(t, instance)
	})
}

// TestIntegrationWorkflow tests reads and writes through one instance
func TestIntegrationWorkflow(t *testing.T) {
	runWithBothLocations(t, func(t *testing.T, instance *Instance) {
		ctx := context.Background()

		result, err := instance.Executor.PreparedUpdate(ctx,
			"INSERT INTO Games (GameName, ReleaseDate, Genre) VALUES (?, ?, ?)",
			core.Text("Hollow Knight"), core.Text("2017-02-24"), core.Text("Action-Adventure"))
		if err != nil {
			t.Fatalf("Failed to insert game: %v", err)
		}
		if result.LastInsertID != gamestest.GameCount+1 {
			t.Errorf("Expected id %d, got %d", gamestest.GameCount+1, result.LastInsertID)
		}

		var out bytes.Buffer
		n, err := instance.Show(ctx, &out, "Action-Adventure Games Released After 1985", db.Statement{
			Query:  "SELECT GameName FROM Games WHERE Genre = ? AND ReleaseDate > ? ORDER BY ReleaseDate",
			Params: []core.Value{core.Text("Action-Adventure"), core.Text("1985-01-01")},
		})
		if err != nil {
			t.Fatalf("Show failed: %v", err)
		}
		if n != 2 {
			t.Errorf("Expected 2 rows, got %d", n)
		}
		if !strings.Contains(out.String(), "The Legend of Zelda\nHollow Knight\n") {
			t.Errorf("Unexpected output:\n%s", out.String())
		}
	})
}

func TestShowFailedQuery(t *testing.T) {
	runWithBothLocations(t, func(t *testing.T, instance *Instance) {
		var out bytes.Buffer
		n, err := instance.Show(context.Background(), &out, "Consoles", db.Statement{Query: "SELECT * FROM Consoles"})
		if !errors.Is(err, core.ErrExecution) {
			t.Errorf("Expected ErrExecution, got %v", err)
		}
		if n != 0 {
			t.Errorf("Expected 0 rows, got %d", n)
		}
		if out.String() != "No results were returned!\n" {
			t.Errorf("Expected the no-results notice, got %q", out.String())
		}
	})
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), "does/not/exist.sqlite")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	instance, err := Open(context.Background(), gamestest.NewDatabase(t))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	if err := instance.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	// database/sql tolerates a second Close on the same pool
	if err := instance.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}
