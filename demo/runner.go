package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickyhof/GamesDB/conn"
	"github.com/nickyhof/GamesDB/core"
	"github.com/nickyhof/GamesDB/db"
	"github.com/nickyhof/GamesDB/format"
)

const (
	ClassroomProgram = "classroom"
	StarterProgram   = "starter"
)

// Default database locations, relative to the working directory.
const (
	ClassroomPath = "src/main/resources/db/sample_database.sqlite"
	StarterPath   = "db/database.sqlite"
)

var ErrUnknownProgram = errors.New("unknown program")

// Config configures a Runner. Zero fields select defaults: stdout, the
// standard logger, a default connection manager and the program's own
// database path.
type Config struct {
	Location string
	Remote   conn.RemoteConfig
	Out      io.Writer
	Logger   *log.Logger
	Manager  *conn.Manager
}

// Runner runs a demonstration program. It is not safe for concurrent use.
type Runner struct {
	location string
	remote   conn.RemoteConfig
	out      io.Writer
	logger   *log.Logger
	manager  *conn.Manager
	staged   map[string]string // location -> local path
}

// NewRunner creates a runner from cfg, filling in defaults.
func NewRunner(cfg Config) *Runner {
	r := &Runner{
		location: cfg.Location,
		remote:   cfg.Remote,
		out:      cfg.Out,
		logger:   cfg.Logger,
		manager:  cfg.Manager,
		staged:   make(map[string]string),
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	if r.manager == nil {
		r.manager = conn.NewManager(conn.WithLogger(r.logger))
	}
	return r
}

// Run runs the named program.
func (r *Runner) Run(ctx context.Context, program string) error {
	switch program {
	case "", ClassroomProgram:
		return r.Classroom(ctx)
	case StarterProgram:
		return r.Starter(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownProgram, program)
	}
}

// Classroom tests the connection, then runs the classroom queries inside a
// single connection that is closed however the queries end.
func (r *Runner) Classroom(ctx context.Context) error {
	fmt.Fprint(r.out, "\nTesting connection...\n\n")
	r.testConnection(ctx, ClassroomPath)

	fmt.Fprint(r.out, "\nRun queries...\n\n")
	err := r.runClassroomQueries(ctx)

	fmt.Fprint(r.out, "\nGoodbye...\n\n")
	return err
}

func (r *Runner) runClassroomQueries(ctx context.Context) error {
	handle, err := r.open(ctx, ClassroomPath)
	if err != nil {
		return err
	}
	defer r.manager.Disconnect(handle)

	exec := db.NewExecutor(handle, r.logger)
	for i, q := range ClassroomQueries {
		format.QueryHeader(r.out, i+1, q.Description)
		r.show(ctx, exec, q)
	}
	return nil
}

// testConnection opens a separate connection and prints the SQLite version.
func (r *Runner) testConnection(ctx context.Context, defaultPath string) bool {
	fmt.Fprintln(r.out, "Testing SQLite connection...")

	handle, err := r.open(ctx, defaultPath)
	if err != nil {
		r.logger.Printf("Test connection failed: %v", err)
		return false
	}
	defer r.manager.Disconnect(handle)

	fmt.Fprintln(r.out, "Connection successful!")

	version, err := db.NewExecutor(handle, r.logger).Version(ctx)
	if err != nil {
		r.logger.Printf("Test connection failed: %v", err)
		return false
	}
	fmt.Fprintf(r.out, "SQLite Version: %s\n", version)
	return true
}

// Starter runs the starter program: driver check, connection with a
// fallback next to the executable, schema listing, two fixed-layout queries
// and a counted prepared query.
func (r *Runner) Starter(ctx context.Context) error {
	if !r.manager.IsDriverAvailable() {
		r.logger.Println("SQLite driver not available. Build with a registered SQLite driver.")
		return core.NewError("starter", core.ErrDriverUnavailable, nil)
	}

	location := r.locationOr(StarterPath)
	handle, err := r.open(ctx, StarterPath)
	if err != nil && errors.Is(err, core.ErrNotFound) && isRelativePath(location) {
		if fallback, ok := besideExecutable(location); ok {
			fmt.Fprintln(r.out, "Trying with absolute path...")
			handle, err = r.manager.Connect(ctx, fallback)
		}
	}
	if err != nil {
		r.logger.Println("Failed to connect to the database. Exiting application.")
		return err
	}
	defer r.manager.Disconnect(handle)

	exec := db.NewExecutor(handle, r.logger)

	if tables, err := exec.Schema(ctx); err != nil {
		r.logger.Printf("Error displaying schema: %v", err)
	} else {
		format.Schema(r.out, tables)
	}

	for _, q := range StarterQueries {
		r.show(ctx, exec, q)
	}

	r.count(ctx, exec, StarterCountQuery)
	return nil
}

// show runs q and prints it. Failures are logged and the program moves on.
func (r *Runner) show(ctx context.Context, exec *db.Executor, q Query) {
	cursor, _ := exec.Run(ctx, q.Statement)

	var err error
	if q.Layout != nil {
		_, err = format.Fixed(r.out, q.Title, cursor, q.Layout)
	} else {
		_, err = format.Generic(r.out, q.Title, cursor)
	}
	if err != nil && !errors.Is(err, core.ErrNoResults) {
		r.logger.Printf("Error displaying query results: %v", err)
	}
}

func (r *Runner) count(ctx context.Context, exec *db.Executor, s db.Statement) {
	cursor, err := exec.Run(ctx, s)

	fmt.Fprintf(r.out, "\nExecuted prepared statement query: %s\n", s.Query)
	if err != nil {
		fmt.Fprintln(r.out, "Results: 0 rows returned")
		return
	}
	defer cursor.Close()

	for cursor.Next() {
		// rows are only counted
	}
	if err := cursor.Err(); err != nil {
		r.logger.Printf("Error processing result set: %v", err)
	}
	fmt.Fprintf(r.out, "Results: %d rows returned\n", cursor.Count())
}

func (r *Runner) locationOr(defaultPath string) string {
	if r.location != "" {
		return r.location
	}
	return defaultPath
}

// open stages the location on first use and connects to it. Staged copies
// are kept per location, so each program keeps its own database.
func (r *Runner) open(ctx context.Context, defaultPath string) (*conn.Handle, error) {
	location := r.locationOr(defaultPath)

	path, ok := r.staged[location]
	if !ok {
		var err error
		path, err = r.manager.Stage(ctx, location, r.remote)
		if err != nil {
			kind := core.ErrConnection
			if errors.Is(err, fs.ErrNotExist) {
				kind = core.ErrNotFound
			}
			return nil, core.NewError("stage", kind, err)
		}
		r.staged[location] = path
	}
	return r.manager.Connect(ctx, path)
}

func isRelativePath(location string) bool {
	if conn.IsRemote(location) || strings.HasPrefix(strings.ToLower(location), "file://") {
		return false
	}
	return !filepath.IsAbs(location)
}

// executable is swapped in tests.
var executable = os.Executable

// besideExecutable resolves rel against the directory holding the running
// binary. It reports false when that is the working directory, where the
// first attempt already looked.
func besideExecutable(rel string) (string, bool) {
	exe, err := executable()
	if err != nil {
		return "", false
	}
	path := filepath.Join(filepath.Dir(exe), rel)
	if path == conn.ResolvePath(rel) {
		return "", false
	}
	return path, true
}
