package conn

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/nickyhof/GamesDB/core"
)

// DriverName returns the database/sql driver name used for every connection.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3, "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// DriverPackage returns the import path of the registered driver.
func DriverPackage() string {
	return driverPackage
}

// Handle is an open database session. It is owned by the caller that opened
// it and must be released exactly once with Disconnect.
type Handle struct {
	*sql.DB
	Path string
}

// Manager opens and closes handles. The zero value is not usable; create one
// with NewManager.
type Manager struct {
	fs     billy.Filesystem
	logger *log.Logger
	driver string
}

// Option configures a Manager.
type Option func(*Manager)

// WithFilesystem sets the filesystem used for existence checks and staging.
// Paths are resolved to absolute paths before they reach it.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(m *Manager) {
		m.fs = fs
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a manager using the build's driver, the host
// filesystem and the standard logger unless opts say otherwise.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		fs:     osfs.New("/"),
		logger: log.Default(),
		driver: driverName,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	return m
}

// Connect opens a handle to the database file at path. The file must already
// exist: a missing file fails with core.ErrNotFound before the driver is
// involved.
func (m *Manager) Connect(ctx context.Context, path string) (*Handle, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, core.NewError("connect", core.ErrConnection, err)
	}

	if _, err := m.fs.Stat(absPath); err != nil {
		wd, _ := os.Getwd()
		m.logger.Printf("Database file does not exist: %s", path)
		m.logger.Printf("Working directory: %s", wd)
		return nil, core.NewError("connect", core.ErrNotFound, fmt.Errorf("%s: %w", path, err))
	}

	if !m.IsDriverAvailable() {
		return nil, core.NewError("connect", core.ErrDriverUnavailable, fmt.Errorf("driver %q is not registered", m.driver))
	}

	db, err := sql.Open(m.driver, absPath)
	if err != nil {
		m.logger.Printf("SQLite connection error: %v", err)
		return nil, core.NewError("connect", core.ErrConnection, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		m.logger.Printf("SQLite connection error: %v", err)
		return nil, core.NewError("connect", core.ErrConnection, err)
	}

	m.logger.Println("Connection to SQLite database established.")
	return &Handle{DB: db, Path: absPath}, nil
}

// Disconnect closes the handle. A nil handle is a no-op that reports false.
func (m *Manager) Disconnect(handle *Handle) (bool, error) {
	if handle == nil || handle.DB == nil {
		return false, nil
	}

	if err := handle.Close(); err != nil {
		m.logger.Printf("Error closing SQLite connection: %v", err)
		return false, core.NewError("disconnect", core.ErrConnection, err)
	}

	m.logger.Println("Connection to SQLite database closed.")
	return true, nil
}

// IsDriverAvailable reports whether the driver is registered with
// database/sql. No connection is opened.
func (m *Manager) IsDriverAvailable() bool {
	if slices.Contains(sql.Drivers(), m.driver) {
		return true
	}
	m.logger.Printf("SQLite driver not found: %s", m.driver)
	return false
}

// ResolvePath joins the working directory with a relative path.
func ResolvePath(relativePath string) string {
	wd, err := os.Getwd()
	if err != nil {
		return relativePath
	}
	return filepath.Join(wd, relativePath)
}

var std = NewManager()

// Connect opens path with the default manager.
func Connect(ctx context.Context, path string) (*Handle, error) {
	return std.Connect(ctx, path)
}

// Disconnect closes handle with the default manager.
func Disconnect(handle *Handle) (bool, error) {
	return std.Disconnect(handle)
}

// IsDriverAvailable probes the default manager's driver.
func IsDriverAvailable() bool {
	return std.IsDriverAvailable()
}
