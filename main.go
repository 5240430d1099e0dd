package GamesDB

import (
	"context"
	"io"

	"github.com/nickyhof/GamesDB/conn"
	"github.com/nickyhof/GamesDB/db"
	"github.com/nickyhof/GamesDB/format"
)

// Instance bundles an open handle with an executor over it.
type Instance struct {
	Handle   *conn.Handle
	Executor *db.Executor
}

// Open connects to the database file at path.
func Open(ctx context.Context, path string) (*Instance, error) {
	handle, err := conn.Connect(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Instance{
		Handle:   handle,
		Executor: db.NewExecutor(handle, nil),
	}, nil
}

// Show runs s and prints the result with the generic formatter.
func (instance *Instance) Show(ctx context.Context, w io.Writer, title string, s db.Statement) (int, error) {
	cursor, err := instance.Executor.Run(ctx, s)
	if err != nil {
		// The formatter reports the missing result; the cause is returned.
		format.Generic(w, title, nil)
		return 0, err
	}
	return format.Generic(w, title, cursor)
}

// Close releases the handle.
func (instance *Instance) Close() error {
	_, err := conn.Disconnect(instance.Handle)
	return err
}
