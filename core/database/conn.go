package database

import (
	"context"
)

// Conn is one connection borrowed from the pool. Close returns it.
type Conn interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	Close() error
}

// Pool hands out connections for a single unit of work.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}

// Acquire borrows a dedicated connection. The caller must Close it on every
// exit path.
func (d *Database) Acquire(ctx context.Context) (Conn, error) {
	conn, err := d.sqlx.Connx(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
