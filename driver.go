package bulk

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Driver opens scoped PostgreSQL connections from a Config.
//
// There is no pool: every WithConn call dials a fresh connection and closes it
// before returning.
type Driver struct {
	cfg Config
}

// NewDriver creates a Driver. It does not connect.
func NewDriver(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// Config returns the configuration the driver was built with.
func (d *Driver) Config() Config {
	return d.cfg
}

// connect creates a new connection.
func (d *Driver) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, d.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return conn, nil
}

// WithConn runs fn on a new connection and closes it afterwards, also when fn
// fails or panics.
func (d *Driver) WithConn(ctx context.Context, fn func(*pgx.Conn) error) error {
	conn, err := d.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(context.WithoutCancel(ctx))

	return fn(conn)
}

// Ping checks that the database is reachable.
func (d *Driver) Ping(ctx context.Context) error {
	return d.WithConn(ctx, func(conn *pgx.Conn) error {
		return conn.Ping(ctx)
	})
}
