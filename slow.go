package bulk

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Slow issues one INSERT per row, each its own round trip.
//
// By default every statement auto-commits, so rows written before a failing
// row stay in the table. With Atomic set the loop runs in one transaction and
// a failure leaves no rows behind.
type Slow struct {
	Atomic bool
}

func (Slow) Name() string { return "slow" }

// executor is satisfied by both *pgx.Conn and pgx.Tx.
type executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (s Slow) Insert(ctx context.Context, conn *pgx.Conn, table string, rows []Row) error {
	sql := "INSERT INTO " + quote(table) + " " + insertColumns + " VALUES ($1, $2, $3, $4)"

	if !s.Atomic {
		return insertEach(ctx, conn, sql, rows)
	}
	return pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		return insertEach(ctx, tx, sql, rows)
	})
}

func insertEach(ctx context.Context, db executor, sql string, rows []Row) error {
	for _, row := range rows {
		if _, err := db.Exec(ctx, sql, row.ID, row.FirstName, row.LastName, row.Age); err != nil {
			return fmt.Errorf("slow insert id %d: %w", row.ID, err)
		}
	}
	return nil
}
