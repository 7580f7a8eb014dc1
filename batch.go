package bulk

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Batch queues one INSERT per row and pipelines them with SendBatch. The
// statements share a single implicit transaction.
type Batch struct{}

func (Batch) Name() string { return "batch" }

func (Batch) Insert(ctx context.Context, conn *pgx.Conn, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	sql := "INSERT INTO " + quote(table) + " " + insertColumns + " VALUES ($1, $2, $3, $4)"

	b := &pgx.Batch{}
	for _, row := range rows {
		b.Queue(sql, row.ID, row.FirstName, row.LastName, row.Age)
	}

	br := conn.SendBatch(ctx, b)
	for i := range rows {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("batch insert id %d: %w", rows[i].ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("batch insert: %w", err)
	}
	return nil
}
