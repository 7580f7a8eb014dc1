package bulk

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Copy streams the rows with the COPY protocol.
type Copy struct{}

func (Copy) Name() string { return "copy" }

func (Copy) Insert(ctx context.Context, conn *pgx.Conn, table string, rows []Row) error {
	src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		r := rows[i]
		return []any{r.ID, r.FirstName, r.LastName, r.Age}, nil
	})
	n, err := conn.CopyFrom(ctx, pgx.Identifier{table},
		[]string{"id", "firstname", "lastname", "age"}, src)
	if err != nil {
		return fmt.Errorf("copy insert: %w", err)
	}
	if int(n) != len(rows) {
		return fmt.Errorf("copy insert: %w: copied %d of %d", ErrRowCountMismatch, n, len(rows))
	}
	return nil
}
