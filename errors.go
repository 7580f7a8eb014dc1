package bulk

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUnknownStrategy  = errors.New("unknown insert strategy")
	ErrRowCountMismatch = errors.New("row count mismatch after insert")
)

// IsUniqueViolation reports whether err carries a PostgreSQL unique or
// primary key violation, however deeply wrapped.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
