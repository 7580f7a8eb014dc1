package bulk

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Column describes one column of the benchmark table.
type Column struct {
	Name     string `db:"column_name"`
	DataType string `db:"data_type"`
}

func quote(table string) string {
	return pgx.Identifier{table}.Sanitize()
}

// Setup creates the benchmark table if it does not exist yet.
func Setup(ctx context.Context, conn *pgx.Conn, table string) error {
	sql := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id int PRIMARY KEY,
		firstname text,
		lastname text,
		age int
	)`, quote(table))
	if _, err := conn.Exec(ctx, sql); err != nil {
		return fmt.Errorf("setup %s: %w", table, err)
	}
	return nil
}

// Reset deletes every row of the table.
func Reset(ctx context.Context, conn *pgx.Conn, table string) error {
	if _, err := conn.Exec(ctx, "DELETE FROM "+quote(table)); err != nil {
		return fmt.Errorf("reset %s: %w", table, err)
	}
	return nil
}

// Drop removes the table.
func Drop(ctx context.Context, conn *pgx.Conn, table string) error {
	if _, err := conn.Exec(ctx, "DROP TABLE IF EXISTS "+quote(table)); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	return nil
}

// Count returns the number of rows in the table.
func Count(ctx context.Context, conn *pgx.Conn, table string) (int, error) {
	var n int
	if err := conn.QueryRow(ctx, "SELECT count(*) FROM "+quote(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// FetchAll reads the whole table back ordered by id.
func FetchAll(ctx context.Context, conn *pgx.Conn, table string) ([]Row, error) {
	rows, err := conn.Query(ctx,
		"SELECT id, firstname, lastname, age FROM "+quote(table)+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[Row])
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	return out, nil
}

// Columns lists the table's columns in declaration order.
func Columns(ctx context.Context, conn *pgx.Conn, table string) ([]Column, error) {
	rows, err := conn.Query(ctx, `
		SELECT column_name::text, data_type::text
		  FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name::text = $1
		 ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, fmt.Errorf("columns %s: %w", table, err)
	}
	cols, err := pgx.CollectRows(rows, pgx.RowToStructByName[Column])
	if err != nil {
		return nil, fmt.Errorf("columns %s: %w", table, err)
	}
	return cols, nil
}
