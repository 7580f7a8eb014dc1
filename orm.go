package bulk

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultGormBatchSize = 1000

// Gorm inserts through the gorm ORM with multi-row INSERTs of BatchSize rows,
// all inside gorm's default transaction.
//
// gorm runs on database/sql, so it gets its own connection built from the
// same connection config.
type Gorm struct {
	BatchSize int
	LogLevel  logger.LogLevel
}

func (Gorm) Name() string { return "gorm" }

func (g Gorm) open(conn *pgx.Conn) (*gorm.DB, func() error, error) {
	sqlDB := stdlib.OpenDB(*conn.Config())

	level := g.LogLevel
	if level == 0 {
		level = logger.Silent
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("gorm open: %w", err)
	}
	return db, sqlDB.Close, nil
}

func (g Gorm) Insert(ctx context.Context, conn *pgx.Conn, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	size := g.BatchSize
	if size <= 0 {
		size = DefaultGormBatchSize
	}

	db, closeDB, err := g.open(conn)
	if err != nil {
		return err
	}
	defer closeDB()

	batch := append([]Row(nil), rows...)
	if err := db.WithContext(ctx).Table(table).CreateInBatches(&batch, size).Error; err != nil {
		return fmt.Errorf("gorm insert: %w", err)
	}
	return nil
}
