package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5"
)

// Bench resets the table, generates rows and times one Inserter at a time.
type Bench struct {
	driver *Driver
	table  string
	rows   int
	rand   *rand.Rand
	report Reporter
	log    *slog.Logger
}

// Option configures a Bench.
type Option func(*Bench)

func WithTable(table string) Option { return func(b *Bench) { b.table = table } }

func WithRows(n int) Option { return func(b *Bench) { b.rows = n } }

func WithRand(r *rand.Rand) Option { return func(b *Bench) { b.rand = r } }

func WithReporter(r Reporter) Option { return func(b *Bench) { b.report = r } }

func WithLogger(l *slog.Logger) Option { return func(b *Bench) { b.log = l } }

// NewBench creates a Bench. Table and row count default to the driver's Config.
func NewBench(d *Driver, opts ...Option) *Bench {
	cfg := d.Config()
	b := &Bench{
		driver: d,
		table:  cfg.Table,
		rows:   cfg.Rows,
		log:    slog.Default(),
	}
	if b.table == "" {
		b.table = DefaultTable
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rand == nil {
		b.rand = NewRand(uint64(time.Now().UnixNano()))
	}
	if b.report == nil {
		b.report = b.logTiming
	}
	return b
}

func (b *Bench) logTiming(t Timing) {
	if t.Err != nil {
		b.log.Error("insert failed", "strategy", t.Name, "rows", t.Rows,
			"elapsed", t.Elapsed, "err", t.Err)
		return
	}
	b.log.Info("insert done", "strategy", t.Name, "rows", t.Rows,
		"elapsed", t.Elapsed, "rows_per_sec", int64(t.RowsPerSecond()))
}

// Setup creates the benchmark table.
func (b *Bench) Setup(ctx context.Context) error {
	return b.driver.WithConn(ctx, func(conn *pgx.Conn) error {
		if err := Setup(ctx, conn, b.table); err != nil {
			return err
		}
		b.log.Info("table ready", "table", b.table)
		return nil
	})
}

// Run empties the table, generates fresh rows and times ins inserting them.
// The returned Timing is filled in even when the insert fails.
func (b *Bench) Run(ctx context.Context, ins Inserter) (Timing, error) {
	var timing Timing
	err := b.driver.WithConn(ctx, func(conn *pgx.Conn) error {
		if err := Reset(ctx, conn, b.table); err != nil {
			return err
		}
		rows := Generate(b.rand, b.rows)
		b.log.Debug("generated rows", "strategy", ins.Name(), "rows", len(rows))

		var err error
		timing, err = b.insert(ctx, conn, ins, rows)
		if err != nil {
			return err
		}

		n, err := Count(ctx, conn, b.table)
		if err != nil {
			return err
		}
		if n != len(rows) {
			return fmt.Errorf("%s: %w: want %d, table has %d", ins.Name(), ErrRowCountMismatch, len(rows), n)
		}
		return nil
	})
	return timing, err
}

func (b *Bench) insert(ctx context.Context, conn *pgx.Conn, ins Inserter, rows []Row) (timing Timing, err error) {
	defer Track(ins.Name(), len(rows), func(t Timing) {
		timing = t
		b.report(t)
	})(&err)

	return Timing{}, ins.Insert(ctx, conn, b.table, rows)
}

// Compare runs each inserter in order and stops at the first failure.
func (b *Bench) Compare(ctx context.Context, inserters ...Inserter) ([]Timing, error) {
	timings := make([]Timing, 0, len(inserters))
	for _, ins := range inserters {
		t, err := b.Run(ctx, ins)
		timings = append(timings, t)
		if err != nil {
			return timings, err
		}
	}
	return timings, nil
}
