// bulkbench times bulk insert strategies against PostgreSQL.
//
// Run:
//
//	go run ./bench setup
//	go run ./bench slow
//	go run ./bench fast
//	go run ./bench compare --rows 10000
//
// Connection settings come from PG_HOST, PG_PORT, PG_USER, PG_PASSWORD,
// PG_DATABASE (or DATABASE_URL) and an optional .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	bulk "github.com/qail-lang/qail-bulk"
)

var errMissingMode = errors.New("missing mode: run one of setup, slow, fast, batch, copy, gorm, compare")

type options struct {
	dsn       string
	table     string
	rows      int
	seed      uint64
	atomic    bool
	gormBatch int
	verbose   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "bulkbench",
		Short:        "Compare row-by-row INSERT with JSON-unrolled bulk INSERT",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errMissingMode
		},
	}
	root.SetOut(out)

	f := root.PersistentFlags()
	f.StringVar(&opts.dsn, "dsn", "", "connection URL (overrides PG_* and DATABASE_URL)")
	f.StringVar(&opts.table, "table", "", "table name (default $BULK_TABLE or \"test\")")
	f.IntVar(&opts.rows, "rows", -1, "rows per run (default $BULK_ROWS or 10000)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for sample data (0 picks one)")
	f.BoolVar(&opts.atomic, "atomic", false, "run the slow path in a single transaction")
	f.IntVar(&opts.gormBatch, "gorm-batch", bulk.DefaultGormBatchSize, "rows per gorm INSERT")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "setup",
		Short: "Create the benchmark table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.bench(out)
			if err != nil {
				return err
			}
			return b.Setup(cmd.Context())
		},
	})

	for _, name := range bulk.StrategyNames() {
		root.AddCommand(newStrategyCmd(name, opts, out))
	}

	root.AddCommand(&cobra.Command{
		Use:   "compare",
		Short: "Run every strategy and print a results table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.bench(out)
			if err != nil {
				return err
			}
			inserters := make([]bulk.Inserter, 0, len(compareOrder))
			for _, name := range compareOrder {
				inserters = append(inserters, opts.inserter(name))
			}
			timings, err := b.Compare(cmd.Context(), inserters...)
			printTable(out, timings)
			return err
		},
	})

	return root
}

// compareOrder puts the baseline first so speedups are relative to it.
var compareOrder = []string{"slow", "batch", "gorm", "fast", "copy"}

func newStrategyCmd(name string, opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Reset the table and time the %s strategy", name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.bench(out)
			if err != nil {
				return err
			}
			_, err = b.Run(cmd.Context(), opts.inserter(name))
			return err
		},
	}
}

func (o *options) inserter(name string) bulk.Inserter {
	switch name {
	case "slow":
		return bulk.Slow{Atomic: o.atomic}
	case "gorm":
		g := bulk.Gorm{BatchSize: o.gormBatch}
		if o.verbose {
			g.LogLevel = logger.Warn
		}
		return g
	}
	ins, _ := bulk.Lookup(name)
	return ins
}

func (o *options) bench(out io.Writer) (*bulk.Bench, error) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := bulk.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := bulk.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if o.dsn != "" {
		cfg.URL = o.dsn
	}
	if o.table != "" {
		cfg.Table = o.table
	}
	if o.rows >= 0 {
		cfg.Rows = o.rows
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	benchOpts := []bulk.Option{
		bulk.WithLogger(log),
		bulk.WithReporter(func(t bulk.Timing) {
			fmt.Fprintln(out, t)
		}),
	}
	if o.seed != 0 {
		benchOpts = append(benchOpts, bulk.WithRand(bulk.NewRand(o.seed)))
	}
	log.Debug("configured", "host", cfg.Host, "database", cfg.Database, "table", cfg.Table, "rows", cfg.Rows)

	return bulk.NewBench(bulk.NewDriver(cfg), benchOpts...), nil
}
