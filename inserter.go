package bulk

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
)

// Inserter writes a row set into table over conn.
type Inserter interface {
	Name() string
	Insert(ctx context.Context, conn *pgx.Conn, table string, rows []Row) error
}

// Strategies returns the built-in inserters keyed by name.
func Strategies() map[string]Inserter {
	all := []Inserter{Slow{}, Fast{}, Batch{}, Copy{}, Gorm{}}
	m := make(map[string]Inserter, len(all))
	for _, ins := range all {
		m[ins.Name()] = ins
	}
	return m
}

// StrategyNames lists the built-in inserter names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, 5)
	for name := range Strategies() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a built-in inserter by name.
func Lookup(name string) (Inserter, error) {
	ins, ok := Strategies()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return ins, nil
}

const insertColumns = "(id, firstname, lastname, age)"
