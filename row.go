// Package bulk benchmarks bulk PostgreSQL insert strategies.
//
// The headline comparison is row-by-row INSERT against a single statement
// that unrolls a JSON array parameter with jsonb_array_elements.
//
// Example:
//
//	drv := bulk.NewDriver(bulk.ConfigFromEnv())
//	b := bulk.NewBench(drv, bulk.WithRows(10000))
//	timing, err := b.Run(ctx, bulk.Fast{})
//	fmt.Println(timing)
package bulk

import "math/rand/v2"

// Row is one synthetic record of the benchmark table.
type Row struct {
	ID        int    `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	FirstName string `json:"firstname" db:"firstname" gorm:"column:firstname"`
	LastName  string `json:"lastname" db:"lastname" gorm:"column:lastname"`
	Age       int    `json:"age" db:"age" gorm:"column:age"`
}

const (
	MinAge = 1
	MaxAge = 100
)

// NewRand returns a deterministic source for Generate.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds n rows with ids 0..n-1 and random names and ages.
func Generate(r *rand.Rand, n int) []Row {
	if n <= 0 {
		return []Row{}
	}
	rows := make([]Row, n)
	for id := range rows {
		rows[id] = Row{
			ID:        id,
			FirstName: firstNames[r.IntN(len(firstNames))],
			LastName:  lastNames[r.IntN(len(lastNames))],
			Age:       MinAge + r.IntN(MaxAge-MinAge+1),
		}
	}
	return rows
}
