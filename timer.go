package bulk

import (
	"fmt"
	"time"
)

// Timing is the outcome of one timed block.
type Timing struct {
	Name    string
	Rows    int
	Elapsed time.Duration
	Err     error
}

// Reporter receives a Timing when a tracked block ends.
type Reporter func(Timing)

// Track starts timing name. Defer the returned func with a pointer to the
// block's error; it reports on every exit, including failures.
//
//	defer bulk.Track("fast", len(rows), report)(&err)
func Track(name string, rows int, report Reporter) func(*error) {
	start := time.Now()
	return func(errp *error) {
		t := Timing{Name: name, Rows: rows, Elapsed: time.Since(start)}
		if errp != nil {
			t.Err = *errp
		}
		if report != nil {
			report(t)
		}
	}
}

// RowsPerSecond is the insert throughput, 0 when nothing was measured.
func (t Timing) RowsPerSecond() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Rows) / t.Elapsed.Seconds()
}

func (t Timing) String() string {
	s := fmt.Sprintf("%s: %v second(s)", t.Name, t.Elapsed.Seconds())
	if t.Err != nil {
		s += fmt.Sprintf(" (failed: %v)", t.Err)
	}
	return s
}
