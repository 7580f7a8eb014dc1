package main

import (
	"fmt"
	"io"
	"time"

	bulk "github.com/qail-lang/qail-bulk"
)

// printTable renders the compare results; speedups are against the first timing.
func printTable(w io.Writer, timings []bulk.Timing) {
	if len(timings) == 0 {
		return
	}
	base := timings[0]

	fmt.Fprintln(w, "\n📈 RESULTS:")
	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, "│ BULK INSERT BENCHMARK %30s │\n", fmt.Sprintf("%d rows", base.Rows))
	fmt.Fprintln(w, "├──────────┬──────────────┬──────────────┬──────────────┤")
	fmt.Fprintln(w, "│ Strategy │         Time │       Rows/s │   vs "+padLeft(base.Name, 7)+" │")
	fmt.Fprintln(w, "├──────────┼──────────────┼──────────────┼──────────────┤")
	for _, t := range timings {
		if t.Err != nil {
			fmt.Fprintf(w, "│ %-8s │ %12s │ %12s │ %12s │\n", t.Name, "failed", "-", "-")
			continue
		}
		fmt.Fprintf(w, "│ %-8s │ %12s │ %12.0f │ %11.1fx │\n",
			t.Name, t.Elapsed.Round(time.Microsecond), t.RowsPerSecond(), speedup(base, t))
	}
	fmt.Fprintln(w, "└──────────┴──────────────┴──────────────┴──────────────┘")
}

func speedup(base, t bulk.Timing) float64 {
	if t.Elapsed <= 0 || base.Err != nil {
		return 0
	}
	return base.Elapsed.Seconds() / t.Elapsed.Seconds()
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return fmt.Sprintf("%*s", n, s)
}
