package diag

import (
	"fmt"
	"log"

	"github.com/fatih/color"
)

// Reporter prints diagnostics through a pluggable sink and keeps per-kind
// warning counts for the end-of-run summary.
type Reporter struct {
	// Logf is the output sink. Defaults to log.Printf; tests swap in a
	// capturing function.
	Logf func(format string, v ...interface{})

	counts map[Kind]int
}

// NewReporter returns a Reporter that writes through log.Printf.
func NewReporter() *Reporter {
	return &Reporter{
		Logf:   log.Printf,
		counts: make(map[Kind]int),
	}
}

// Warnf records and prints a warning of the given kind. The run continues.
func (r *Reporter) Warnf(kind Kind, format string, args ...interface{}) {
	if r.counts == nil {
		r.counts = make(map[Kind]int)
	}
	r.counts[kind]++
	r.Logf("%s: %s", color.YellowString(Warning.String()), fmt.Sprintf(format, args...))
}

// Report prints a fatal error through the sink. Kind-less errors are printed
// as-is.
func (r *Reporter) Report(err error) {
	r.Logf("%s: %v", color.RedString(Fatal.String()), err)
}

// Infof prints an untagged progress line.
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.Logf(format, args...)
}

// Count returns how many warnings of one kind were reported.
func (r *Reporter) Count(kind Kind) int {
	return r.counts[kind]
}

// Warnings returns the total warning count across kinds.
func (r *Reporter) Warnings() int {
	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}
