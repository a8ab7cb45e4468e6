// Package progress prints scan progress to stderr. Output is suppressed when
// stderr is not a terminal, so piped and scripted runs stay clean.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Reporter tracks how many files of a scan have been processed.
type Reporter struct {
	w       io.Writer
	enabled bool
	total   int
	done    int
}

// New creates a reporter for a scan over total files, writing to stderr when
// it is a terminal.
func New(total int) *Reporter {
	return NewWithWriter(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()), total)
}

// NewWithWriter creates a reporter with explicit output control.
func NewWithWriter(w io.Writer, enabled bool, total int) *Reporter {
	return &Reporter{w: w, enabled: enabled, total: total}
}

// Step records one processed file and redraws the counter.
func (r *Reporter) Step(file string) {
	r.done++
	if !r.enabled {
		return
	}
	fmt.Fprintf(r.w, "\r\x1b[2Kscanning %d/%d %s", r.done, r.total, file)
}

// Done clears the counter line.
func (r *Reporter) Done() {
	if !r.enabled || r.done == 0 {
		return
	}
	fmt.Fprint(r.w, "\r\x1b[2K")
}
