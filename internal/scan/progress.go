package scan

import (
	"fmt"
	"io"
)

// progressPrinter rewrites a single terminal line as heights complete. The
// percentage reflects work finished before the current height, so the first
// line reads 0%.
type progressPrinter struct {
	w     io.Writer
	total int
	done  int
}

func newProgressPrinter(w io.Writer, total int) *progressPrinter {
	return &progressPrinter{w: w, total: total}
}

// Observe prints the progress line for the height about to be folded in.
func (p *progressPrinter) Observe(height uint64) {
	if p.total <= 0 {
		return
	}
	perc := int(float64(p.done) / float64(p.total) * 100)
	fmt.Fprintf(p.w, "At block %d (%d%% done).\r", height, perc)
	p.done++
}

// Finish moves off the progress line so later output starts cleanly.
func (p *progressPrinter) Finish() {
	if p.done == 0 {
		return
	}
	fmt.Fprintln(p.w)
}
