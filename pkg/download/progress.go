package download

import (
	"fmt"
	"io"
)

// Progress receives best-effort download progress notifications. Implementations
// must not fail the download; errors during reporting are swallowed by the
// implementation itself.
type Progress interface {
	// Start is called once before the first chunk, with the total size in
	// bytes or UnknownSize.
	Start(total int64)

	// Advance is called after each written chunk with the chunk length.
	Advance(n int64)

	// Done is called once after the last chunk was written.
	Done()
}

// NopProgress is the default Progress that reports nothing.
type NopProgress struct{}

// Start implements Progress.
func (NopProgress) Start(int64) {}

// Advance implements Progress.
func (NopProgress) Advance(int64) {}

// Done implements Progress.
func (NopProgress) Done() {}

// ConsoleProgress writes a simple percentage meter to w. When the total size
// is unknown it stays quiet and prints a plain completion message instead.
type ConsoleProgress struct {
	w       io.Writer
	total   int64
	written int64
	lastPct int
}

// NewConsoleProgress creates a ConsoleProgress writing to w.
func NewConsoleProgress(w io.Writer) *ConsoleProgress {
	return &ConsoleProgress{w: w}
}

// Start implements Progress.
func (p *ConsoleProgress) Start(total int64) {
	p.total = total
	p.written = 0
	p.lastPct = -1
}

// Advance implements Progress.
func (p *ConsoleProgress) Advance(n int64) {
	p.written += n
	if p.total <= 0 {
		return
	}
	pct := int(p.written * 100 / p.total)
	if pct/10 > p.lastPct/10 || p.lastPct < 0 {
		fmt.Fprintf(p.w, "\r%d%% (%d/%d bytes)", pct, p.written, p.total)
		p.lastPct = pct
	}
}

// Done implements Progress.
func (p *ConsoleProgress) Done() {
	if p.total <= 0 {
		fmt.Fprintln(p.w, "Done.")
		return
	}
	fmt.Fprintln(p.w)
}
