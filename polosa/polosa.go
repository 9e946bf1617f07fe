// Package polosa implements a rate-limited progress indicator for long
// sequential loops. The caller ticks it once per processed item; polosa
// keeps a running count and throughput estimate and writes a status line to
// a text sink, never more than once per configured interval, so tight loops
// don't flood the terminal. Interior lines end with a carriage return to
// overwrite each other in place; the final line, emitted on Close, ends with
// a newline.
package polosa

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

// DefaultInterval is the minimum delay between two emitted lines when
// Options.Interval is left zero.
const DefaultInterval = 100 * time.Millisecond

// Options configures an indicator. The zero value is usable: unknown total,
// stdout sink, default interval, captions on, automatic emission on.
type Options struct {
	// Total is the expected final count. Zero means unknown; the rendered
	// line then omits the "/total" fraction. Negative totals are rejected.
	Total int
	// Out is the sink for emitted lines. Defaults to os.Stdout.
	Out io.Writer
	// Interval bounds how often Tick may emit. Defaults to DefaultInterval.
	Interval time.Duration
	// NoCaptions drops per-tick captions from emitted lines.
	NoCaptions bool
	// Manual disables automatic emission from Tick; the caller renders lines
	// itself via Format.
	Manual bool
}

// Polosa tracks a monotonically increasing count of processed items and
// emits rate-limited status lines. It is meant to be driven from a single
// goroutine; concurrent ticks are not supported.
type Polosa struct {
	out      io.Writer
	total    int
	interval time.Duration
	captions bool
	auto     bool
	tty      bool

	count         int
	started       time.Time
	lastEmitAt    time.Time
	lastEmitCount int
	lastRate      float64
	hasRate       bool
	emitted       bool
	closed        bool

	now func() time.Time
}

// New creates an indicator and records its start time. Pair it with a
// deferred Close so the final summary line is written on every exit path.
func New(opts Options) (*Polosa, error) {
	if opts.Total < 0 {
		return nil, apperr.New("polosa.New", apperr.InvalidInput, "total must be non-negative, got %d", opts.Total)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	tty := false
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		tty = true
	}
	p := &Polosa{
		out:      out,
		total:    opts.Total,
		interval: interval,
		captions: !opts.NoCaptions,
		auto:     !opts.Manual,
		tty:      tty,
		now:      time.Now,
	}
	p.started = p.now()
	return p, nil
}

// Count reports the number of items ticked so far.
func (p *Polosa) Count() int { return p.count }

// Tick records one completed item. When automatic emission is on and at
// least the configured interval has passed since the last line (or no line
// has been written yet), a status line is written to the sink. Write errors
// propagate unchanged.
func (p *Polosa) Tick() error { return p.tick(1, "") }

// TickN records n completed items as a single step.
func (p *Polosa) TickN(n int) error { return p.tick(n, "") }

// TickMsg records one completed item and attaches caption to the line
// emitted for it, if one is emitted. Captions are never carried over to
// later emissions.
func (p *Polosa) TickMsg(caption string) error { return p.tick(1, caption) }

func (p *Polosa) tick(n int, caption string) error {
	p.count += n
	if !p.auto {
		return nil
	}
	if p.emitted && p.now().Sub(p.lastEmitAt) < p.interval {
		return nil
	}
	return p.emit(caption, false)
}

// Emit writes a status line immediately, bypassing the interval gate. Useful
// in manual mode or to force a line out after an important item.
func (p *Polosa) Emit(caption string) error { return p.emit(caption, false) }

// Close writes the final summary line, newline terminated, and marks the
// indicator finished. It is safe to call from a defer; repeated calls are
// no-ops.
func (p *Polosa) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.emit("", true)
}

// Format renders the status line for the current state without writing it or
// advancing any emission bookkeeping. Two calls under a frozen clock return
// identical strings.
func (p *Polosa) Format() string { return p.render("", p.now()) }

func (p *Polosa) emit(caption string, final bool) error {
	now := p.now()
	line := p.render(caption, now)
	// Wipe the previous, possibly longer line when overwriting on a TTY.
	prefix := ""
	if p.tty && p.emitted {
		prefix = "\x1b[2K"
	}
	if rate, ok := p.rate(now); ok {
		p.lastRate = rate
		p.hasRate = true
	}
	p.lastEmitAt = now
	p.lastEmitCount = p.count
	p.emitted = true
	end := "\r"
	if final {
		end = "\n"
	}
	if _, err := fmt.Fprint(p.out, prefix+line+end); err != nil {
		return apperr.Wrap("polosa.emit", apperr.External, err, "write status line")
	}
	return nil
}

func (p *Polosa) render(caption string, now time.Time) string {
	var b strings.Builder
	if p.total > 0 {
		// Count may legitimately exceed total; the fraction just reads
		// "105/100" and the caller's bookkeeping is trusted.
		fmt.Fprintf(&b, "%d/%d", p.count, p.total)
	} else {
		fmt.Fprintf(&b, "%d", p.count)
	}
	if rate, ok := p.rate(now); ok {
		fmt.Fprintf(&b, "   %.1f/sec", rate)
	}
	if p.captions && caption != "" {
		b.WriteString("   ")
		b.WriteString(caption)
	}
	return b.String()
}

// rate computes items/sec over the window since the last emission, or over
// the whole run before anything has been emitted. When no wall-clock time
// has passed it falls back to the previous rate; the second return is false
// when there is no rate to report at all, and the field is omitted.
func (p *Polosa) rate(now time.Time) (float64, bool) {
	since, base := p.started, 0
	if p.emitted {
		since, base = p.lastEmitAt, p.lastEmitCount
	}
	elapsed := now.Sub(since).Seconds()
	if elapsed <= 0 {
		if p.hasRate {
			return p.lastRate, true
		}
		return 0, false
	}
	return float64(p.count-base) / elapsed, true
}

// Scope runs fn with a fresh indicator and guarantees the final summary line
// is emitted whether fn returns normally, fails, or panics.
func Scope(opts Options, fn func(*Polosa) error) (err error) {
	p, perr := New(opts)
	if perr != nil {
		return perr
	}
	defer func() {
		cerr := p.Close()
		if err == nil {
			err = cerr
		}
	}()
	return fn(p)
}
