// Package timing provides a small guard for measuring and logging the
// wall-clock duration of a labelled piece of work.
package timing

import "time"

// Logger is the minimal structured logger a Span reports to. The internal
// logger facade and charmbracelet/log both satisfy it.
type Logger interface {
	Info(msg string, keyvals ...any)
}

// Span measures one labelled unit of work from Start to Done.
type Span struct {
	l       Logger
	label   string
	started time.Time
	now     func() time.Time
}

// Start begins measuring. Typical use pairs it with a deferred Done so the
// duration is logged on every exit path.
func Start(l Logger, label string) *Span {
	s := &Span{l: l, label: label, now: time.Now}
	s.started = s.now()
	return s
}

// Done logs the elapsed time with stable keys (label, duration_ms) plus any
// extra fields, and returns the measured duration. A nil logger only
// measures.
func (s *Span) Done(keyvals ...any) time.Duration {
	d := s.now().Sub(s.started)
	if s.l != nil {
		fields := append([]any{"label", s.label, "duration_ms", d.Milliseconds()}, keyvals...)
		s.l.Info("timing", fields...)
	}
	return d
}

// Measure runs fn and logs its duration under label, on success and failure
// alike.
func Measure(l Logger, label string, fn func() error) error {
	s := Start(l, label)
	defer s.Done()
	return fn()
}
