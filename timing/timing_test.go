package timing

import (
	"errors"
	"testing"
	"time"
)

type captureLogger struct {
	msgs   []string
	fields [][]any
}

func (c *captureLogger) Info(msg string, keyvals ...any) {
	c.msgs = append(c.msgs, msg)
	c.fields = append(c.fields, keyvals)
}

func TestSpanLogsLabelAndDuration(t *testing.T) {
	log := &captureLogger{}
	s := Start(log, "load_users")
	base := time.Unix(1700000000, 0)
	s.started = base
	s.now = func() time.Time { return base.Add(1500 * time.Millisecond) }

	if d := s.Done("rows", 42); d != 1500*time.Millisecond {
		t.Fatalf("duration: got %v", d)
	}
	if len(log.msgs) != 1 || log.msgs[0] != "timing" {
		t.Fatalf("msgs: %v", log.msgs)
	}
	got := log.fields[0]
	want := []any{"label", "load_users", "duration_ms", int64(1500), "rows", 42}
	if len(got) != len(want) {
		t.Fatalf("fields: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestSpanWithNilLoggerOnlyMeasures(t *testing.T) {
	s := Start(nil, "quiet")
	if d := s.Done(); d < 0 {
		t.Fatalf("duration: %v", d)
	}
}

func TestMeasureLogsOnFailureToo(t *testing.T) {
	log := &captureLogger{}
	boom := errors.New("boom")
	if err := Measure(log, "step", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("want fn error back, got %v", err)
	}
	if len(log.msgs) != 1 {
		t.Fatalf("want one timing entry, got %v", log.msgs)
	}
}
