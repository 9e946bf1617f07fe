package apperr_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := apperr.Wrap("polosa.emit", apperr.External, io.ErrClosedPipe, "write status line")
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("want Is(..., ErrClosedPipe)=true")
	}
	if !apperr.IsKind(err, apperr.External) {
		t.Fatalf("want kind=External")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if err := apperr.Wrap("op", apperr.Internal, nil, "never happens"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestErrorStringIncludesOpAndMsg(t *testing.T) {
	err := apperr.New("date.Parse", apperr.InvalidInput, "could not parse date")
	if got := err.Error(); !strings.Contains(got, "date.Parse: could not parse date") {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestKindOf(t *testing.T) {
	err := apperr.New("array.Chunked", apperr.InvalidInput, "bad size")
	if k := apperr.KindOf(err); k != apperr.InvalidInput {
		t.Fatalf("got %q", k)
	}
	if k := apperr.KindOf(errors.New("plain")); k != apperr.Internal {
		t.Fatalf("plain error should default to Internal, got %q", k)
	}
}
