// Package apperr defines stable error categories shared by the notalib
// packages. Callers branch on a Kind instead of matching error strings.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a stable category for errors returned by this module.
type Kind string

const (
	InvalidInput Kind = "invalid_input" // bad argument or unparseable value
	NotFound     Kind = "not_found"
	External     Kind = "external" // an external sink or tool failed
	Internal     Kind = "internal" // programmer bug, invariant broken
)

// E carries an operation name and a Kind alongside the wrapped cause. The
// message, when set, replaces the cause's text in Error output.
type E struct {
	Op   string // failing operation, e.g. "date.Parse"
	Kind Kind
	Err  error
	Msg  string
}

func (e *E) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Op == "":
		return msg
	case msg == "":
		return e.Op
	}
	return e.Op + ": " + msg
}

func (e *E) Unwrap() error { return e.Err }

// Wrap annotates err with an operation, kind, and formatted message. A nil
// err yields nil, so call sites can wrap unconditionally.
func Wrap(op string, kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &E{Op: op, Kind: kind, Err: err, Msg: fmt.Sprintf(format, args...)}
}

// New builds an E with no underlying cause.
func New(op string, kind Kind, format string, args ...any) error {
	return &E{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether the outermost *E in the chain has the provided Kind.
func IsKind(err error, k Kind) bool {
	var e *E
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// KindOf returns the Kind of the outermost *E in the chain, or Internal when
// the error carries no category.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
