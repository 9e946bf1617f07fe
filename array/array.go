// Package array provides small slice helpers.
package array

import (
	"iter"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

// Chunked splits items into consecutive chunks of at most size elements. The
// final chunk is shorter when len(items) is not a multiple of size. Chunks
// alias the input slice; they are views, not copies.
func Chunked[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, apperr.New("array.Chunked", apperr.InvalidInput, "chunk size must be positive, got %d", size)
	}
	if len(items) == 0 {
		return nil, nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end:end])
	}
	return out, nil
}

// AsSlice coerces a value of unknown shape into a []T. A nil value yields a
// nil slice, a []T is returned as-is, and a bare T is wrapped in a
// single-element slice. Anything else is an InvalidInput error.
func AsSlice[T any](v any) ([]T, error) {
	if v == nil {
		return nil, nil
	}
	switch x := v.(type) {
	case []T:
		return x, nil
	case T:
		return []T{x}, nil
	}
	return nil, apperr.New("array.AsSlice", apperr.InvalidInput, "cannot convert %T to a slice", v)
}

// ChunkedSeq iterates over the same chunks as Chunked without materializing
// the outer slice, for feeding batches to a consumer one at a time. It
// panics when size is not positive.
func ChunkedSeq[T any](items []T, size int) iter.Seq[[]T] {
	if size <= 0 {
		panic("array: chunk size must be positive")
	}
	return func(yield func([]T) bool) {
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(items[start:end:end]) {
				return
			}
		}
	}
}
