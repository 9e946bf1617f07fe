package array

import (
	"testing"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

func TestChunked(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		size int
		want [][]int
	}{
		{"empty", nil, 3, nil},
		{"even split", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"short tail", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"size larger than input", []int{1, 2}, 10, [][]int{{1, 2}}},
		{"size one", []int{1, 2, 3}, 1, [][]int{{1}, {2}, {3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Chunked(tc.in, tc.size)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("chunks: got %d want %d (%v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if len(got[i]) != len(tc.want[i]) {
					t.Fatalf("chunk %d: got %v want %v", i, got[i], tc.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tc.want[i][j] {
						t.Fatalf("chunk %d: got %v want %v", i, got[i], tc.want[i])
					}
				}
			}
		})
	}
}

func TestChunkedRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := Chunked([]int{1}, size)
		if err == nil {
			t.Fatalf("size %d: want error", size)
		}
		if !apperr.IsKind(err, apperr.InvalidInput) {
			t.Fatalf("size %d: want InvalidInput, got %v", size, err)
		}
	}
}

func TestAsSlice(t *testing.T) {
	got, err := AsSlice[int](7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("bare value: got %v", got)
	}

	in := []int{1, 2}
	got, err = AsSlice[int](in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || &got[0] != &in[0] {
		t.Fatalf("slice input must pass through unchanged, got %v", got)
	}

	got, err = AsSlice[int](nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("nil input: got %v", got)
	}
}

func TestAsSliceRejectsMismatchedType(t *testing.T) {
	_, err := AsSlice[int]("seven")
	if err == nil {
		t.Fatal("want error")
	}
	if !apperr.IsKind(err, apperr.InvalidInput) {
		t.Fatalf("want InvalidInput, got %v", err)
	}
}

func TestChunkedSeq(t *testing.T) {
	var got [][]string
	for chunk := range ChunkedSeq([]string{"a", "b", "c"}, 2) {
		got = append(got, chunk)
	}
	if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 1 {
		t.Fatalf("unexpected chunks: %v", got)
	}
}

func TestChunkedSeqStopsEarly(t *testing.T) {
	seen := 0
	for range ChunkedSeq(make([]int, 100), 10) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("expected early stop after 2 chunks, got %d", seen)
	}
}

func TestChunkedSeqPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for non-positive size")
		}
	}()
	ChunkedSeq([]int{1}, 0)
}
