package seqkit

import (
	"iter"
	"slices"
)

// Slice returns a sequence over the given slice.
// It is Sized, Reversible and Indexable.
func Slice[T any](vs []T) Seq[T] { return sliceSeq[T](vs) }

type sliceSeq[T any] []T

func (s sliceSeq[T]) All() iter.Seq[T] { return slices.Values(s) }

func (s sliceSeq[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; 0 <= i; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

func (s sliceSeq[T]) Len() int { return len(s) }

func (s sliceSeq[T]) At(index int) T { return s[index] }

// Values wraps a bare iter.Seq into a sequence handle.
// The result exposes no extra capability, operations on it always take the
// forward-pass fallback path.
func Values[T any](seq iter.Seq[T]) Seq[T] {
	if seq == nil {
		seq = func(yield func(T) bool) {}
	}
	return seqFunc[T](seq)
}

type seqFunc[T any] func(yield func(T) bool)

func (fn seqFunc[T]) All() iter.Seq[T] { return iter.Seq[T](fn) }

// Chan creates a sequence out from a channel. It is single use.
func Chan[T any](ch <-chan T) Seq[T] {
	return seqFunc[T](func(yield func(T) bool) {
		if ch == nil {
			return
		}
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// Empty sequence is used to represent a no-element result with the Null object pattern.
func Empty[T any]() Seq[T] { return sliceSeq[T](nil) }

// SingleValue returns a sequence that holds a single element.
func SingleValue[T any](v T) Seq[T] { return sliceSeq[T]{v} }

// IntRange returns a sequence that ranges between the specified `begin` and the `end` int, both inclusive.
func IntRange(begin, end int) Seq[int] { return numRange[int]{begin: begin, end: end} }

// CharRange returns a sequence that ranges between the specified `begin` and the `end` rune, both inclusive.
func CharRange(begin, end rune) Seq[rune] { return numRange[rune]{begin: begin, end: end} }

type numRange[N int | rune] struct{ begin, end N }

func (r numRange[N]) All() iter.Seq[N] {
	return func(yield func(N) bool) {
		for v := r.begin; v <= r.end; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

func (r numRange[N]) Backward() iter.Seq[N] {
	return func(yield func(N) bool) {
		for v := r.end; r.begin <= v; v-- {
			if !yield(v) {
				return
			}
		}
	}
}

func (r numRange[N]) Len() int {
	if r.end < r.begin {
		return 0
	}
	return int(r.end-r.begin) + 1
}

func (r numRange[N]) At(index int) N { return r.begin + N(index) }

// Collect drains the sequence into a slice.
func Collect[T any](s Seq[T]) []T {
	if s == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range s.All() {
		vs = append(vs, v)
	}
	return vs
}
