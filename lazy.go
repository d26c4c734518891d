package seqkit

import (
	"iter"
	"slices"
	"sync"
)

// lazySeq is the handle type of every lazily computed operation result.
type lazySeq[T any] struct{ seq iter.Seq[T] }

func lazy[T any](seq iter.Seq[T]) Seq[T] { return lazySeq[T]{seq: seq} }

func (l lazySeq[T]) All() iter.Seq[T] { return l.seq }

func (lazySeq[T]) lazyResult() {}

type lazyResult interface{ lazyResult() }

// IsLazySeq reports whether the given value is a lazily evaluated sequence
// produced by this package. Inspection tools use it to decide whether a value
// needs a pretty-printing wrapper instead of plain formatting.
func IsLazySeq(v any) bool {
	_, ok := v.(lazyResult)
	return ok
}

// memoSeq realises its source into a buffer at most once, on first traversal,
// so multiple consumers can share a source that is not safely re-traversable.
type memoSeq[T any] struct {
	src  Seq[T]
	once sync.Once
	vs   []T
}

func (m *memoSeq[T]) All() iter.Seq[T] {
	m.once.Do(func() { m.vs = slices.Collect(m.src.All()) })
	return slices.Values(m.vs)
}

// reusable returns a sequence that is safe to traverse multiple times.
// A cheap length marks the input as an already materialised collection,
// everything else gets buffered once. Advisory only: the memo path is always
// correct, the direct path is just cheaper.
func reusable[T any](s Seq[T]) Seq[T] {
	if _, ok := s.(Sized); ok {
		return s
	}
	return &memoSeq[T]{src: s}
}
