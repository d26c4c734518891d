package seqkit_test

import (
	"iter"
	"slices"
	"testing"

	"go.llib.dev/seqkit"

	"go.llib.dev/testcase/assert"
)

// bare wraps the values into a handle with no extra capability,
// forcing every operation onto its forward-pass fallback path.
func bare[T any](vs ...T) seqkit.Seq[T] {
	return seqkit.Values(slices.Values(vs))
}

// oneShot is a bare handle that additionally yields its values only once,
// like a stream that cannot be rewound.
func oneShot[T any](vs ...T) seqkit.Seq[T] {
	var used bool
	return seqkit.Values(func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	})
}

// counting is an endless 0,1,2,... source that records how many elements
// were pulled out of it.
func counting(pulled *int) seqkit.Seq[int] {
	return seqkit.Values(func(yield func(int) bool) {
		for i := 0; ; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	})
}

// sizedSeq reports a cheap length but supports no reverse traversal or
// indexing. It records forward traversals.
type sizedSeq[T any] struct {
	vs       []T
	forwards *int
}

func (s sizedSeq[T]) All() iter.Seq[T] {
	if s.forwards != nil {
		*s.forwards++
	}
	return slices.Values(s.vs)
}

func (s sizedSeq[T]) Len() int { return len(s.vs) }

// revSeq is Sized and Reversible but not Indexable.
// It records forward and backward traversals.
type revSeq[T any] struct {
	vs        []T
	forwards  *int
	backwards *int
}

func (s revSeq[T]) All() iter.Seq[T] {
	if s.forwards != nil {
		*s.forwards++
	}
	return slices.Values(s.vs)
}

func (s revSeq[T]) Len() int { return len(s.vs) }

func (s revSeq[T]) Backward() iter.Seq[T] {
	if s.backwards != nil {
		*s.backwards++
	}
	return func(yield func(T) bool) {
		for i := len(s.vs) - 1; 0 <= i; i-- {
			if !yield(s.vs[i]) {
				return
			}
		}
	}
}

func assertContractViolation(tb testing.TB, blk func()) {
	tb.Helper()
	recovered := assert.Panic(tb, blk)
	err, ok := recovered.(error)
	assert.True(tb, ok, "expected the panic to carry an error value")
	assert.ErrorIs(tb, err, seqkit.ErrContract)
}

func iterPull[T any](s seqkit.Seq[T]) (func() (T, bool), func()) {
	return iter.Pull(s.All())
}
