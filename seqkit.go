// Package seqkit provides operations over sequences that can be traversed
// once, forward: positional access, predicate search, deduplication,
// interleaving and windowing, without requiring the caller to materialise the
// input into a concrete collection first.
//
// # Capability dispatch
//
// Every operation accepts the minimal Seq handle, and probes at call time
// whether the concrete value also exposes a cheap length (Sized), native
// reverse traversal (Reversible) or constant-time positional access
// (Indexable). The probe only ever selects a cheaper code path; it never
// changes the result of an operation. Inputs with none of these capabilities
// are served by a single forward pass, or by full buffering where nothing
// cheaper can be correct (e.g. a negative index into a length-less source).
//
// # Laziness
//
// Transformer results are computed on demand as the consumer pulls elements.
// They are single use unless the underlying strategy buffered the input;
// re-obtain the sequence from the operation when a second traversal is needed.
package seqkit

import "iter"

// Seq is the sequence handle: an opaque forward-traversable source of
// elements, consumed by pulling one element at a time until exhaustion.
type Seq[T any] interface {
	// All returns the forward traversal of the sequence.
	All() iter.Seq[T]
}

// Sized is the optional capability of reporting the number of elements
// without traversing the sequence.
type Sized interface {
	Len() int
}

// Reversible is the optional capability of yielding elements starting from
// the end of the sequence, without buffering it first.
type Reversible[T any] interface {
	Seq[T]
	// Backward returns a traversal that starts at the last element.
	Backward() iter.Seq[T]
}

// Indexable is the optional capability of retrieving the element at a given
// position without traversing its predecessors.
//
// Operations only index values that are also Sized, since the bounds math
// requires a length; the two capabilities are probed independently because
// not every length-reporting sequence supports indexing.
type Indexable[T any] interface {
	Seq[T]
	// At returns the element at the given position.
	// The position is expected to be within [0, Len).
	At(index int) T
}

// KV is a pair of values.
type KV[K, V any] struct {
	K K
	V V
}
