package seqkit

import (
	"iter"
	"reflect"
)

// UniqueEverSeen yields each element the first time it is seen,
// preserving the original order.
func UniqueEverSeen[T comparable](s Seq[T]) Seq[T] {
	return UniqueEverSeenBy(s, func(v T) T { return v })
}

// UniqueEverSeenBy yields each element the first time its key is seen,
// preserving the original order. Key values must be usable as map keys;
// an offending key raises ErrUnusableKey when that element is reached.
// The seen set grows up to the number of distinct keys.
func UniqueEverSeenBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	validateSeq(s, "s")
	validateFunc(key, "key")
	return lazy(func(yield func(T) bool) {
		var seen = make(map[K]struct{})
		for v := range s.All() {
			k := key(v)
			guardSetMember(k)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	})
}

// UniqueJustSeen yields one representative per run of consecutive equal
// elements. Unlike UniqueEverSeen it keeps no set, only the previous key.
func UniqueJustSeen[T comparable](s Seq[T]) Seq[T] {
	return UniqueJustSeenBy(s, func(v T) T { return v })
}

// UniqueJustSeenBy yields the first element of each maximal run of
// consecutive elements sharing the same key.
func UniqueJustSeenBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	validateSeq(s, "s")
	validateFunc(key, "key")
	return lazy(func(yield func(T) bool) {
		var (
			prev K
			seen bool
		)
		for v := range s.All() {
			k := key(v)
			guardSetMember(k)
			if seen && k == prev {
				continue
			}
			prev, seen = k, true
			if !yield(v) {
				return
			}
		}
	})
}

// guardSetMember raises ErrUnusableKey for key values that would blow up a
// map insert or an == comparison, such as an interface holding a slice.
// The comparable constraint admits these, so the check must happen per
// element, at the first offending one.
func guardSetMember(k any) {
	if t := reflect.TypeOf(k); t != nil && !t.Comparable() {
		panic(ErrUnusableKey.F("a %T key cannot be used as a set member", k))
	}
}

// RoundRobin interleaves the input sequences: each still-active input
// contributes one element per round, in argument order, exhausted inputs are
// skipped, until all of them are exhausted. Zero inputs yield an empty
// sequence; a single input is yielded verbatim.
func RoundRobin[T any](ss ...Seq[T]) Seq[T] {
	validateSeqs(ss)
	if len(ss) == 0 {
		return lazy(Empty[T]().All())
	}
	if len(ss) == 1 {
		return lazy(ss[0].All())
	}
	return lazy(func(yield func(T) bool) {
		type cursor struct {
			next func() (T, bool)
			stop func()
		}
		var active []cursor
		for _, s := range ss {
			next, stop := iter.Pull(s.All())
			defer stop()
			active = append(active, cursor{next: next, stop: stop})
		}
		for 0 < len(active) {
			c := active[0]
			active = active[1:]
			v, ok := c.next()
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
			active = append(active, c)
		}
	})
}

// Pairwise yields the consecutive overlapping pairs of the sequence:
// (e1,e2), (e2,e3), and so on. A sequence shorter than two yields nothing.
func Pairwise[T any](s Seq[T]) Seq[KV[T, T]] {
	validateSeq(s, "s")
	return lazy(func(yield func(KV[T, T]) bool) {
		var (
			prev T
			seen bool
		)
		for v := range s.All() {
			if seen {
				if !yield(KV[T, T]{K: prev, V: v}) {
					return
				}
			}
			prev, seen = v, true
		}
	})
}

// NCycles repeats the sequence's elements n times in order.
// n == 1 streams the input once without buffering; for n > 1 a source
// without a cheap length is buffered once instead of being re-traversed.
func NCycles[T any](s Seq[T], n int) Seq[T] {
	validateSeq(s, "s")
	validateQuantity(n, "n")
	switch n {
	case 0:
		return lazy(Empty[T]().All())
	case 1:
		return lazy(s.All())
	}
	src := reusable(s)
	return lazy(func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			for v := range src.All() {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Unbounded marks a repeat count with no upper bound.
const Unbounded = -1

// RepeatFunc yields the results of calling fn, n times, one call per pulled
// element, or forever when n is Unbounded. No call is made before the first
// pull, and a malformed call is reported before fn could ever run.
func RepeatFunc[T any](fn func() T, n int) Seq[T] {
	validateFunc(fn, "fn")
	if n != Unbounded {
		validateQuantity(n, "n")
	}
	return lazy(func(yield func(T) bool) {
		for i := 0; n == Unbounded || i < n; i++ {
			if !yield(fn()) {
				return
			}
		}
	})
}

// Prepend wraps the sequence with one extra leading element.
func Prepend[T any](value T, s Seq[T]) Seq[T] {
	validateSeq(s, "s")
	return lazy(func(yield func(T) bool) {
		if !yield(value) {
			return
		}
		for v := range s.All() {
			if !yield(v) {
				return
			}
		}
	})
}

// Append wraps the sequence with one extra trailing element.
func Append[T any](s Seq[T], value T) Seq[T] {
	validateSeq(s, "s")
	return lazy(func(yield func(T) bool) {
		for v := range s.All() {
			if !yield(v) {
				return
			}
		}
		yield(value)
	})
}

// Length reports the number of elements: the cheap Sized answer when the
// input has one, or a full forward count, which consumes a single-pass
// source.
func Length[T any](s Seq[T]) int {
	validateSeq(s, "s")
	if l, ok := probeLen(s); ok {
		return l
	}
	var total int
	for range s.All() {
		total++
	}
	return total
}
