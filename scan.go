package seqkit

import "go.llib.dev/frameless/pkg/zerokit"

// orTruthy resolves the optional-predicate slot:
// absence of a predicate means truthiness of the element itself,
// which for Go values is being non-zero.
func orTruthy[T any](pred func(T) bool) func(T) bool {
	if pred != nil {
		return pred
	}
	return func(v T) bool { return !zerokit.IsZero(v) }
}

// FirstTrue returns the first element for which the predicate holds.
// A nil predicate matches truthy (non-zero) elements.
// When nothing matches it returns the default value when one is given,
// and ErrEmpty otherwise.
func FirstTrue[T any](s Seq[T], pred func(T) bool, defaults ...T) (T, error) {
	validateSeq(s, "s")
	validateDefaults(defaults)
	pred = orTruthy(pred)
	for v := range s.All() {
		if pred(v) {
			return v, nil
		}
	}
	return orDefault(defaults, ErrEmpty.F("no element satisfies the predicate"))
}

// FirstFalse is the counterpart of FirstTrue:
// it returns the first element for which the predicate does not hold.
func FirstFalse[T any](s Seq[T], pred func(T) bool, defaults ...T) (T, error) {
	validateSeq(s, "s")
	validateDefaults(defaults)
	pred = orTruthy(pred)
	for v := range s.All() {
		if !pred(v) {
			return v, nil
		}
	}
	return orDefault(defaults, ErrEmpty.F("every element satisfies the predicate"))
}

// LastTrue returns the last element for which the predicate holds.
// It is FirstTrue applied to the reversed sequence.
func LastTrue[T any](s Seq[T], pred func(T) bool, defaults ...T) (T, error) {
	validateSeq(s, "s")
	return FirstTrue(Reverse(s), pred, defaults...)
}

// LastFalse returns the last element for which the predicate does not hold.
// It is FirstFalse applied to the reversed sequence.
func LastFalse[T any](s Seq[T], pred func(T) bool, defaults ...T) (T, error) {
	validateSeq(s, "s")
	return FirstFalse(Reverse(s), pred, defaults...)
}

// Quantify counts the elements for which the predicate holds,
// in a single forward pass. A nil predicate counts truthy (non-zero)
// elements. An empty sequence counts zero, it is not an error.
func Quantify[T any](s Seq[T], pred func(T) bool) int {
	validateSeq(s, "s")
	pred = orTruthy(pred)
	var total int
	for v := range s.All() {
		if pred(v) {
			total++
		}
	}
	return total
}

// Partition splits the sequence by the predicate into two independently
// drivable lazy sequences: the elements for which it holds, then those for
// which it does not. A source without a cheap length is realised once into a
// buffer shared by both halves, so driving them in any order stays correct.
func Partition[T any](pred func(T) bool, s Seq[T]) (Seq[T], Seq[T]) {
	validateSeq(s, "s")
	pred = orTruthy(pred)
	src := reusable(s)
	var half = func(match bool) Seq[T] {
		return lazy(func(yield func(T) bool) {
			for v := range src.All() {
				if pred(v) == match {
					if !yield(v) {
						return
					}
				}
			}
		})
	}
	return half(true), half(false)
}
