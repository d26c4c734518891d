package seqkit

import "iter"

// First returns the first element of the sequence.
// On an empty sequence it returns the default value when one is given,
// and ErrEmpty otherwise.
func First[T any](s Seq[T], defaults ...T) (T, error) {
	validateSeq(s, "s")
	validateDefaults(defaults)
	for v := range s.All() {
		return v, nil
	}
	return orDefault(defaults, ErrEmpty)
}

// Last returns the last element of the sequence.
// A Reversible input is answered in a single step from its backward
// traversal; anything else is walked forward to exhaustion.
// The empty/default contract is the same as First's.
func Last[T any](s Seq[T], defaults ...T) (T, error) {
	validateSeq(s, "s")
	validateDefaults(defaults)
	if backward, ok := probeBackward(s); ok {
		for v := range backward {
			return v, nil
		}
		return orDefault(defaults, ErrEmpty)
	}
	var (
		last  T
		found bool
	)
	for v := range s.All() {
		last = v
		found = true
	}
	if !found {
		return orDefault(defaults, ErrEmpty)
	}
	return last, nil
}

// Nth returns the element at position n.
// A negative n counts from the end: Nth(s, -1) is the last element.
//
// With a Sized input the position is normalised and bounds-checked up front,
// then answered by direct indexing when possible, or by walking from
// whichever end is closer when the input is Reversible. Without a length a
// negative n can only be resolved by buffering the whole input, and a
// non-negative n by a forward walk.
//
// A missing position yields the default value when one is given, and
// ErrOutOfRange otherwise.
func Nth[T any](s Seq[T], n int, defaults ...T) (T, error) {
	validateSeq(s, "s")
	validateDefaults(defaults)
	if l, ok := probeLen(s); ok {
		if n < 0 {
			n += l
		}
		if n < 0 || l <= n {
			return orDefault(defaults, ErrOutOfRange)
		}
		if at, ok := probeAt(s); ok {
			return at(n), nil
		}
		if backward, ok := probeBackward(s); ok && l/2 <= n {
			return nthOf(backward, l-n-1, defaults)
		}
		return nthOf(s.All(), n, defaults)
	}
	if n < 0 {
		vs := Collect(s)
		n += len(vs)
		if n < 0 || len(vs) <= n {
			return orDefault(defaults, ErrOutOfRange)
		}
		return vs[n], nil
	}
	return nthOf(s.All(), n, defaults)
}

func nthOf[T any](seq iter.Seq[T], n int, defaults []T) (T, error) {
	var i int
	for v := range seq {
		if i == n {
			return v, nil
		}
		i++
	}
	return orDefault(defaults, ErrOutOfRange)
}

// Head takes the first n elements, similarly how the coreutils "head" app
// works; a shorter input just ends the sequence early. A negative n means
// the last -n elements, delegating to Tail.
func Head[T any](s Seq[T], n int) Seq[T] {
	validateSeq(s, "s")
	if n < 0 {
		return Tail(s, -n)
	}
	return lazy(func(yield func(T) bool) {
		if n == 0 {
			return
		}
		next, stop := iter.Pull(s.All())
		defer stop()
		for i := 0; i < n; i++ {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Tail takes the last n elements, in their original order.
// A Reversible input is served from its backward traversal; anything else is
// walked forward once behind a bounded window of capacity n.
// A negative n means the first -n elements, delegating to Head.
func Tail[T any](s Seq[T], n int) Seq[T] {
	validateSeq(s, "s")
	if n < 0 {
		return Head(s, -n)
	}
	return lazy(func(yield func(T) bool) {
		if n == 0 {
			return
		}
		if backward, ok := probeBackward(s); ok {
			next, stop := iter.Pull(backward)
			defer stop()
			var buf = make([]T, 0, n)
			for len(buf) < n {
				v, ok := next()
				if !ok {
					break
				}
				buf = append(buf, v)
			}
			for i := len(buf) - 1; 0 <= i; i-- {
				if !yield(buf[i]) {
					return
				}
			}
			return
		}
		var (
			window = make([]T, 0, n)
			oldest int
		)
		for v := range s.All() {
			if len(window) < n {
				window = append(window, v)
				continue
			}
			// full window, evict the oldest
			window[oldest] = v
			oldest = (oldest + 1) % n
		}
		for i := 0; i < len(window); i++ {
			if !yield(window[(oldest+i)%len(window)]) {
				return
			}
		}
	})
}

// Reverse will reverse the iteration direction.
// A Reversible input is served natively; anything else is buffered in full on
// the first pull, so it does not work with infinite sequences.
func Reverse[T any](s Seq[T]) Seq[T] {
	validateSeq(s, "s")
	if backward, ok := probeBackward(s); ok {
		return lazy(backward)
	}
	return lazy(func(yield func(T) bool) {
		vs := Collect(s)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	})
}
