package seqkit

import "iter"

// Capability probes are re-derived on every call and never cached:
// they are advisory, selecting the strategy but never the outcome.

func probeLen[T any](s Seq[T]) (int, bool) {
	if sized, ok := s.(Sized); ok {
		return sized.Len(), true
	}
	return 0, false
}

func probeBackward[T any](s Seq[T]) (iter.Seq[T], bool) {
	if r, ok := s.(Reversible[T]); ok {
		return r.Backward(), true
	}
	return nil, false
}

func probeAt[T any](s Seq[T]) (func(int) T, bool) {
	if ix, ok := s.(Indexable[T]); ok {
		return ix.At, true
	}
	return nil, false
}
