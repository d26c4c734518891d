package seqkit

import (
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrEmpty is returned when a search or positional operation found no
	// element and the caller supplied no default value.
	ErrEmpty errorkit.Error = "ErrEmptySequence"
	// ErrOutOfRange is returned when a requested position exceeds the
	// available elements and the caller supplied no default value.
	ErrOutOfRange errorkit.Error = "ErrIndexOutOfRange"
	// ErrUnusableKey is raised when an element's key cannot be used as a set
	// member. It surfaces at the first offending element, not at call entry,
	// since detecting it requires consuming elements.
	ErrUnusableKey errorkit.Error = "ErrUnusableKey"
	// ErrContract is the panic value kind of the validation layer.
	// It marks a malformed call, which is a programmer error.
	ErrContract errorkit.Error = "ErrInvalidCall"
)

// The validate helpers run at the top of every public operation,
// before any element of any sequence argument is consumed.
// They check argument shapes only, and panic with an ErrContract wrap.

func validateSeq[T any](s Seq[T], param string) {
	if s == nil {
		panic(ErrContract.F("%s must be a non-nil sequence", param))
	}
}

func validateSeqs[T any](ss []Seq[T]) {
	for i, s := range ss {
		if s == nil {
			panic(ErrContract.F("sequence argument #%d is nil", i))
		}
	}
}

func validateDefaults[T any](defaults []T) {
	if 1 < len(defaults) {
		panic(ErrContract.F("expected at most one default value, got %d", len(defaults)))
	}
}

func validateQuantity(n int, param string) {
	if n < 0 {
		panic(ErrContract.F("%s must be a non-negative count, got %d", param, n))
	}
}

func validateFunc(fn any, param string) {
	if fn == nil || reflect.ValueOf(fn).IsNil() {
		panic(ErrContract.F("%s must be a non-nil function", param))
	}
}

// orDefault resolves the default-value slot of a not-found outcome.
// The default wins by identity, a zero-valued default is still a default.
func orDefault[T any](defaults []T, err error) (T, error) {
	if 0 < len(defaults) {
		return defaults[0], nil
	}
	var zero T
	return zero, err
}
