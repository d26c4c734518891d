package seqkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/seqkit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestErrContract(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a nil sequence argument is rejected up front", func(t *testcase.T) {
		assertContractViolation(t, func() { seqkit.First[int](nil) })
		assertContractViolation(t, func() { seqkit.Last[int](nil) })
		assertContractViolation(t, func() { seqkit.Nth[int](nil, 0) })
		assertContractViolation(t, func() { seqkit.Head[int](nil, 1) })
		assertContractViolation(t, func() { seqkit.Tail[int](nil, 1) })
		assertContractViolation(t, func() { seqkit.Reverse[int](nil) })
		assertContractViolation(t, func() { seqkit.FirstTrue[int](nil, nil) })
		assertContractViolation(t, func() { seqkit.LastFalse[int](nil, nil) })
		assertContractViolation(t, func() { seqkit.Quantify[int](nil, nil) })
		assertContractViolation(t, func() { seqkit.Partition[int](nil, nil) })
		assertContractViolation(t, func() { seqkit.UniqueEverSeen[int](nil) })
		assertContractViolation(t, func() { seqkit.Pairwise[int](nil) })
		assertContractViolation(t, func() { seqkit.NCycles[int](nil, 2) })
		assertContractViolation(t, func() { seqkit.Prepend[int](42, nil) })
		assertContractViolation(t, func() { seqkit.Append[int](nil, 42) })
		assertContractViolation(t, func() { seqkit.Length[int](nil) })
	})

	s.Test("a nil member of a variadic sequence list is rejected", func(t *testcase.T) {
		assertContractViolation(t, func() {
			seqkit.RoundRobin(bare(1), nil, bare(2))
		})
	})

	s.Test("at most one default value is accepted", func(t *testcase.T) {
		assertContractViolation(t, func() { seqkit.First(bare(1), 2, 3) })
		assertContractViolation(t, func() { seqkit.Last(bare(1), 2, 3) })
		assertContractViolation(t, func() { seqkit.Nth(bare(1), 0, 2, 3) })
		assertContractViolation(t, func() { seqkit.FirstTrue(bare(1), nil, 2, 3) })
	})

	s.Test("the violation is raised before any element is consumed", func(t *testcase.T) {
		var pulled int
		assertContractViolation(t, func() {
			seqkit.First(counting(&pulled), 1, 2)
		})
		assert.Equal(t, 0, pulled)
	})

	s.Test("the panic value describes the offending argument", func(t *testcase.T) {
		recovered := assert.Panic(t, func() { seqkit.Reverse[int](nil) })
		err, ok := recovered.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, seqkit.ErrContract)
		assert.Contain(t, err.Error(), "non-nil sequence")
	})
}

func TestErrEmpty(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("errors.Is matches results coming from different operations", func(t *testcase.T) {
		_, err := seqkit.First(bare[int]())
		assert.ErrorIs(t, err, seqkit.ErrEmpty)
		_, err = seqkit.Last(bare[int]())
		assert.ErrorIs(t, err, seqkit.ErrEmpty)
		_, err = seqkit.FirstTrue(bare(0, 0), func(v int) bool { return 0 < v })
		assert.ErrorIs(t, err, seqkit.ErrEmpty)
	})

	s.Test("the error is distinct from the out-of-range error", func(t *testcase.T) {
		assert.False(t, errors.Is(seqkit.ErrEmpty, seqkit.ErrOutOfRange))
		_, err := seqkit.Nth(bare(1, 2), 5)
		assert.ErrorIs(t, err, seqkit.ErrOutOfRange)
		assert.False(t, errors.Is(err, seqkit.ErrEmpty))
	})
}
