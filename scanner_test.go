package scanbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Contract tests that hold for both addressing models. Inputs are ASCII so
// character and byte offsets coincide.
func forEachScanner(t *testing.T, input string, f func(t *testing.T, s Scanner)) {
	t.Run("char", func(t *testing.T) {
		s, err := NewCharScanner(input)
		require.NoError(t, err)
		f(t, s)
	})
	t.Run("byte", func(t *testing.T) {
		f(t, NewByteScanner(input))
	})
}

func TestScanner_MarkAdvanceRollback(t *testing.T) {
	const input = "abcdef"
	for k := 0; k <= len(input); k++ {
		forEachScanner(t, input, func(t *testing.T, s Scanner) {
			s.Advance(1)
			s.Mark()
			s.Advance(k)
			s.Rollback()
			assert.True(t, s.Matches(input[1:]))
		})
	}
}

func TestScanner_RollbackIdempotent(t *testing.T) {
	forEachScanner(t, "abcdef", func(t *testing.T, s Scanner) {
		s.Advance(2)
		s.Mark()
		s.Advance(3)
		s.Rollback()
		s.Rollback()
		assert.True(t, s.Matches("cdef"))
	})
}

func TestScanner_RollbackWithoutMark(t *testing.T) {
	forEachScanner(t, "abcdef", func(t *testing.T, s Scanner) {
		s.Advance(4)
		s.Rollback()
		assert.True(t, s.Matches("ef"))
	})
}

func TestScanner_AdvanceZero(t *testing.T) {
	forEachScanner(t, "abc", func(t *testing.T, s Scanner) {
		s.Advance(0)
		assert.True(t, s.Matches("abc"))
	})
}

func TestScanner_MatchesLongerThanRemaining(t *testing.T) {
	const input = "abcd"
	for pos := 0; pos <= len(input); pos++ {
		forEachScanner(t, input, func(t *testing.T, s Scanner) {
			s.Advance(pos)
			assert.False(t, s.Matches(input[pos:]+"x"))
			assert.True(t, s.Matches(input[pos:]))
		})
	}
}
