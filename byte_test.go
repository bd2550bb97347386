package scanbuf

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestByteScanner_Peek(t *testing.T) {
	test := func(input string, advance, bytesize int, expected string, expectedN int) func(*testing.T) {
		return func(t *testing.T) {
			s := NewByteScanner(input)
			s.Advance(advance)
			s.Mark()
			text, n, ok := s.Peek(bytesize)
			assert.True(t, ok)
			assert.Equal(t, expected, text)
			assert.Equal(t, expectedN, n)
			assert.True(t, s.Matches(input[advance:]), "peek must not move the cursor")
		}
	}

	t.Run("ascii", test("hello", 0, 3, "hel", 3))
	t.Run("zero", test("hello", 2, 0, "", 0))
	t.Run("zero at end", test("hello", 5, 0, "", 0))
	t.Run("two byte char widened", test("ąb", 0, 1, "ą", 2))
	t.Run("whole two byte char", test("ąb", 0, 2, "ą", 2))
	t.Run("window ends inside char", test("aąb", 0, 2, "aą", 3))
	t.Run("three byte char", test("a€", 1, 1, "€", 3))
	t.Run("three byte char from two", test("a€", 1, 2, "€", 3))
	t.Run("four byte char", test("😀!", 0, 1, "😀", 4))
	t.Run("after multibyte", test("ąb", 2, 1, "b", 1))
}

func TestByteScanner_PeekInvalid(t *testing.T) {
	t.Run("widening stops at end of buffer", func(t *testing.T) {
		s := NewByteScanner("\xe2\x82")
		text, n, ok := s.Peek(1)
		assert.True(t, ok)
		assert.Equal(t, 2, n)
		assert.True(t, utf8.ValidString(text))
		assert.Contains(t, text, string(utf8.RuneError))
	})

	t.Run("residual invalid byte is replaced", func(t *testing.T) {
		s := NewByteScanner("\xffab")
		text, n, ok := s.Peek(1)
		assert.True(t, ok)
		assert.Equal(t, 3, n)
		assert.Equal(t, "\uFFFDab", text)
	})

	t.Run("widening is capped", func(t *testing.T) {
		s := NewByteScanner("\xffaaaaaaa")
		_, n, ok := s.Peek(1)
		assert.True(t, ok)
		assert.Equal(t, utf8.UTFMax, n)

		_, n, ok = s.Peek(3)
		assert.True(t, ok)
		assert.Equal(t, 3+utf8.UTFMax-1, n)
	})
}

func TestByteScanner_PeekOverrun(t *testing.T) {
	s := NewByteScanner("ab")
	text, n, ok := s.Peek(3)
	assert.False(t, ok)
	assert.Equal(t, "", text)
	assert.Equal(t, 0, n)

	_, _, ok = s.Peek(-1)
	assert.False(t, ok)

	s = NewByteScanner("abc")
	s.Advance(1)
	text, n, ok = s.Peek(math.MaxInt)
	assert.False(t, ok)
	assert.Equal(t, "", text)
	assert.Equal(t, 0, n)
	assert.False(t, s.Matches(string(make([]byte, 3))))

	s.Advance(math.MaxInt - 1)
	_, _, ok = s.Peek(1)
	assert.False(t, ok)
	assert.False(t, s.Matches(""))
}

func TestByteScanner_MatchesInvalidLiteral(t *testing.T) {
	s := NewByteScanner("\xffx")
	assert.True(t, s.Matches("\xff"))
	assert.False(t, s.Matches("\uFFFD"))
}

func TestByteScanner_Matches(t *testing.T) {
	s := NewByteScanner("ąb")
	assert.True(t, s.Matches("ą"))
	assert.True(t, s.Matches("ąb"))
	assert.False(t, s.Matches("ąbc"))

	s.Advance(1)
	assert.False(t, s.Matches("b"), "cursor is inside ą")
	s.Advance(1)
	assert.True(t, s.Matches("b"))
	assert.True(t, s.Matches(""))
}

func TestByteScanner_AdvanceIsNotClamped(t *testing.T) {
	s := NewByteScanner("ab")
	s.Mark()
	s.Advance(5)

	assert.False(t, s.Matches(""))
	_, _, ok := s.Peek(0)
	assert.False(t, ok)

	s.Rollback()
	assert.True(t, s.Matches("ab"))
}

func TestByteScanner_Reset(t *testing.T) {
	s := NewByteScanner("abc")
	s.Advance(2)
	s.Mark()
	s.Reset("xyz")
	s.Advance(1)
	s.Rollback()
	assert.True(t, s.Matches("yz"), "reset must clear the checkpoint")
}
