package scanbuf

import (
	"regexp"
	"unicode/utf8"
)

// CharScanner is a cursor over the characters of a string. All positions
// (cursor, checkpoint, Take bounds) count Unicode scalar values.
type CharScanner struct {
	chars  []rune
	cursor int
	backup checkpoint
}

// NewCharScanner decodes text into characters. Malformed UTF-8 is rejected
// with a *DecodeError.
func NewCharScanner(text string) (*CharScanner, error) {
	s := &CharScanner{}
	if err := s.Reset(text); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces the buffer with text, moves the cursor to the start and
// clears the checkpoint. On a decode error the scanner is left unchanged.
func (s *CharScanner) Reset(text string) error {
	if err := validate(text); err != nil {
		return err
	}
	s.chars = []rune(text)
	s.cursor = 0
	s.backup = checkpoint{}
	return nil
}

func validate(text string) error {
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && w == 1 {
			return &DecodeError{Offset: i}
		}
		i += w
	}
	return nil
}

func (s *CharScanner) Mark() {
	s.backup.save(s.cursor)
}

func (s *CharScanner) Rollback() {
	s.backup.restore(&s.cursor)
}

// Read returns the n characters at the cursor and moves past them. If fewer
// than n characters remain it fails with a *RangeError and does not move.
func (s *CharScanner) Read(n int) (string, int, error) {
	if n < 0 || n > len(s.chars)-s.cursor {
		return "", 0, &RangeError{Op: "read", From: s.cursor, To: s.cursor + n, Len: len(s.chars)}
	}
	result := string(s.chars[s.cursor : s.cursor+n])
	s.cursor += n
	return result, n, nil
}

// Peek is Read without moving the cursor.
func (s *CharScanner) Peek(n int) (string, bool) {
	if n < 0 || n > len(s.chars)-s.cursor {
		return "", false
	}
	return string(s.chars[s.cursor : s.cursor+n]), true
}

// Advance moves the cursor forward by n, stopping at the end of the buffer.
func (s *CharScanner) Advance(n int) {
	if n <= 0 {
		return
	}
	if n >= len(s.chars)-s.cursor {
		s.cursor = len(s.chars)
	} else {
		s.cursor += n
	}
}

// Matches compares literal with the characters at the cursor. A literal that
// is not valid UTF-8 never matches.
func (s *CharScanner) Matches(literal string) bool {
	if !utf8.ValidString(literal) {
		return false
	}
	pos := s.cursor
	for _, r := range literal {
		if pos >= len(s.chars) || s.chars[pos] != r {
			return false
		}
		pos++
	}
	return true
}

// MatchesRegex compiles pattern and returns the first match anywhere in the
// rest of the buffer; the match does not have to start at the cursor. It
// returns "" if nothing matches or the cursor is at the end. An invalid
// pattern is reported as *PatternError.
func (s *CharScanner) MatchesRegex(pattern string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", &PatternError{Pattern: pattern, Err: err}
	}
	return s.MatchRegexp(re), nil
}

// MatchRegexp is MatchesRegex for an already compiled expression.
func (s *CharScanner) MatchRegexp(re *regexp.Regexp) string {
	if s.cursor >= len(s.chars) {
		return ""
	}
	return re.FindString(string(s.chars[s.cursor:]))
}

// Span counts the characters from the cursor for which pred holds, stopping
// at the first one that does not. i is the index relative to the cursor.
func (s *CharScanner) Span(pred func(r rune, i int) bool) int {
	n := 0
	for s.cursor+n < len(s.chars) && pred(s.chars[s.cursor+n], n) {
		n++
	}
	return n
}

func (s *CharScanner) Offset() int {
	return s.cursor
}

func (s *CharScanner) Len() int {
	return len(s.chars)
}

func (s *CharScanner) Remaining() int {
	return len(s.chars) - s.cursor
}

// Take returns the characters in [from, to) regardless of the cursor.
func (s *CharScanner) Take(from, to int) (string, error) {
	if from < 0 || from > to || to > len(s.chars) {
		return "", &RangeError{Op: "take", From: from, To: to, Len: len(s.chars)}
	}
	return string(s.chars[from:to]), nil
}

// Backup returns the checkpoint, or 0 if Mark was never called. A checkpoint
// at position 0 looks the same as no checkpoint; use Checkpoint to tell them
// apart.
func (s *CharScanner) Backup() int {
	if !s.backup.set {
		return 0
	}
	return s.backup.pos
}

func (s *CharScanner) Checkpoint() (pos int, ok bool) {
	return s.backup.pos, s.backup.set
}
