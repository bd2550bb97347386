package scanbuf

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/vippsas/scanbuf/internal/utils"
)

// ByteScanner is a cursor over the UTF-8 encoding of a string, addressed by
// byte. Unlike CharScanner it does not clamp Advance and does not expose its
// offset; callers track byte positions themselves.
type ByteScanner struct {
	buf    []byte
	cursor int
	backup checkpoint
}

func NewByteScanner(text string) *ByteScanner {
	s := &ByteScanner{}
	s.Reset(text)
	return s
}

// Reset stores the bytes of text as the new buffer. Invalid UTF-8 is kept
// as-is and only replaced when decoded by Peek.
func (s *ByteScanner) Reset(text string) {
	s.buf = []byte(text)
	s.cursor = 0
	s.backup = checkpoint{}
}

func (s *ByteScanner) Mark() {
	s.backup.save(s.cursor)
}

func (s *ByteScanner) Rollback() {
	s.backup.restore(&s.cursor)
}

// Advance moves the cursor by exactly bytesize bytes. There is no clamping;
// a cursor moved past the end makes Peek and Matches fail until rolled back.
func (s *ByteScanner) Advance(bytesize int) {
	s.cursor += bytesize
}

func (s *ByteScanner) Matches(literal string) bool {
	window, ok := s.window(len(literal))
	return ok && string(window) == literal
}

// Peek decodes bytesize bytes at the cursor without moving it. If the window
// ends inside a multi-byte character it is widened one byte at a time, by at
// most utf8.UTFMax-1 bytes and never past the end of the buffer. The returned
// count is the number of bytes actually covered, which may exceed bytesize.
// Bytes that are still invalid after widening decode to U+FFFD.
//
// ok is false, with an empty result, when the initial window does not fit.
func (s *ByteScanner) Peek(bytesize int) (text string, n int, ok bool) {
	window, ok := s.window(bytesize)
	if !ok {
		return "", 0, false
	}
	n = bytesize
	for extra := 0; !utf8.Valid(window) && extra < utf8.UTFMax-1; extra++ {
		wider, ok := s.window(n + 1)
		if !ok {
			break
		}
		if utils.Enabled() {
			utils.DPrint("widening peek at byte %d: %s -> %s\n", s.cursor, utils.DValue(string(window)), utils.DValue(string(wider)))
		}
		window = wider
		n++
	}
	return decodeLossy(window), n, true
}

func (s *ByteScanner) window(size int) ([]byte, bool) {
	if size < 0 || s.cursor < 0 || s.cursor > len(s.buf) || size > len(s.buf)-s.cursor {
		return nil, false
	}
	return s.buf[s.cursor : s.cursor+size], true
}

func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(decoded)
}
