// Package scanbuf implements backtracking scanning buffers: a cursor over an
// in-memory input with lookahead, literal and regexp matching at the cursor,
// a single-slot checkpoint and range extraction.
//
// Two variants exist. CharScanner addresses the input by character (Unicode
// scalar value), so every position is a valid boundary. ByteScanner addresses
// the UTF-8 encoding by byte and repairs windows that would split a
// multi-byte character.
//
// Scanners are not safe for concurrent use.
package scanbuf

// Scanner is the capability shared by both variants. The read primitive
// differs per variant (CharScanner.Read, ByteScanner.Peek) and is therefore
// not part of the interface.
type Scanner interface {
	// Mark saves the cursor in the checkpoint slot, overwriting any
	// previous checkpoint.
	Mark()

	// Rollback moves the cursor back to the checkpoint. Without a prior
	// Mark it does nothing.
	Rollback()

	// Advance moves the cursor forward.
	Advance(n int)

	// Matches reports whether literal appears at the cursor. It never moves
	// the cursor and returns false if literal would run past the end.
	Matches(literal string) bool
}

var (
	_ Scanner = (*CharScanner)(nil)
	_ Scanner = (*ByteScanner)(nil)
)

// checkpoint is the single-slot saved position used by both variants.
type checkpoint struct {
	pos int
	set bool
}

func (c *checkpoint) save(pos int) {
	c.pos = pos
	c.set = true
}

func (c *checkpoint) restore(cursor *int) {
	if c.set {
		*cursor = c.pos
	}
}
