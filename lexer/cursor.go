package lexer

import (
	"unicode/utf8"

	"github.com/unleashy/weald/source"
)

// replacementChar is substituted for an unpaired surrogate half (or any
// other invalid UTF-8 byte) when a Cursor is asked to read the rune at its
// position. Callers only ever see the replacement character, which is not a
// forbidden rune: no caller reports the surrogate through the forbidden-rune
// path, and outside string literals and comments the lexer reports the
// replacement character as an ordinary invalid character.
const replacementChar = '�'

// Cursor is a position-tracking view over a Source's body. Its offset is
// moved only by its own methods and by the lexer that owns it (which
// rewinds it directly when backtracking); nothing aliases a Cursor's state, matching the
// "single mutator for the duration of lexing" design in the front-end this
// is ported from.
type Cursor struct {
	src *source.Source
	pos uint32
}

// NewCursor creates a Cursor positioned at the start of src.
func NewCursor(src *source.Source) *Cursor {
	return &Cursor{src: src}
}

// Mark is a saved Cursor offset, usable with Text and Locate to recover the
// span consumed since the mark was taken.
type Mark uint32

// NewMark saves the cursor's current offset.
func (c *Cursor) NewMark() Mark {
	return Mark(c.pos)
}

// Text returns the text consumed between mark and the cursor's current
// position.
func (c *Cursor) Text(mark Mark) string {
	return c.src.Body()[mark:c.pos]
}

// Locate returns the Loc spanning from mark to the cursor's current
// position.
func (c *Cursor) Locate(mark Mark) source.Loc {
	return source.FromRange(uint32(mark), c.pos)
}

// LocateHere returns a zero-length Loc at the cursor's current position.
func (c *Cursor) LocateHere() source.Loc {
	return source.Here(c.pos)
}

// Offset returns the cursor's current code-unit offset.
func (c *Cursor) Offset() uint32 {
	return c.pos
}

// IsEmpty reports whether the cursor has consumed the entire source.
func (c *Cursor) IsEmpty() bool {
	return int(c.pos) >= c.src.Len()
}

// decodeAt decodes the rune starting at byte offset i, returning it and its
// length in bytes. An unpaired surrogate (reachable only via an invalid
// WTF-8-ish encoding the lexer never itself produces but must tolerate)
// decodes as the replacement character with length 1, as does any other
// invalid byte.
func (c *Cursor) decodeAt(i uint32) (rune, int) {
	body := c.src.Body()
	if int(i) >= len(body) {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(body[i:])
	if r == utf8.RuneError && size <= 1 {
		return replacementChar, 1
	}
	return r, size
}

// Peek returns the rune at the cursor without consuming it. Returns
// utf8.RuneError (0xFFFD) and false at end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.IsEmpty() {
		return utf8.RuneError, false
	}
	r, _ := c.decodeAt(c.pos)
	return r, true
}

// Next consumes and returns the rune at the cursor's position. Returns
// false at end of input, leaving the cursor unmoved.
func (c *Cursor) Next() (rune, bool) {
	if c.IsEmpty() {
		return utf8.RuneError, false
	}
	r, size := c.decodeAt(c.pos)
	c.pos += uint32(size)
	return r, true
}

// Check reports whether the rune at the cursor satisfies pred, without
// consuming it.
func (c *Cursor) Check(pred func(rune) bool) bool {
	r, ok := c.Peek()
	return ok && pred(r)
}

// CheckRune reports whether the rune at the cursor is exactly r.
func (c *Cursor) CheckRune(r rune) bool {
	got, ok := c.Peek()
	return ok && got == r
}

// CheckString reports whether s occurs at the cursor's position.
func (c *Cursor) CheckString(s string) bool {
	body := c.src.Body()
	end := c.pos + uint32(len(s))
	return int(end) <= len(body) && body[c.pos:end] == s
}

// CheckNot is the negation of Check, but also true at end of input.
func (c *Cursor) CheckNot(pred func(rune) bool) bool {
	r, ok := c.Peek()
	return !ok || !pred(r)
}

// CheckNext reports whether the rune *after* the current one satisfies
// pred; used for small fixed lookahead (e.g. a sign followed by a digit
// starting a number).
func (c *Cursor) CheckNext(pred func(rune) bool) bool {
	if c.IsEmpty() {
		return false
	}
	_, size := c.decodeAt(c.pos)
	next := c.pos + uint32(size)
	if int(next) >= c.src.Len() {
		return false
	}
	r, _ := c.decodeAt(next)
	return pred(r)
}

// Match consumes the rune at the cursor iff it equals r, reporting whether
// it did.
func (c *Cursor) Match(r rune) bool {
	if c.CheckRune(r) {
		c.Next()
		return true
	}
	return false
}

// MatchFunc consumes and returns the rune at the cursor iff pred holds for
// it.
func (c *Cursor) MatchFunc(pred func(rune) bool) (rune, bool) {
	r, ok := c.Peek()
	if ok && pred(r) {
		c.Next()
		return r, true
	}
	return 0, false
}

// MatchString consumes s iff it occurs at the cursor's position.
func (c *Cursor) MatchString(s string) bool {
	if c.CheckString(s) {
		c.pos += uint32(len(s))
		return true
	}
	return false
}

// MatchSeq consumes n runes that each satisfy pred, all at once, or none.
func (c *Cursor) MatchSeq(n int, pred func(rune) bool) bool {
	start := c.pos
	for i := 0; i < n; i++ {
		if _, ok := c.MatchFunc(pred); !ok {
			c.pos = start
			return false
		}
	}
	return true
}

// MatchNext consumes two runes -- the current one and the one after it --
// iff the second satisfies pred.
func (c *Cursor) MatchNext(pred func(rune) bool) bool {
	if !c.CheckNext(pred) {
		return false
	}
	c.Next()
	c.Next()
	return true
}

// NextWhile consumes runes while pred holds, returning how many were
// consumed.
func (c *Cursor) NextWhile(pred func(rune) bool) int {
	n := 0
	for c.Check(pred) {
		c.Next()
		n++
	}
	return n
}

// UntilReason describes why NextUntil stopped.
type UntilReason int

const (
	// UntilMatched means a stop rune satisfying the predicate was reached
	// without consuming it.
	UntilMatched UntilReason = iota
	// UntilEmpty means end of input was reached before the predicate held.
	UntilEmpty
	// UntilForbidden means a forbidden rune was encountered; scanning
	// continues (the callback is invoked for every forbidden rune seen),
	// but the reason reports that at least one was found.
	UntilForbidden
)

// NextUntil consumes runes until stop holds (without consuming the
// stopping rune) or input is exhausted. onForbidden, if non-nil, is
// invoked once for every forbidden rune consumed along the way (as
// determined by the caller-supplied isForbidden predicate); it has no way
// to stop the scan, which always continues to consume through forbidden
// runes.
func (c *Cursor) NextUntil(stop, isForbidden func(rune) bool, onForbidden func(r rune, loc source.Loc)) UntilReason {
	sawForbidden := false
	for {
		r, ok := c.Peek()
		if !ok {
			if sawForbidden {
				return UntilForbidden
			}
			return UntilEmpty
		}
		if stop(r) {
			if sawForbidden {
				return UntilForbidden
			}
			return UntilMatched
		}

		mark := c.NewMark()
		c.Next()
		if isForbidden != nil && isForbidden(r) {
			sawForbidden = true
			if onForbidden != nil {
				onForbidden(r, c.Locate(mark))
			}
		}
	}
}
