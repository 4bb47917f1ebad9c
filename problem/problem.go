// Package problem defines the diagnostic data carrier shared by the lexer
// and parser: a stable, machine-readable problem id and message, pinned to
// a source location.
package problem

import "github.com/unleashy/weald/source"

// Desc is a problem's stable identity: a slash-delimited category id (the
// first segment names the category, e.g. "syntax") and a human-readable
// message.
type Desc struct {
	ID      string
	Message string
}

// Problem is one diagnostic, produced by either the lexer or the parser.
type Problem struct {
	Desc Desc
	Loc  source.Loc
}

// New builds a Problem from an id, message, and location.
func New(id, message string, loc source.Loc) Problem {
	return Problem{Desc: Desc{ID: id, Message: message}, Loc: loc}
}

// Buffer is an append-only, order-preserving collection of Problems.
//
// Unlike a typical error-reporting type, Buffer never deduplicates: the
// same Loc may carry multiple Problems, and the insertion order is load
// bearing for anything that diffs two runs against each other (golden
// tests, §8's determinism property).
type Buffer struct {
	items []Problem
}

// Add appends a problem to the buffer.
func (b *Buffer) Add(id, message string, loc source.Loc) {
	b.items = append(b.items, New(id, message, loc))
}

// Append appends an already-constructed Problem.
func (b *Buffer) Append(p Problem) {
	b.items = append(b.items, p)
}

// Items returns the buffered problems in insertion order. The returned
// slice aliases the buffer's storage and must not be mutated.
func (b *Buffer) Items() []Problem {
	return b.items
}

// Len returns the number of buffered problems.
func (b *Buffer) Len() int {
	return len(b.items)
}

// Empty reports whether no problems have been buffered.
func (b *Buffer) Empty() bool {
	return len(b.items) == 0
}
