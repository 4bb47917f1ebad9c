package source

import "fmt"

// Loc is a half-open span of code units [Start, Start+Length) within some
// Source. It carries no reference to the Source it came from; callers pair
// it back up with a *Source when they need to resolve text or line/column
// information.
//
// A zero-length Loc is legal: it anchors a diagnostic to "here" without
// claiming any text, e.g. for a [Missing] AST node.
type Loc struct {
	Start, Length uint32
}

// End returns Start + Length.
func (l Loc) End() uint32 {
	return l.Start + l.Length
}

// IsZero reports whether l has zero length. This does not mean l is the
// zero value of Loc; Start may still be nonzero.
func (l Loc) IsZero() bool {
	return l.Length == 0
}

// FromRange builds the Loc spanning [a, b). Panics if a > b, per the
// precondition in the spec this type is drawn from.
func FromRange(a, b uint32) Loc {
	if a > b {
		panic(fmt.Sprintf("source: FromRange called with a > b (%d > %d)", a, b))
	}
	return Loc{Start: a, Length: b - a}
}

// Join returns the smallest Loc containing both l and other.
func (l Loc) Join(other Loc) Loc {
	start := min(l.Start, other.Start)
	end := max(l.End(), other.End())
	return FromRange(start, end)
}

// Here returns a zero-length Loc anchored at offset.
func Here(offset uint32) Loc {
	return Loc{Start: offset}
}

func (l Loc) String() string {
	return fmt.Sprintf("%d+%d", l.Start, l.Length)
}
