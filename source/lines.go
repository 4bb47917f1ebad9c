package source

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rivo/uniseg"
	"golang.org/x/sync/singleflight"
)

// LineIndices is a prefix index of line-start offsets for some source text,
// built once and reused for every LineColumn query against that text.
//
// This mirrors the "prefix sum of line lengths" index the reference
// front-end's line-column model is built on: offset 0 is always the first
// entry, and every offset immediately following a '\n' is an entry
// thereafter. A "\r\n" pair only ever contributes the offset after the
// '\n', since we only ever break on '\n' -- this is what makes CRLF count
// as a single line break rather than two.
type LineIndices struct {
	starts []uint32
}

// computeLineIndices scans text once and records every line-start offset.
func computeLineIndices(text string) *LineIndices {
	starts := make([]uint32, 1, 16)
	starts[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	return &LineIndices{starts: starts}
}

// lineForOffset returns the 0-based line number containing offset.
func (li *LineIndices) lineForOffset(offset uint32) int {
	i, exact := slices.BinarySearch(li.starts, offset)
	if !exact {
		i--
	}
	return i
}

// LineStart returns the code-unit offset at which the given 0-based line
// begins.
func (li *LineIndices) LineStart(line int) uint32 {
	return li.starts[line]
}

// NumLines returns the number of lines text was split into.
func (li *LineIndices) NumLines() int {
	return len(li.starts)
}

// lineIndexCache memoizes LineIndices per *Source identity (not body
// content, per the concurrency model in the spec this is ported from: the
// cache key is the Source's identity, and concurrent first-computations for
// the same Source are collapsed rather than raced) so that repeated
// LineColumn lookups against the same source don't re-scan its text.
var lineIndexCache = struct {
	mu    sync.Mutex
	byPtr map[*Source]*LineIndices
	group singleflight.Group
}{byPtr: map[*Source]*LineIndices{}}

func linesFor(s *Source) *LineIndices {
	lineIndexCache.mu.Lock()
	if li, ok := lineIndexCache.byPtr[s]; ok {
		lineIndexCache.mu.Unlock()
		return li
	}
	lineIndexCache.mu.Unlock()

	key := fmt.Sprintf("%p", s)
	v, _, _ := lineIndexCache.group.Do(key, func() (any, error) {
		lineIndexCache.mu.Lock()
		if li, ok := lineIndexCache.byPtr[s]; ok {
			lineIndexCache.mu.Unlock()
			return li, nil
		}
		lineIndexCache.mu.Unlock()

		li := computeLineIndices(s.Body())

		lineIndexCache.mu.Lock()
		lineIndexCache.byPtr[s] = li
		lineIndexCache.mu.Unlock()
		return li, nil
	})
	return v.(*LineIndices)
}

// LineColumn is a 1-based line/column position, where column counts
// grapheme clusters (not code units), matching how a terminal or editor
// would report a cursor position.
type LineColumn struct {
	Line, Column int
}

// FromIndex computes the LineColumn of the code-unit offset i within s.
func FromIndex(s *Source, i uint32) LineColumn {
	li := linesFor(s)
	line := li.lineForOffset(i)
	lineStart := li.LineStart(line)

	text := s.Body()
	column := uniseg.GraphemeClusterCount(text[lineStart:i]) + 1

	// A location pointing exactly at the '\n' of a "\r\n" pair would, by
	// slicing text[lineStart:i], count the lone '\r' as its own grapheme
	// cluster (since the slice stops short of pairing it with the '\n').
	// Correct for that so CRLF always measures as a single column step.
	if i > 0 && i <= uint32(len(text)) && text[i-1] == '\r' && i < uint32(len(text)) && text[i] == '\n' {
		column--
	}

	return LineColumn{Line: line + 1, Column: column}
}

// LineColumnRange is a derived range view for diagnostics, covering
// [start, end) of some source, formatted per [LineColumnRange.String].
type LineColumnRange struct {
	Start, End LineColumn
}

// RangeFromLoc computes the LineColumnRange spanning loc within s.
func RangeFromLoc(s *Source, loc Loc) LineColumnRange {
	return LineColumnRange{
		Start: FromIndex(s, loc.Start),
		End:   FromIndex(s, loc.End()),
	}
}

// String renders the range: "L:C" when the range is empty or covers a
// single grapheme (End is one column after Start on the same line),
// "L:C1-C2" otherwise on one line, else "L1:C1-L2:C2".
func (r LineColumnRange) String() string {
	switch {
	case r.Start == r.End,
		r.Start.Line == r.End.Line && r.End.Column == r.Start.Column+1:
		return fmt.Sprintf("%d:%d", r.Start.Line, r.Start.Column)
	case r.Start.Line == r.End.Line:
		return fmt.Sprintf("%d:%d-%d", r.Start.Line, r.Start.Column, r.End.Column)
	default:
		return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
	}
}

// LineColumnAt is the SourceInfo.lineColumnAt entry point from the
// external-interfaces section: a derived view of a Loc for diagnostics.
func LineColumnAt(s *Source, loc Loc) LineColumnRange {
	return RangeFromLoc(s, loc)
}
