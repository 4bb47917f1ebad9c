// Package source defines the in-memory source object the Weald front-end
// operates over, along with byte-offset locations and their derived
// line/column view.
//
// A [Source] is immutable once constructed: its name and body never change,
// which lets derived data (the line index, see [LineIndices]) be computed
// once and cached for the lifetime of the value.
package source

// Source is a named, immutable span of Weald program text.
//
// Name is used only for diagnostics (e.g. a file path, or "<repl>"); it has
// no bearing on lexing or parsing. Body is treated as a sequence of Unicode
// code points for the purposes of §4 of the identifier/number/string
// grammars, but offsets (as used by [Loc]) are counted in code units of
// Body's native Go encoding (i.e. bytes, since Go strings are UTF-8), which
// matches "byte/code-unit offsets" in the model this front-end is ported
// from.
type Source struct {
	name string
	body string
}

// New constructs a Source with the given name and body.
func New(name, body string) *Source {
	return &Source{name: name, body: body}
}

// Name returns this source's diagnostic name.
func (s *Source) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Body returns this source's text.
func (s *Source) Body() string {
	if s == nil {
		return ""
	}
	return s.body
}

// Len returns len(s.Body()), the number of code units in this source.
func (s *Source) Len() int {
	return len(s.Body())
}

// Slice returns the substring of Body named by loc.
//
// Panics if loc does not fit inside this source, matching the invariant
// that every Loc handed out by this package is a valid slice of the body.
func (s *Source) Slice(loc Loc) string {
	return s.Body()[loc.Start : loc.Start+loc.Length]
}
