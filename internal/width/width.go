// Package width exports functions which measure the number of terminal
// window cells a string is expected to use, for laying out the console
// diagnostic renderer.
//
// Measurement is delegated to github.com/rivo/uniseg, which implements the
// same East-Asian-width-aware algorithm the teacher's hand-ported table
// covered; the pack this module was built from did not retrieve that
// table's generated companion file, so uniseg.StringWidth stands in for it
// directly rather than leaving a dangling reference.
package width

import "github.com/rivo/uniseg"

// Width makes a best-effort guess at the width of s when displayed on a
// terminal. Tabstops ('\t') justify text to the next column that is a
// multiple of tabstop.
func Width(s string, tabstop int) (width int) {
	for _, seg := range splitOnTabs(s) {
		if seg == "\t" {
			width += tabstop - width%tabstop
			continue
		}
		width += uniseg.StringWidth(seg)
	}
	return width
}

// splitOnTabs splits s into runs of non-tab text interleaved with
// single-character "\t" runs, preserving every tab's position.
func splitOnTabs(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			if i > start {
				out = append(out, s[start:i])
			}
			out = append(out, "\t")
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// Ruler tracks the state of an ongoing width measurement, so a caller can
// stop mid-string, use the running width, and continue.
//
// A zero Ruler is ready to use.
type Ruler struct {
	tabstop int
	width   int
}

// NewRuler creates a Ruler with the given tabstop width. A tabstop <= 0
// defaults to 4.
func NewRuler(tabstop int) *Ruler {
	if tabstop <= 0 {
		tabstop = 4
	}
	return &Ruler{tabstop: tabstop}
}

// Measure pushes a rune onto the running tally and returns the ruler's
// total width so far.
func (r *Ruler) Measure(ch rune) int {
	if r.tabstop <= 0 {
		r.tabstop = 4
	}
	if ch == '\t' {
		r.width += r.tabstop - r.width%r.tabstop
	} else {
		r.width += uniseg.StringWidth(string(ch))
	}
	return r.width
}

// Width returns the width this ruler has measured so far.
func (r *Ruler) Width() int {
	return r.width
}
