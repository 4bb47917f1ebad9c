package problem

import (
	"fmt"
	"io"
	"strings"

	"github.com/unleashy/weald/internal/width"
	"github.com/unleashy/weald/source"
)

// Renderer formats problems for a terminal. It is not part of the core
// data model; callers that just want machine-readable diagnostics should
// use Buffer.Items directly.
type Renderer struct {
	// Compact prints one line per problem with no source snippet.
	Compact bool
	// Tabstop controls how wide a '\t' renders as when lining up carets.
	// Zero defaults to 4.
	Tabstop int
}

// Render writes every problem in items to out, in order, against src.
func (r Renderer) Render(out io.Writer, src *source.Source, items []Problem) error {
	for _, p := range items {
		if err := r.renderOne(out, src, p); err != nil {
			return err
		}
	}
	return nil
}

func (r Renderer) renderOne(out io.Writer, src *source.Source, p Problem) error {
	rng := source.LineColumnAt(src, p.Loc)
	header := fmt.Sprintf("%s:%s: %s [%s]\n", src.Name(), rng.String(), p.Desc.Message, p.Desc.ID)

	if r.Compact {
		_, err := io.WriteString(out, header)
		return err
	}

	var sb strings.Builder
	sb.WriteString(header)

	lineStart, lineEnd := lineBounds(src.Body(), int(p.Loc.Start))
	line := strings.TrimSuffix(src.Body()[lineStart:lineEnd], "\r")

	sb.WriteString("  | ")
	sb.WriteString(line)
	sb.WriteByte('\n')

	tabstop := r.Tabstop
	if tabstop <= 0 {
		tabstop = 4
	}
	ruler := width.NewRuler(tabstop)
	caretCol := 0
	for _, ch := range src.Body()[lineStart:int(p.Loc.Start)] {
		caretCol = ruler.Measure(ch)
	}

	sb.WriteString("  | ")
	sb.WriteString(strings.Repeat(" ", caretCol))
	carets := 1
	if p.Loc.Length > 0 {
		carets = int(p.Loc.Length)
	}
	sb.WriteString(strings.Repeat("^", carets))
	sb.WriteByte('\n')

	_, err := io.WriteString(out, sb.String())
	return err
}

// lineBounds returns the [start, end) byte range of the line containing
// offset within body, excluding the line's own terminating '\n'.
func lineBounds(body string, offset int) (start, end int) {
	if offset > len(body) {
		offset = len(body)
	}
	start = strings.LastIndexByte(body[:offset], '\n') + 1
	if rest := strings.IndexByte(body[offset:], '\n'); rest < 0 {
		end = len(body)
	} else {
		end = offset + rest
	}
	return start, end
}
