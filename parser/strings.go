package parser

import (
	"strconv"
	"strings"

	"github.com/unleashy/weald/ast"
	"github.com/unleashy/weald/source"
)

// parseStringLiteral computes a String node's delimiter locations and
// interpreted value from its raw token text. Escape syntax was already
// validated by the lexer; malformed escapes are rendered best-effort here
// rather than re-diagnosed.
func (p *parser) parseStringLiteral() ast.Expr {
	tok := p.advance()
	text := tok.Text
	start := tok.Loc.Start

	var opening, content, closing source.Loc
	var interpreted string

	switch {
	case strings.HasPrefix(text, `"""`):
		opening = source.FromRange(start, start+3)
		body := text[3 : len(text)-3]
		closing = source.FromRange(start+uint32(len(text))-3, start+uint32(len(text)))
		content = source.FromRange(opening.End(), closing.Start)
		interpreted = interpretBlock(body, true)
	case strings.HasPrefix(text, "```"):
		opening = source.FromRange(start, start+3)
		body := text[3 : len(text)-3]
		closing = source.FromRange(start+uint32(len(text))-3, start+uint32(len(text)))
		content = source.FromRange(opening.End(), closing.Start)
		interpreted = interpretBlock(body, false)
	case strings.HasPrefix(text, `"`):
		opening = source.FromRange(start, start+1)
		body := text[1 : len(text)-1]
		closing = source.FromRange(start+uint32(len(text))-1, start+uint32(len(text)))
		content = source.FromRange(opening.End(), closing.Start)
		interpreted = interpretLine(body, true)
	default: // raw line, backtick
		opening = source.FromRange(start, start+1)
		body := text[1 : len(text)-1]
		closing = source.FromRange(start+uint32(len(text))-1, start+uint32(len(text)))
		content = source.FromRange(opening.End(), closing.Start)
		interpreted = interpretLine(body, false)
	}

	return ast.String{
		Opening:     opening,
		Content:     content,
		Closing:     closing,
		Interpreted: interpreted,
		Span:        tok.Loc,
	}
}

// interpretLine computes the interpreted value of a line string's body.
// When escapes is false (raw strings), the body is returned verbatim.
func interpretLine(body string, escapes bool) string {
	if !escapes {
		return body
	}

	var sb strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}

		consumed, text := decodeEscape(body[i:])
		sb.WriteString(text)
		if consumed == 0 {
			i++
		} else {
			i += consumed
		}
	}
	return sb.String()
}

// decodeEscape interprets one escape sequence at the start of s (which
// begins with the backslash), returning how many bytes it consumed and
// its replacement text. A malformed escape is rendered as its own source
// text verbatim, since the lexer already reported the problem.
func decodeEscape(s string) (consumed int, text string) {
	if len(s) < 2 {
		return len(s), s
	}

	switch s[1] {
	case '"':
		return 2, `"`
	case '\\':
		return 2, `\`
	case 'e':
		return 2, "\x1b"
	case 'n':
		return 2, "\n"
	case 'r':
		return 2, "\r"
	case 't':
		return 2, "\t"
	case 'x':
		if len(s) >= 4 {
			if n, err := strconv.ParseUint(s[2:4], 16, 32); err == nil {
				return 4, string(rune(n))
			}
		}
		return 2, s[:2]
	case 'u':
		if len(s) >= 3 && s[2] == '{' {
			end := strings.IndexByte(s[3:], '}')
			if end < 0 {
				return 2, s[:2]
			}
			hex := s[3 : 3+end]
			if n, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return 3 + end + 1, string(rune(n))
			}
			return 3 + end + 1, s[:3+end+1]
		}
		if len(s) >= 6 {
			if n, err := strconv.ParseUint(s[2:6], 16, 32); err == nil {
				return 6, string(rune(n))
			}
		}
		return 2, s[:2]
	case '\n':
		return 2 + skipContinuation(s[2:]), ""
	case '\r':
		n := 2
		if len(s) > 2 && s[2] == '\n' {
			n++
		}
		return n + skipContinuation(s[n:]), ""
	default:
		return 2, s[:2]
	}
}

// skipContinuation returns how many additional bytes of whitespace/newline
// a "\<newline>" line continuation elides beyond the newline itself.
func skipContinuation(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t' || s[n] == '\n' || s[n] == '\r') {
		n++
	}
	return n
}

// interpretBlock computes the interpreted value of a block string's body:
// strip the common leading-whitespace prefix of non-blank lines, drop a
// leading/trailing blank line adjacent to the delimiters, rejoin the lines,
// then interpret escapes over the joined text (for the standard variant
// only).
func interpretBlock(body string, escapes bool) string {
	lines := strings.Split(body, "\n")

	prefix := commonIndent(lines)
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if len(trimmed) >= len(prefix) && strings.HasPrefix(trimmed, prefix) {
			trimmed = trimmed[len(prefix):]
		} else {
			trimmed = strings.TrimLeft(trimmed, " \t")
		}
		lines[i] = trimmed
	}

	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	joined := strings.Join(lines, "\n")
	return interpretLine(joined, escapes)
}

// commonIndent finds the longest literal byte-for-byte common prefix of
// whitespace among every non-blank line, stopping at the first
// non-whitespace character; mixed tabs and spaces simply stop the
// prefix where they first disagree, rather than being given equivalent
// widths.
func commonIndent(lines []string) string {
	var prefix string
	first := true
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		indent := leadingWhitespace(trimmed)
		if first {
			prefix = indent
			first = false
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}
	return prefix
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
