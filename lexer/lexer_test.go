package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unleashy/weald/lexer"
	"github.com/unleashy/weald/source"
	"github.com/unleashy/weald/token"
)

func tags(toks []token.Token) []token.Tag {
	out := make([]token.Tag, len(toks))
	for i, t := range toks {
		out[i] = t.Tag
	}
	return out
}

func TestTokenizeEmptySource(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", ""))
	require.Len(t, toks, 1)
	assert.Equal(t, token.End, toks[0].Tag)
	assert.True(t, problems.Empty())
}

func TestTokenizeLetDeclaration(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "let x = 1 + 2"))
	assert.True(t, problems.Empty())
	assert.Equal(t, []token.Tag{
		token.KwLet, token.Name, token.PEqual, token.Integer, token.PPlus, token.Integer, token.End,
	}, tags(toks))
}

func TestStreamAlwaysEndsInExactlyOneEnd(t *testing.T) {
	inputs := []string{"", "   ", "let x = 1", "@@@", `"unterminated`}
	for _, in := range inputs {
		toks, _ := lexer.Tokenize(source.New("t", in))
		endCount := 0
		for i, tk := range toks {
			if tk.Tag == token.End {
				endCount++
				assert.Equal(t, len(toks)-1, i, "End must be the last token")
			}
		}
		assert.Equal(t, 1, endCount, "input %q", in)
	}
}

func TestNewlineNeverFirstNorAdjacent(t *testing.T) {
	toks, _ := lexer.Tokenize(source.New("t", "\n\n\nlet x = 1\n\ny"))
	require.NotEmpty(t, toks)
	assert.NotEqual(t, token.Newline, toks[0].Tag)

	for i := 1; i < len(toks); i++ {
		if toks[i].Tag == token.Newline {
			assert.NotEqual(t, token.Newline, toks[i-1].Tag)
		}
	}
}

func TestHexAndBinaryIntegers(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "0xFFF_FF + 0b10_01"))
	require.True(t, problems.Empty())
	require.Len(t, toks, 4)
	assert.Equal(t, token.Integer, toks[0].Tag)
	assert.Equal(t, "0xFFF_FF", toks[0].Text)
	assert.Equal(t, token.Integer, toks[2].Tag)
	assert.Equal(t, "0b10_01", toks[2].Text)
}

func TestFloatLiteral(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "3.14e-2"))
	require.True(t, problems.Empty())
	require.Len(t, toks, 2)
	assert.Equal(t, token.Float, toks[0].Tag)
	assert.Equal(t, "3.14e-2", toks[0].Text)
}

func TestBadUnderscorePlacement(t *testing.T) {
	_, problems := lexer.Tokenize(source.New("t", "1_000_"))
	require.False(t, problems.Empty())
	assert.Equal(t, "syntax/invalid-token", problems.Items()[0].Desc.ID)
}

func TestNumberGluedToName(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "0Xff"))
	require.False(t, problems.Empty())
	require.Len(t, toks, 2)
	assert.Equal(t, token.Invalid, toks[0].Tag)
}

func TestNameAndKeywordLexing(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "foo-bar? baz! let"))
	require.True(t, problems.Empty())
	require.Len(t, toks, 4)
	assert.Equal(t, token.Name, toks[0].Tag)
	assert.Equal(t, "foo-bar?", toks[0].Text)
	assert.Equal(t, token.Name, toks[1].Tag)
	assert.Equal(t, "baz!", toks[1].Text)
	assert.Equal(t, token.KwLet, toks[2].Tag)
}

func TestDiscardKeyword(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "_"))
	require.True(t, problems.Empty())
	assert.Equal(t, token.KwDiscard, toks[0].Tag)
}

func TestStandardStringWithEscapes(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", `"hi\n\t\"there\""`))
	require.True(t, problems.Empty())
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Tag)
}

func TestUnterminatedStringAfterBackslash(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", `"foo\`))
	require.Len(t, toks, 2)
	assert.Equal(t, token.Invalid, toks[0].Tag)
	assert.Equal(t, token.End, toks[1].Tag)
	require.Len(t, problems.Items(), 1)
	assert.Equal(t, "unclosed string literal", problems.Items()[0].Desc.Message)
}

func TestNewlineInLineStringIsInvalid(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "\"foo\nbar\""))
	require.False(t, problems.Empty())
	assert.Equal(t, token.Invalid, toks[0].Tag)
}

func TestBlockString(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", `"""
  hello
  world
  """`))
	require.True(t, problems.Empty())
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Tag)
}

func TestRawString(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "`C:\\no\\escapes`"))
	require.True(t, problems.Empty())
	assert.Equal(t, token.String, toks[0].Tag)
	assert.Equal(t, "`C:\\no\\escapes`", toks[0].Text)
}

func TestPunctuationTwoCharPreferred(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "a == b != c && d || e"))
	require.True(t, problems.Empty())
	assert.Equal(t, []token.Tag{
		token.Name, token.PEqualEqual, token.Name, token.PBangEqual, token.Name,
		token.PAndAnd, token.Name, token.POrOr, token.Name, token.End,
	}, tags(toks))
}

func TestLoneAmpersandIsInvalid(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "a & b"))
	require.False(t, problems.Empty())
	assert.Equal(t, token.Invalid, toks[1].Tag)
}

func TestLineComment(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "let x = 1 -- this is a comment\nlet y = 2"))
	require.True(t, problems.Empty())
	assert.Equal(t, []token.Tag{
		token.KwLet, token.Name, token.PEqual, token.Integer,
		token.Newline,
		token.KwLet, token.Name, token.PEqual, token.Integer,
		token.End,
	}, tags(toks))
}

func TestShebangAndBOMAreIgnored(t *testing.T) {
	toks, problems := lexer.Tokenize(source.New("t", "\uFEFF#!/usr/bin/env weald\nlet x = 1"))
	require.True(t, problems.Empty())
	assert.Equal(t, token.KwLet, toks[0].Tag, "the shebang line's newline must not surface as a leading Newline token")
}

func TestNFCIdempotence(t *testing.T) {
	// "é" as a single precomposed code point is already NFC.
	toks, problems := lexer.Tokenize(source.New("t", "é"))
	require.True(t, problems.Empty())
	require.Len(t, toks, 2)
	assert.Equal(t, "é", toks[0].Text)
}

func TestLocationalCoverage(t *testing.T) {
	src := source.New("t", "let x = 1 + 2")
	toks, _ := lexer.Tokenize(src)
	for _, tk := range toks {
		if tk.Tag == token.End || tk.Tag == token.Newline {
			continue
		}
		assert.LessOrEqual(t, int(tk.Loc.Start+tk.Loc.Length), src.Len())
	}
}
