package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unleashy/weald/token"
)

func TestLookupKeyword(t *testing.T) {
	tag, ok := token.Lookup("let")
	assert.True(t, ok)
	assert.Equal(t, token.KwLet, tag)

	_, ok = token.Lookup("notakeyword")
	assert.False(t, ok)
}

func TestSingleCharPunct(t *testing.T) {
	tag, ok := token.SingleCharPunct('+')
	assert.True(t, ok)
	assert.Equal(t, token.PPlus, tag)

	_, ok = token.SingleCharPunct('~')
	assert.False(t, ok, "'~' has no single-character token of its own")
}

func TestTwoCharPunct(t *testing.T) {
	tag, ok := token.TwoCharPunct('=', '=')
	assert.True(t, ok)
	assert.Equal(t, token.PEqualEqual, tag)

	_, ok = token.TwoCharPunct('+', '+')
	assert.False(t, ok)
}

func TestTokenHasText(t *testing.T) {
	assert.True(t, token.Token{Tag: token.Name}.HasText())
	assert.True(t, token.Token{Tag: token.Invalid}.HasText())
	assert.False(t, token.Token{Tag: token.PPlus}.HasText())
	assert.False(t, token.Token{Tag: token.End}.HasText())
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "'let'", token.KwLet.String())
	assert.Equal(t, "end of input", token.End.String())
}
