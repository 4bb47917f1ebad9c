package problem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unleashy/weald/problem"
	"github.com/unleashy/weald/source"
)

func TestNewProblem(t *testing.T) {
	loc := source.FromRange(3, 7)
	p := problem.New("syntax/expected-expr", "expected an expression", loc)
	assert.Equal(t, "syntax/expected-expr", p.Desc.ID)
	assert.Equal(t, "expected an expression", p.Desc.Message)
	assert.Equal(t, loc, p.Loc)
}

func TestBufferStartsEmpty(t *testing.T) {
	var b problem.Buffer
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Items())
}

func TestBufferAddAppendsInOrder(t *testing.T) {
	var b problem.Buffer
	b.Add("syntax/a", "first", source.Here(0))
	b.Add("syntax/b", "second", source.Here(1))

	assert.False(t, b.Empty())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "syntax/a", b.Items()[0].Desc.ID)
	assert.Equal(t, "syntax/b", b.Items()[1].Desc.ID)
}

func TestBufferAppendExistingProblem(t *testing.T) {
	var b problem.Buffer
	p := problem.New("syntax/c", "third", source.Here(2))
	b.Append(p)

	assert.Equal(t, 1, b.Len())
	assert.Equal(t, p, b.Items()[0])
}

func TestBufferNeverDeduplicates(t *testing.T) {
	var b problem.Buffer
	loc := source.Here(5)
	b.Add("syntax/dup", "same message", loc)
	b.Add("syntax/dup", "same message", loc)

	assert.Equal(t, 2, b.Len(), "Buffer must keep every problem, even exact duplicates")
	assert.Equal(t, b.Items()[0], b.Items()[1])
}
