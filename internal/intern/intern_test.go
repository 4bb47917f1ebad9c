package intern_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unleashy/weald/internal/intern"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"a",
		"abc",
		"?",
		"xy.z",
		"a_b_c",
		".....",
		"foo.",
		"foo.a",
		"very long",
		" ",
		"verylong",
	}

	var table intern.Table
	for i := range 3 {
		for _, s := range data {
			t.Run(fmt.Sprintf("%s/%d", s, i), func(t *testing.T) {
				t.Parallel()

				id := table.Intern(s)
				assert.Equal(t, s, table.Value(id), "id: %v", id)
			})
		}
	}
}

func TestInternReturnsSameIDForSameString(t *testing.T) {
	var table intern.Table

	first := table.Intern("hello")
	second := table.Intern("hello")
	assert.Equal(t, first, second)
}

func TestInternDistinctStringsGetDistinctIDs(t *testing.T) {
	var table intern.Table

	a := table.Intern("alpha")
	b := table.Intern("beta")
	assert.NotEqual(t, a, b)
}

func TestInternEmptyStringIsTheZeroID(t *testing.T) {
	var table intern.Table
	assert.Equal(t, intern.ID(0), table.Intern(""))
	assert.Equal(t, "", table.Value(0))
}
