// Package intern provides a simple string interning table: a way to
// collapse repeated name spellings down to a single shared backing string
// (and a cheap comparable handle for it), so the lexer doesn't allocate a
// fresh string for every occurrence of a name already seen.
package intern

import (
	"strings"
	"sync"
)

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply. The zero value of ID always
// corresponds to the empty string.
type ID int32

// Table is an interning table.
//
// A table can be used to convert strings into [ID]s and back again. The
// zero value of Table is empty and ready to use.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

// Intern interns s into this table, returning its ID. Interning the same
// string twice returns the same ID, and Value(id) always returns a string
// equal to s.
//
// This function may be called by multiple goroutines concurrently.
func (t *Table) Intern(s string) ID {
	if s == "" {
		return 0
	}

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return id
	}

	// Intern tables are long-lived; clone s so we don't keep a larger
	// buffer it might be a slice of alive forever.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have raced us to intern this string between the RUnlock
	// above and this Lock.
	if id, ok := t.index[s]; ok {
		return id
	}

	t.table = append(t.table, s)
	id = ID(len(t.table)) // ID 0 is reserved for "".

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id

	return id
}

// Value converts an [ID] back into its corresponding string.
//
// If id was created by a different [Table], the result is unspecified,
// including potentially a panic.
//
// This function may be called by multiple goroutines concurrently.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(id)-1]
}
