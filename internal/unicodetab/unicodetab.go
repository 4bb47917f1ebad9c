// Package unicodetab compiles the Unicode identifier predicates used by the
// Weald name grammar (NameStart, NameContinue) into the two-level
// compressed lookup the front-end's design calls for: an ASCII fast path
// backed by a 128-bit mask, and beyond ASCII a chunk table indexing into
// shared leaf-bucket bitsets.
//
// The character data itself is sourced from Go's unicode package range
// tables (the same ones github.com/rivo/uniseg and the rest of the
// standard library are generated from), rather than hand-copied UCD
// literals; what is built by hand is the trie *layout*, not the character
// classes.
package unicodetab

import (
	"unicode"

	"github.com/unleashy/weald/internal/ext/bitsx"
)

// chunkLength is the number of leaf-bucket bytes addressed by one entry of
// the chunk table, i.e. the number of (rune/8) groups a chunk covers.
const chunkLength = 64

// Table is a compiled two-level predicate over runes >= 0x80.
//
// Division: chunk index is r/8/chunkLength; that indexes chunks, whose
// value is a leaf-bucket index b; leaf[b*chunkLength/2+(r/8)%chunkLength]
// is a byte whose bit (r%8) answers the predicate. Out-of-range runes
// (including anything chunks doesn't cover) answer false.
type Table struct {
	asciiMask [2]uint64 // bit i set => rune i (i<128) satisfies the predicate
	chunks    []uint16  // chunk index -> leaf-bucket index
	leaves    []byte    // packed leaf bytes: each bucket is chunkLength bytes, starting at a multiple of chunkLength/2
}

// Test reports whether r satisfies the predicate this table compiles.
func (t *Table) Test(r rune) bool {
	if r < 0 {
		return false
	}
	if r < 128 {
		return t.asciiMask[r/64]&(1<<uint(r%64)) != 0
	}

	chunkIdx := int(r) / 8 / chunkLength
	if chunkIdx >= len(t.chunks) {
		return false
	}
	bucket := int(t.chunks[chunkIdx])
	leafIdx := bucket*(chunkLength/2) + (int(r)/8)%chunkLength
	if leafIdx >= len(t.leaves) {
		return false
	}
	return t.leaves[leafIdx]&(1<<uint(r%8)) != 0
}

// build compiles pred into a Table. Only called from package init for the
// two static tables below; pred is expected to be a pure function of r.
func build(pred func(rune) bool) *Table {
	t := &Table{}
	for r := rune(0); r < 128; r++ {
		if pred(r) {
			t.asciiMask[r/64] |= 1 << uint(r%64)
		}
	}

	// Build the full leaf-bucket stream densely (one bucket per chunk of
	// the rune space we care about), then deduplicate identical buckets so
	// that repeated runs of "nothing here" (the overwhelming majority of
	// the codepoint space) collapse to one shared bucket, which is the
	// whole point of the two-level scheme.
	const maxRune = unicode.MaxRune
	numChunks := int(maxRune)/8/chunkLength + 1
	bucketBytes := chunkLength

	t.chunks = make([]uint16, numChunks)
	seen := map[string]uint16{}

	for c := 0; c < numChunks; c++ {
		bucket := make([]byte, bucketBytes)
		base := rune(c * 8 * chunkLength)
		for i := 0; i < bucketBytes; i++ {
			for bit := 0; bit < 8; bit++ {
				r := base + rune(i*8+bit)
				if r > maxRune {
					continue
				}
				if pred(r) {
					bucket[i] |= 1 << uint(bit)
				}
			}
		}

		key := string(bucket)
		idx, ok := seen[key]
		if !ok {
			idx = uint16(len(t.leaves) / (chunkLength / 2))
			t.leaves = append(t.leaves, bucket...)
			seen[key] = idx
		}
		t.chunks[c] = idx
	}

	return t
}

func init() {
	if !bitsx.IsPowerOfTwo(chunkLength) {
		panic("unicodetab: chunkLength must be a power of two")
	}
}

func rawNameStart(r rune) bool {
	if r < 128 {
		return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicode.In(r,
		unicode.Letter,
		unicode.Nl,
		unicode.Other_ID_Start,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

func rawNameContinue(r rune) bool {
	if r < 128 {
		return r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
	}
	return unicode.In(r,
		unicode.Letter,
		unicode.Cf,
		unicode.Mn,
		unicode.Mc,
		unicode.Nl,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Start,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

var (
	nameStartTable    = build(rawNameStart)
	nameContinueTable = build(rawNameContinue)
)

// IsNameStart reports whether r may begin a Weald name.
func IsNameStart(r rune) bool {
	return nameStartTable.Test(r)
}

// IsNameContinue reports whether r may continue a Weald name after its
// first character.
func IsNameContinue(r rune) bool {
	return nameContinueTable.Test(r)
}
