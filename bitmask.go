package dawg

import (
	"math/bits"
	"strings"
)

// NumLetters is the size of the alphabet a compiled DAWG is built over.
const NumLetters = 26

// Bitmask is the packed description of a node: one bit per outgoing letter
// plus the full word flag.
type Bitmask uint32

const (
	// LetterMask selects the 26 letter bits of a Bitmask.
	LetterMask Bitmask = 1<<NumLetters - 1

	// FullWordBit is set when the path to the node spells a word.
	FullWordBit Bitmask = 1 << 28

	// AllLetters is the root mask of a dictionary whose words start with
	// every letter of the alphabet.
	AllLetters Bitmask = 67108863
)

// LetterBit returns the bit for letter index i.
func LetterBit(i int) Bitmask {
	return 1 << uint(i)
}

// LetterIndex maps an ASCII letter of either case to its index.
func LetterIndex(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	}
	return 0, false
}

// Has reports whether the node has an edge for letter index i.
func (m Bitmask) Has(i int) bool {
	return i >= 0 && i < NumLetters && m&LetterBit(i) != 0
}

// IsWord reports whether the full word flag is set.
func (m Bitmask) IsWord() bool {
	return m&FullWordBit != 0
}

// Letters drops everything but the letter bits.
func (m Bitmask) Letters() Bitmask {
	return m & LetterMask
}

// NumChildren is the number of entries the node has in the child table.
func (m Bitmask) NumChildren() int {
	return bits.OnesCount32(uint32(m & LetterMask))
}

// Slot returns the position of letter i's child within the node's child
// list, which is the number of letter bits set below i.
func (m Bitmask) Slot(i int) int {
	return bits.OnesCount32(uint32(m & (LetterBit(i) - 1) & LetterMask))
}

// String lists the letters of the mask, followed by '!' for a word node.
func (m Bitmask) String() string {
	var sb strings.Builder
	for l := m.Letters(); l != 0; l &= l - 1 {
		sb.WriteByte(byte('a' + trailingLetter(l)))
	}
	if m.IsWord() {
		sb.WriteByte('!')
	}
	return sb.String()
}

// trailingLetter is the index of the lowest letter bit set in m.
func trailingLetter(m Bitmask) int {
	return bits.TrailingZeros32(uint32(m))
}
