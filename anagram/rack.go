package anagram

import (
	"strings"

	dawg "github.com/milden6/anadawg"
)

// Rack counts how many of each letter a query may use.
type Rack [dawg.NumLetters]int

// ParseRack builds a rack from letters of either case. Any other byte,
// including whitespace and non-ASCII text, makes the whole rack invalid.
func ParseRack(s string) (Rack, bool) {
	var r Rack
	for i := 0; i < len(s); i++ {
		l, ok := dawg.LetterIndex(s[i])
		if !ok {
			return Rack{}, false
		}
		r[l]++
	}
	return r, true
}

// Len is the number of letters on the rack.
func (r Rack) Len() int {
	n := 0
	for _, count := range r {
		n += count
	}
	return n
}

// Mask has a letter bit set for every letter the rack holds.
func (r Rack) Mask() dawg.Bitmask {
	var m dawg.Bitmask
	for l, count := range r {
		if count > 0 {
			m |= dawg.LetterBit(l)
		}
	}
	return m
}

// Contains reports whether word can be spelled from the rack.
func (r Rack) Contains(word string) bool {
	var used Rack
	for i := 0; i < len(word); i++ {
		l, ok := dawg.LetterIndex(word[i])
		if !ok {
			return false
		}
		used[l]++
		if used[l] > r[l] {
			return false
		}
	}
	return true
}

// String returns the rack's letters in alphabetical order.
func (r Rack) String() string {
	var sb strings.Builder
	for l, count := range r {
		for ; count > 0; count-- {
			sb.WriteByte(byte('a' + l))
		}
	}
	return sb.String()
}
