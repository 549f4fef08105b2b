// Package anagram finds the words of a compiled DAWG that can be spelled
// from some or all of the letters of a rack.
//
// A rack is a multiset of letters. A word is found when every letter of it
// is on the rack at least as many times as the word uses it. Results come in
// the order a depth first walk of the graph meets them, trying letters from
// 'a' to 'z' at every node, so the same rack always gives the same slice no
// matter how its letters are ordered or cased.
package anagram
