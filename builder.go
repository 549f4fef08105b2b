package dawg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
)

type edge struct {
	letter byte
	node   int
}

type uncheckedNode struct {
	parent int
	letter byte
	child  int
}

const builderRoot = 0

// Builder compiles a sorted word list into a Store.
type Builder struct {
	lastWord       []byte
	nextID         int
	uncheckedNodes []uncheckedNode
	minimizedNodes map[string]int
	edges          map[int][]edge
	final          map[int]bool
	numAdded       int
	store          *Store
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		nextID:         1,
		minimizedNodes: make(map[string]int),
		edges:          make(map[int][]edge),
		final:          make(map[int]bool),
	}
}

// CanAdd will return true if the word can be added next.
// Words must be added in alphabetical order.
func (b *Builder) CanAdd(word string) bool {
	return b.store == nil && validWord(word) &&
		(b.numAdded == 0 || word > string(b.lastWord))
}

// Add adds a word to the structure.
// Adding a word that is not made of the letters a-z, a word not in
// alphabetical order, or adding to a finished Builder will panic.
func (b *Builder) Add(word string) {
	if b.store != nil {
		panic(errors.New("Builder.Add(): Tried to add to a finished Builder"))
	} else if !validWord(word) {
		panic(fmt.Errorf("Builder.Add(): %w: %q", ErrBadWord, word))
	} else if b.numAdded > 0 && word <= string(b.lastWord) {
		log.Printf("Last word=%s newword=%s", b.lastWord, word)
		panic(fmt.Errorf("Builder.Add(): %w", ErrWordOrder))
	}

	// find common prefix between word and previous word
	commonPrefix := 0
	for i := 0; i < min(len(word), len(b.lastWord)); i++ {
		if word[i] != b.lastWord[i] {
			break
		}
		commonPrefix++
	}

	// Check the uncheckedNodes for redundant nodes, proceeding from last
	// one down to the common prefix size. Then truncate the list at that
	// point.
	b.minimize(commonPrefix)

	// add the suffix, starting from the correct node mid-way through the
	// graph
	node := builderRoot
	if len(b.uncheckedNodes) > 0 {
		node = b.uncheckedNodes[len(b.uncheckedNodes)-1].child
	}

	for i := commonPrefix; i < len(word); i++ {
		letter := word[i] - 'a'
		next := b.nextID
		b.nextID++
		b.edges[node] = append(b.edges[node], edge{letter, next})
		b.uncheckedNodes = append(b.uncheckedNodes, uncheckedNode{node, letter, next})
		node = next
	}

	b.final[node] = true
	b.lastWord = append(b.lastWord[:0], word...)
	b.numAdded++
}

// NumAdded returns the number of words added
func (b *Builder) NumAdded() int {
	return b.numAdded
}

// Finish minimizes what is left, numbers the nodes depth first in
// ascending letter order and returns the compiled store. The root mask of
// the store is the compiled root's own mask.
func (b *Builder) Finish() (*Store, error) {
	if b.store != nil {
		return b.store, nil
	}
	if b.numAdded == 0 {
		return nil, fmt.Errorf("%w: no words added", ErrMalformedTable)
	}

	b.minimize(0)

	remap := map[int]NodeID{builderRoot: rootNode}
	order := []int{builderRoot}
	var visit func(node int)
	visit = func(node int) {
		for _, e := range b.edges[node] {
			if _, ok := remap[e.node]; !ok {
				remap[e.node] = NodeID(len(order))
				order = append(order, e.node)
				visit(e.node)
			}
		}
	}
	visit(builderRoot)

	masks := make([]Bitmask, len(order))
	children := make([][]NodeID, len(order))
	for id, node := range order {
		var mask Bitmask
		if b.final[node] {
			mask |= FullWordBit
		}
		for _, e := range b.edges[node] {
			mask |= LetterBit(int(e.letter))
			children[id] = append(children[id], remap[e.node])
		}
		masks[id] = mask
	}

	store, err := NewStore(masks, children, Config{RootMask: masks[rootNode]})
	if err != nil {
		return nil, err
	}

	// no longer need the construction state
	b.uncheckedNodes = nil
	b.minimizedNodes = nil
	b.edges = nil
	b.final = nil
	b.store = store

	return store, nil
}

func (b *Builder) minimize(downTo int) {
	// proceed from the leaf up to a certain point
	for i := len(b.uncheckedNodes) - 1; i >= downTo; i-- {
		u := b.uncheckedNodes[i]
		name := b.nameOf(u.child)
		if node, ok := b.minimizedNodes[name]; ok {
			// replace the child with the previously encountered one
			b.replaceChild(u.parent, u.letter, node)
		} else {
			// add the state to the minimized nodes.
			b.minimizedNodes[name] = u.child
		}
	}

	b.uncheckedNodes = b.uncheckedNodes[:downTo]
}

func (b *Builder) nameOf(node int) string {
	// node name is _ch:id... for each child, then ! if final
	var buff strings.Builder
	for _, e := range b.edges[node] {
		buff.WriteByte('_')
		buff.WriteByte('a' + e.letter)
		buff.WriteByte(':')
		buff.WriteString(strconv.Itoa(e.node))
	}

	if b.final[node] {
		buff.WriteByte('!')
	}

	return buff.String()
}

func (b *Builder) replaceChild(parent int, letter byte, child int) {
	list := b.edges[parent]
	for i := range list {
		if list[i].letter == letter {
			// the old child's own children are already minimized and shared
			delete(b.edges, list[i].node)
			delete(b.final, list[i].node)
			list[i].node = child
			break
		}
	}
}

func validWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// Compile builds a store from words in any order and case. Duplicates are
// dropped; a word with anything but letters is an error.
func Compile(words []string) (*Store, error) {
	sorted := make([]string, 0, len(words))
	for _, word := range words {
		lower := strings.ToLower(word)
		if !validWord(lower) {
			return nil, fmt.Errorf("%w: %q", ErrBadWord, word)
		}
		sorted = append(sorted, lower)
	}
	sort.Strings(sorted)

	b := NewBuilder()
	for i, word := range sorted {
		if i > 0 && word == sorted[i-1] {
			continue
		}
		b.Add(word)
	}

	return b.Finish()
}

// CompileReader reads one word per line, skipping blank lines, and
// compiles them.
func CompileReader(r io.Reader) (*Store, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return Compile(words)
}
