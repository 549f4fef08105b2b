package dawg_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dawg "github.com/milden6/anadawg"
)

func fixtureWords() []string {
	return []string{"a", "an", "and", "ant"}
}

func compile(t *testing.T, words []string) *dawg.Store {
	t.Helper()
	store, err := dawg.Compile(words)
	require.NoError(t, err)
	return store
}

// the fixture compiles to four nodes:
//
//	0 root   a -> 1
//	1 "a"!   n -> 2
//	2 "an"!  d -> 3, t -> 3
//	3 leaf!
func TestFixtureLayout(t *testing.T) {
	store := compile(t, fixtureWords())

	assert.Equal(t, 4, store.NumNodes())
	assert.Equal(t, 4, store.NumEdges())
	assert.Equal(t, dawg.LetterBit(0), store.RootMask())

	mask, err := store.BitmaskAt(store.Root())
	require.NoError(t, err)
	assert.Equal(t, "a", mask.String())

	a := store.ChildAt(store.Root(), 0)
	mask, err = store.BitmaskAt(a)
	require.NoError(t, err)
	assert.Equal(t, "n!", mask.String())

	an := store.ChildAt(a, 0)
	mask, err = store.BitmaskAt(an)
	require.NoError(t, err)
	assert.Equal(t, "dt!", mask.String())
	assert.Equal(t, store.ChildAt(an, 0), store.ChildAt(an, 1), "and/ant share their leaf")
}

func TestBitmaskAtOutOfRange(t *testing.T) {
	store := compile(t, fixtureWords())

	_, err := store.BitmaskAt(dawg.NodeID(store.NumNodes()))
	assert.ErrorIs(t, err, dawg.ErrNodeOutOfRange)
}

func TestChildAtPanicsOnMissingSlot(t *testing.T) {
	store := compile(t, fixtureWords())

	assert.Panics(t, func() { store.ChildAt(store.Root(), 1) })
	assert.Panics(t, func() { store.ChildAt(store.Root(), -1) })
	assert.Panics(t, func() { store.ChildAt(dawg.NodeID(store.NumNodes()), 0) })
	assert.NotPanics(t, func() { store.ChildAt(store.Root(), 0) })
}

func TestChildAndContains(t *testing.T) {
	store := compile(t, fixtureWords())

	_, ok := store.Child(store.Root(), 1)
	assert.False(t, ok, "no word starts with b")

	for _, word := range fixtureWords() {
		assert.True(t, store.Contains(word), word)
	}
	assert.True(t, store.Contains("AnT"))
	for _, word := range []string{"", "n", "ad", "ants", "a1", "and "} {
		assert.False(t, store.Contains(word), word)
	}
}

func TestWordsAndEnumerate(t *testing.T) {
	words := []string{"blip", "cat", "catnip", "cats"}
	store := compile(t, words)

	assert.Equal(t, words, store.Words())

	var prefixes []string
	store.Enumerate(func(word []byte, final bool) dawg.EnumerationResult {
		prefixes = append(prefixes, string(word))
		if string(word) == "catn" {
			return dawg.Skip
		}
		if string(word) == "cats" {
			return dawg.Stop
		}
		return dawg.Continue
	})

	assert.Equal(t, []string{"", "b", "bl", "bli", "blip", "c", "ca", "cat", "catn", "cats"}, prefixes)
}

func TestCompileNormalizes(t *testing.T) {
	store := compile(t, []string{"Cat", "cat", "ACT", "tac", "act"})
	assert.Equal(t, []string{"act", "cat", "tac"}, store.Words())
}

func TestCompileRejectsBadWords(t *testing.T) {
	for _, words := range [][]string{
		{"ok", "not ok"},
		{"digit1"},
		{""},
		{"café"},
	} {
		_, err := dawg.Compile(words)
		assert.ErrorIs(t, err, dawg.ErrBadWord, "%q", words)
	}

	_, err := dawg.Compile(nil)
	assert.ErrorIs(t, err, dawg.ErrMalformedTable)
}

func TestMinimization(t *testing.T) {
	// "ta" and "to" share the node that leads on to p, ps
	store := compile(t, []string{"tap", "taps", "top", "tops"})

	assert.Equal(t, 5, store.NumNodes())
	assert.Equal(t, 5, store.NumEdges())
	assert.Equal(t, []string{"tap", "taps", "top", "tops"}, store.Words())
}

func TestAllLettersRoot(t *testing.T) {
	var words []string
	for c := 'a'; c <= 'z'; c++ {
		words = append(words, string(c)+"x")
	}
	store := compile(t, words)

	assert.Equal(t, dawg.AllLetters, store.RootMask())
	assert.Equal(t, dawg.LetterMask, dawg.AllLetters)
}

func TestBuilderOrder(t *testing.T) {
	b := dawg.NewBuilder()
	assert.True(t, b.CanAdd("b"))
	b.Add("b")

	assert.False(t, b.CanAdd("a"))
	assert.False(t, b.CanAdd("b"))
	assert.False(t, b.CanAdd("C"))
	assert.True(t, b.CanAdd("c"))

	assert.Panics(t, func() { b.Add("a") })
	assert.Panics(t, func() { b.Add("Z") })

	b.Add("c")
	assert.Equal(t, 2, b.NumAdded())

	store, err := b.Finish()
	require.NoError(t, err)
	again, err := b.Finish()
	require.NoError(t, err)
	assert.Same(t, store, again)

	assert.False(t, b.CanAdd("d"))
	assert.Panics(t, func() { b.Add("d") })
}

func TestNewStoreValidation(t *testing.T) {
	word := dawg.FullWordBit
	a := dawg.LetterBit(0)
	b := dawg.LetterBit(1)

	tests := []struct {
		name     string
		masks    []dawg.Bitmask
		children [][]dawg.NodeID
		cfg      dawg.Config
		err      error
	}{
		{
			name:     "valid",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{1}, nil},
			cfg:      dawg.Config{NodeCount: 2, EdgeCount: 1, RootMask: a},
		},
		{
			name:     "root taken from config not slot 0",
			masks:    []dawg.Bitmask{12345, word},
			children: [][]dawg.NodeID{{1}, nil},
			cfg:      dawg.Config{RootMask: a},
		},
		{
			name:     "node count",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{1}, nil},
			cfg:      dawg.Config{NodeCount: 3, RootMask: a},
			err:      dawg.ErrSizeMismatch,
		},
		{
			name:     "edge count",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{1}, nil},
			cfg:      dawg.Config{EdgeCount: 2, RootMask: a},
			err:      dawg.ErrSizeMismatch,
		},
		{
			name:     "missing root mask",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{1}, nil},
			err:      dawg.ErrRootMask,
		},
		{
			name:     "root mask from another dictionary",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{1}, nil},
			cfg:      dawg.Config{RootMask: dawg.AllLetters},
			err:      dawg.ErrRootMask,
		},
		{
			name:     "root is a word",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{1}, nil},
			cfg:      dawg.Config{RootMask: a | word},
			err:      dawg.ErrRootMask,
		},
		{
			name:     "child count",
			masks:    []dawg.Bitmask{a, a | b | word, word},
			children: [][]dawg.NodeID{{1}, {2}, nil},
			cfg:      dawg.Config{RootMask: a},
			err:      dawg.ErrChildCount,
		},
		{
			name:     "dangling child",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{7}, nil},
			cfg:      dawg.Config{RootMask: a},
			err:      dawg.ErrDanglingChild,
		},
		{
			name:     "points back at root",
			masks:    []dawg.Bitmask{a, a | word},
			children: [][]dawg.NodeID{{1}, {0}},
			cfg:      dawg.Config{RootMask: a},
			err:      dawg.ErrDanglingChild,
		},
		{
			name:     "orphan",
			masks:    []dawg.Bitmask{a, word, word},
			children: [][]dawg.NodeID{{1}, nil, nil},
			cfg:      dawg.Config{RootMask: a},
			err:      dawg.ErrOrphanNode,
		},
		{
			name:     "tables disagree",
			masks:    []dawg.Bitmask{a, word},
			children: [][]dawg.NodeID{{1}},
			cfg:      dawg.Config{RootMask: a},
			err:      dawg.ErrMalformedTable,
		},
		{
			name: "empty",
			cfg:  dawg.Config{RootMask: a},
			err:  dawg.ErrMalformedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := dawg.NewStore(tt.masks, tt.children, tt.cfg)
			if tt.err == nil {
				require.NoError(t, err)
				assert.Equal(t, []string{"a"}, store.Words())
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, store)
		})
	}
}

func TestBitmaskHelpers(t *testing.T) {
	m := dawg.LetterBit(0) | dawg.LetterBit(3) | dawg.LetterBit(25) | dawg.FullWordBit

	assert.True(t, m.Has(3))
	assert.False(t, m.Has(4))
	assert.False(t, m.Has(26))
	assert.False(t, m.Has(-1))
	assert.True(t, m.IsWord())
	assert.Equal(t, 3, m.NumChildren())
	assert.Equal(t, 0, m.Slot(0))
	assert.Equal(t, 1, m.Slot(3))
	assert.Equal(t, 2, m.Slot(25))
	assert.Equal(t, "adz!", m.String())
	assert.Equal(t, m&^dawg.FullWordBit, m.Letters())

	l, ok := dawg.LetterIndex('Q')
	assert.True(t, ok)
	assert.Equal(t, 16, l)
	_, ok = dawg.LetterIndex('@')
	assert.False(t, ok)
}

func ExampleCompile() {
	store, err := dawg.Compile([]string{"ant", "and", "an", "a"})
	if err != nil {
		panic(err)
	}

	fmt.Println(store.NumNodes(), store.NumEdges(), store.RootMask())
	fmt.Println(store.Words())

	// Output:
	// 4 4 a
	// [a an and ant]
}
