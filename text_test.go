package dawg_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dawg "github.com/milden6/anadawg"
)

// text form of {a, an, and, ant}
const (
	fixtureSupers = "1\n268443648\n268959752\n268435456\n"
	fixtureLines  = "1\n2\n3 3\n\n"
)

func TestWriteText(t *testing.T) {
	store := compile(t, fixtureWords())

	var supers, words bytes.Buffer
	require.NoError(t, store.WriteText(&supers, &words))

	assert.Equal(t, fixtureSupers, supers.String())
	assert.Equal(t, fixtureLines, words.String())
}

func TestReadText(t *testing.T) {
	cfg := dawg.Config{NodeCount: 4, EdgeCount: 4, RootMask: dawg.LetterBit(0)}

	store, err := dawg.ReadText(strings.NewReader(fixtureSupers), strings.NewReader(fixtureLines), cfg)
	require.NoError(t, err)
	assert.Equal(t, fixtureWords(), store.Words())
}

func TestReadTextSeparatorsAndLineEndings(t *testing.T) {
	supers := "1\r\n268443648\r\n268959752\r\n268435456\r\n"
	words := "1\r\n2\r\n3,3\r\n\r\n"

	store, err := dawg.ReadText(strings.NewReader(supers), strings.NewReader(words),
		dawg.Config{RootMask: dawg.LetterBit(0)})
	require.NoError(t, err)
	assert.Equal(t, fixtureWords(), store.Words())
}

func TestReadTextErrors(t *testing.T) {
	root := dawg.Config{RootMask: dawg.LetterBit(0)}

	tests := []struct {
		name   string
		supers string
		words  string
		cfg    dawg.Config
		err    error
	}{
		{"garbage bitmask", "1\nx\n268959752\n268435456\n", fixtureLines, root, dawg.ErrMalformedTable},
		{"blank bitmask", "1\n\n268959752\n268435456\n", fixtureLines, root, dawg.ErrMalformedTable},
		{"garbage child", fixtureSupers, "1\n2\n3 y\n\n", root, dawg.ErrMalformedTable},
		{"fewer child lines", fixtureSupers, "1\n2\n3 3\n", root, dawg.ErrSizeMismatch},
		{"declared nodes", fixtureSupers, fixtureLines, dawg.Config{NodeCount: 52930, RootMask: dawg.LetterBit(0)}, dawg.ErrSizeMismatch},
		{"declared edges", fixtureSupers, fixtureLines, dawg.Config{EdgeCount: 121438, RootMask: dawg.LetterBit(0)}, dawg.ErrSizeMismatch},
		{"production root mask", fixtureSupers, fixtureLines, dawg.Config{RootMask: dawg.AllLetters}, dawg.ErrRootMask},
		{"dangling", fixtureSupers, "1\n2\n3 9\n\n", root, dawg.ErrDanglingChild},
		{"short child list", fixtureSupers, "1\n2\n3\n\n", root, dawg.ErrChildCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dawg.ReadText(strings.NewReader(tt.supers), strings.NewReader(tt.words), tt.cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSaveAndLoadText(t *testing.T) {
	store := compile(t, []string{"ant", "tan", "nat", "at", "ta", "an", "a"})
	dir := t.TempDir()
	supers := filepath.Join(dir, "new-super.txt")
	words := filepath.Join(dir, "new-words.txt")

	require.NoError(t, store.SaveText(supers, words))

	loaded, err := dawg.LoadText(supers, words, dawg.Config{
		NodeCount: store.NumNodes(),
		EdgeCount: store.NumEdges(),
		RootMask:  store.RootMask(),
	})
	require.NoError(t, err)
	assert.Equal(t, store.Words(), loaded.Words())

	_, err = dawg.LoadText(filepath.Join(dir, "missing.txt"), words, dawg.Config{RootMask: store.RootMask()})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
