package dawg

import (
	"fmt"
	"log"

	"github.com/RoaringBitmap/roaring"
)

// NodeID names a node by its position in the tables.
type NodeID = uint32

const rootNode NodeID = 0

// Config carries the values that belong to a particular dictionary build
// rather than to the tables themselves.
type Config struct {
	// NodeCount is the number of nodes the tables must hold. Zero skips
	// the check.
	NodeCount int

	// EdgeCount is the total number of child entries the tables must hold.
	// Zero skips the check.
	EdgeCount int

	// RootMask is the bitmask of the root node. It is required.
	RootMask Bitmask
}

// Store is a read-only compiled DAWG.
type Store struct {
	masks    []Bitmask
	offsets  []uint32 // offsets[n]..offsets[n+1] spans node n's children
	children []NodeID
	rootMask Bitmask
}

// EnumFn is called for every prefix during enumeration
type EnumFn = func(word []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this depth or stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// NewStore builds a store from per-node bitmasks and child lists. The
// bitmask given for node 0 is kept as table content only; cfg.RootMask is
// what the root reports.
func NewStore(masks []Bitmask, children [][]NodeID, cfg Config) (*Store, error) {
	if len(children) != len(masks) {
		return nil, fmt.Errorf("%w: %d bitmasks but %d child lists",
			ErrMalformedTable, len(masks), len(children))
	}

	total := 0
	for _, list := range children {
		total += len(list)
	}

	s := &Store{
		masks:    append([]Bitmask(nil), masks...),
		offsets:  make([]uint32, 0, len(masks)+1),
		children: make([]NodeID, 0, total),
	}

	for _, list := range children {
		s.offsets = append(s.offsets, uint32(len(s.children)))
		s.children = append(s.children, list...)
	}
	s.offsets = append(s.offsets, uint32(len(s.children)))

	if err := s.validate(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// validate checks the invariants the search relies on and installs the
// root mask. Readers fill masks, offsets and children before calling it.
func (s *Store) validate(cfg Config) error {
	n := len(s.masks)
	if n == 0 {
		return fmt.Errorf("%w: no nodes", ErrMalformedTable)
	}
	if cfg.NodeCount != 0 && cfg.NodeCount != n {
		return fmt.Errorf("%w: have %d nodes, expected %d", ErrSizeMismatch, n, cfg.NodeCount)
	}
	if cfg.EdgeCount != 0 && cfg.EdgeCount != len(s.children) {
		return fmt.Errorf("%w: have %d child entries, expected %d",
			ErrSizeMismatch, len(s.children), cfg.EdgeCount)
	}

	root := cfg.RootMask
	if root.Letters() == 0 {
		return fmt.Errorf("%w: %#x has no letters", ErrRootMask, uint32(root))
	}
	if root.IsWord() {
		return fmt.Errorf("%w: root cannot be a word", ErrRootMask)
	}
	s.rootMask = root

	referenced := roaring.New()
	for id := 0; id < n; id++ {
		mask := s.maskOf(NodeID(id))
		list := s.children[s.offsets[id]:s.offsets[id+1]]

		if len(list) != mask.NumChildren() {
			if NodeID(id) == rootNode {
				return fmt.Errorf("%w: %#x has %d letters but the root has %d children",
					ErrRootMask, uint32(root), mask.NumChildren(), len(list))
			}
			return fmt.Errorf("%w: node %d has mask %q and %d children",
				ErrChildCount, id, mask, len(list))
		}

		for _, child := range list {
			if int(child) >= n {
				return fmt.Errorf("%w: node %d points at %d (%d nodes)",
					ErrDanglingChild, id, child, n)
			}
			if child == rootNode {
				return fmt.Errorf("%w: node %d points back at the root", ErrDanglingChild, id)
			}
			referenced.Add(child)
		}
	}

	if referenced.GetCardinality() != uint64(n-1) {
		for id := 1; id < n; id++ {
			if !referenced.Contains(uint32(id)) {
				return fmt.Errorf("%w: node %d", ErrOrphanNode, id)
			}
		}
	}

	return nil
}

func (s *Store) maskOf(id NodeID) Bitmask {
	if id == rootNode {
		return s.rootMask
	}
	return s.masks[id]
}

// Root returns the id of the root node.
func (s *Store) Root() NodeID {
	return rootNode
}

// RootMask returns the configured bitmask of the root.
func (s *Store) RootMask() Bitmask {
	return s.rootMask
}

// NumNodes returns the number of nodes in the tables.
func (s *Store) NumNodes() int {
	return len(s.masks)
}

// NumEdges returns the number of entries in the child table.
func (s *Store) NumEdges() int {
	return len(s.children)
}

// BitmaskAt returns the bitmask of a node. For the root this is the
// configured root mask.
func (s *Store) BitmaskAt(id NodeID) (Bitmask, error) {
	if int(id) >= len(s.masks) {
		return 0, fmt.Errorf("%w: %d (%d nodes)", ErrNodeOutOfRange, id, len(s.masks))
	}
	return s.maskOf(id), nil
}

// ChildAt returns the order-th child of a node, counting set letter bits
// in ascending order. Asking for a slot the node does not have is a bug in
// the caller and panics.
func (s *Store) ChildAt(id NodeID, order int) NodeID {
	if int(id) >= len(s.masks) {
		log.Panicf("Store.ChildAt(): node %d out of range (%d nodes)", id, len(s.masks))
	}

	start, end := s.offsets[id], s.offsets[id+1]
	if order < 0 || order >= int(end-start) {
		log.Panicf("Store.ChildAt(): node %d has %d children, asked for slot %d",
			id, end-start, order)
	}

	return s.children[int(start)+order]
}

// Child follows the edge for letter index l, if the node has one.
func (s *Store) Child(id NodeID, l int) (NodeID, bool) {
	mask, err := s.BitmaskAt(id)
	if err != nil || !mask.Has(l) {
		return 0, false
	}
	return s.ChildAt(id, mask.Slot(l)), true
}

// Contains reports whether word is in the dictionary. Letters of either
// case are accepted.
func (s *Store) Contains(word string) bool {
	if word == "" {
		return false
	}

	node := rootNode
	for i := 0; i < len(word); i++ {
		l, ok := LetterIndex(word[i])
		if !ok {
			return false
		}
		if node, ok = s.Child(node, l); !ok {
			return false
		}
	}

	return s.maskOf(node).IsWord()
}

// Enumerate will call the given method, passing it every possible prefix of
// words in the dictionary in ascending letter order. Return Continue to
// continue enumeration, Skip to skip this branch, or Stop to stop
// enumeration.
func (s *Store) Enumerate(fn EnumFn) {
	s.enumerate(rootNode, make([]byte, 0, 16), fn)
}

func (s *Store) enumerate(id NodeID, word []byte, fn EnumFn) EnumerationResult {
	mask := s.maskOf(id)

	result := fn(word, mask.IsWord())
	if result != Continue {
		return result
	}

	l := len(word)
	word = append(word, 0)

	slot := 0
	for letters := mask.Letters(); letters != 0; letters &= letters - 1 {
		word[l] = 'a' + byte(trailingLetter(letters))
		result = s.enumerate(s.ChildAt(id, slot), word, fn)
		if result == Stop {
			return Stop
		}
		slot++
	}

	return Continue
}

// Words returns every word of the dictionary in ascending order.
func (s *Store) Words() []string {
	var words []string
	s.Enumerate(func(word []byte, final bool) EnumerationResult {
		if final {
			words = append(words, string(word))
		}
		return Continue
	})
	return words
}
