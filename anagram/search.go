package anagram

import (
	"context"

	dawg "github.com/milden6/anadawg"
)

// frame is one node on the path from the root.
type frame struct {
	node   dawg.NodeID
	mask   dawg.Bitmask
	letter int // next letter index to try
	slot   int // child slot of that letter, if the node has it
}

// search is the scratch state of one call. It is never shared.
type search struct {
	store   *dawg.Store
	rack    Rack
	used    Rack
	path    []byte
	stack   []frame
	results []string
	visited int
}

func newSearch(store *dawg.Store, rack Rack) *search {
	depth := rack.Len() + 1
	return &search{
		store:   store,
		rack:    rack,
		path:    make([]byte, 0, depth),
		stack:   make([]frame, 0, depth),
		results: []string{},
	}
}

// run walks the graph depth first, trying letters in ascending order and
// descending only while the rack still has an unused copy of the letter.
// Every word node reached is recorded before its children are explored.
func (s *search) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.enter(s.store.Root(), s.store.RootMask())

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]

		child, letter, ok := s.next(top)
		if !ok {
			s.leave()
			continue
		}

		mask, err := s.store.BitmaskAt(child)
		if err != nil {
			// NewStore rejects dangling children, so the store and the
			// search disagree about the graph.
			panic(err)
		}

		s.used[letter]++
		s.path = append(s.path, byte('a'+letter))
		s.enter(child, mask)

		if s.visited%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}

	return nil
}

// next advances top to its next letter that is both an edge of the node
// and still available on the rack, and returns the child it leads to.
func (s *search) next(top *frame) (dawg.NodeID, int, bool) {
	for top.letter < dawg.NumLetters {
		l := top.letter
		top.letter++

		if !top.mask.Has(l) {
			continue
		}
		slot := top.slot
		top.slot++

		if s.used[l] < s.rack[l] {
			return s.store.ChildAt(top.node, slot), l, true
		}
	}
	return 0, 0, false
}

func (s *search) enter(node dawg.NodeID, mask dawg.Bitmask) {
	s.visited++
	if mask.IsWord() {
		s.results = append(s.results, string(s.path))
	}
	s.stack = append(s.stack, frame{node: node, mask: mask})
}

func (s *search) leave() {
	s.stack = s.stack[:len(s.stack)-1]
	if len(s.path) > 0 {
		last := s.path[len(s.path)-1]
		s.used[last-'a']--
		s.path = s.path[:len(s.path)-1]
	}
}
