package dawg

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"os"

	"golang.org/x/exp/mmap"
)

/* FILE FORMAT
- 32 bits: total size of file in bytes
- 8 bits: abits, the number of bits used for a child id
- 7code: number of nodes
- 7code: number of child entries
- 32 bits: root bitmask
- for each node:
	- 32 bits: bitmask as stored in the table
	- for each set letter bit of the node's effective mask (the root mask
	  for node 0), in ascending letter order:
		abits: child id

7code is described in bits.go.
*/

const (
	headerBits = 32 + 8
	maskWidth  = 32
)

func (s *Store) abits() int {
	n := bits.Len(uint(len(s.masks) - 1))
	if n == 0 {
		n = 1
	}
	return n
}

// Save writes the store to disk. Returns the number of bytes written
func (s *Store) Save(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}

	size, err := s.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return size, err
}

// Write writes the store in binary form to an io.Writer. Returns the number
// of bytes written
func (s *Store) Write(wIn io.Writer) (int64, error) {
	abits := s.abits()

	pos := uint64(headerBits)
	pos += uint64(unsignedLength(uint64(s.NumNodes()))) * 8
	pos += uint64(unsignedLength(uint64(s.NumEdges()))) * 8
	pos += maskWidth
	pos += uint64(s.NumNodes()) * maskWidth
	pos += uint64(s.NumEdges()) * uint64(abits)

	size := (pos + 7) / 8
	if size > 1<<32-1 {
		return 0, fmt.Errorf("dawg of %d bytes does not fit the file format", size)
	}

	buffered := bufio.NewWriter(wIn)
	w := newBitWriter(buffered)

	w.writeBits(size, 32)
	w.writeBits(uint64(abits), 8)
	writeUnsigned(w, uint64(s.NumNodes()))
	writeUnsigned(w, uint64(s.NumEdges()))
	w.writeBits(uint64(s.rootMask), maskWidth)

	for id := range s.masks {
		w.writeBits(uint64(s.masks[id]), maskWidth)
		for _, child := range s.children[s.offsets[id]:s.offsets[id+1]] {
			w.writeBits(uint64(child), abits)
		}
	}

	if err := w.flush(); err != nil {
		return w.written, err
	}
	if err := buffered.Flush(); err != nil {
		return w.written, err
	}

	return w.written, nil
}

// Load reads a binary dictionary from a file.
func Load(filename string, cfg Config) (*Store, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, cfg)
}

// Read decodes a binary dictionary from r into memory. A zero cfg.RootMask
// takes the root mask from the file; any other value must agree with it.
func Read(r io.ReaderAt, cfg Config) (*Store, error) {
	br := newBitReader(r)

	size := int64(br.readBits(32))
	abits := int(br.readBits(8))
	numNodes, err := readUnsigned(br)
	if err != nil {
		return nil, fmt.Errorf("%w: node count: %v", ErrMalformedTable, err)
	}
	numEdges, err := readUnsigned(br)
	if err != nil {
		return nil, fmt.Errorf("%w: child count: %v", ErrMalformedTable, err)
	}
	root := Bitmask(br.readBits(maskWidth))
	if br.err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedTable, br.err)
	}

	if abits == 0 || abits > 32 {
		return nil, fmt.Errorf("%w: child ids of %d bits", ErrMalformedTable, abits)
	}

	// refuse counts the file is too small to hold before allocating
	body := uint64(max(size*8-br.tell(), 0))
	if numNodes == 0 || numNodes > body || numEdges > body ||
		numNodes*maskWidth+numEdges*uint64(abits) > body {
		return nil, fmt.Errorf("%w: %d nodes and %d children do not fit in %d bytes",
			ErrMalformedTable, numNodes, numEdges, size)
	}

	if cfg.RootMask == 0 {
		cfg.RootMask = root
	} else if cfg.RootMask != root {
		return nil, fmt.Errorf("%w: configured %#x but the file has %#x",
			ErrRootMask, uint32(cfg.RootMask), uint32(root))
	}

	s := &Store{
		masks:    make([]Bitmask, numNodes),
		offsets:  make([]uint32, 0, numNodes+1),
		children: make([]NodeID, 0, numEdges),
	}

	for id := range s.masks {
		mask := Bitmask(br.readBits(maskWidth))
		s.masks[id] = mask
		s.offsets = append(s.offsets, uint32(len(s.children)))

		if id == int(rootNode) {
			mask = root
		}
		for k := mask.NumChildren(); k > 0; k-- {
			s.children = append(s.children, NodeID(br.readBits(abits)))
		}

		if uint64(len(s.children)) > numEdges {
			return nil, fmt.Errorf("%w: more than %d child entries", ErrSizeMismatch, numEdges)
		}
	}
	s.offsets = append(s.offsets, uint32(len(s.children)))

	if br.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, br.err)
	}
	if uint64(len(s.children)) != numEdges {
		return nil, fmt.Errorf("%w: header says %d child entries, found %d",
			ErrSizeMismatch, numEdges, len(s.children))
	}

	if err := s.validate(cfg); err != nil {
		return nil, err
	}
	return s, nil
}
