package dawg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLineLength = 1 << 20

// LoadText opens the two-file text form of a compiled dictionary.
func LoadText(supersPath, wordsPath string, cfg Config) (*Store, error) {
	supers, err := os.Open(supersPath)
	if err != nil {
		return nil, err
	}
	defer supers.Close()

	words, err := os.Open(wordsPath)
	if err != nil {
		return nil, err
	}
	defer words.Close()

	return ReadText(supers, words, cfg)
}

// ReadText reads the text form of a compiled dictionary. supers holds one
// decimal bitmask per line. words holds one line per node listing its child
// ids separated by spaces, tabs or commas; a blank line is a node without
// children.
func ReadText(supers, words io.Reader, cfg Config) (*Store, error) {
	s := &Store{}

	scanner := bufio.NewScanner(supers)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		value, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bitmask line %d: %q", ErrMalformedTable, line, text)
		}
		s.masks = append(s.masks, Bitmask(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	scanner = bufio.NewScanner(words)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lines := 0
	for scanner.Scan() {
		lines++
		s.offsets = append(s.offsets, uint32(len(s.children)))

		fields := strings.FieldsFunc(scanner.Text(), isSeparator)
		for _, field := range fields {
			child, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: child line %d: %q", ErrMalformedTable, lines, field)
			}
			s.children = append(s.children, NodeID(child))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	s.offsets = append(s.offsets, uint32(len(s.children)))

	if lines != len(s.masks) {
		return nil, fmt.Errorf("%w: %d bitmask lines but %d child lines",
			ErrSizeMismatch, len(s.masks), lines)
	}

	if err := s.validate(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == '\r'
}

// WriteText writes the store in the form ReadText reads.
func (s *Store) WriteText(supers, words io.Writer) error {
	sw := bufio.NewWriter(supers)
	for _, mask := range s.masks {
		sw.WriteString(strconv.FormatUint(uint64(mask), 10))
		sw.WriteByte('\n')
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	ww := bufio.NewWriter(words)
	for id := range s.masks {
		for i, child := range s.children[s.offsets[id]:s.offsets[id+1]] {
			if i > 0 {
				ww.WriteByte(' ')
			}
			ww.WriteString(strconv.FormatUint(uint64(child), 10))
		}
		ww.WriteByte('\n')
	}
	return ww.Flush()
}

// SaveText writes the text form to two files.
func (s *Store) SaveText(supersPath, wordsPath string) error {
	supers, err := os.Create(supersPath)
	if err != nil {
		return err
	}
	defer supers.Close()

	words, err := os.Create(wordsPath)
	if err != nil {
		return err
	}
	defer words.Close()

	if err := s.WriteText(supers, words); err != nil {
		return err
	}
	if err := supers.Close(); err != nil {
		return err
	}
	return words.Close()
}
