package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Load builds a dictionary from a word list with one uppercase word per
// line. Blank lines are ignored. A line containing anything other than
// A-Z fails the load with the offending line number.
func Load(r io.Reader) (*Trie, error) {
	t := NewTrie()
	scanner := bufio.NewScanner(r)
	sum := xxhash.New()
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := t.Insert(line); err != nil {
			return nil, fmt.Errorf("malformed line %d: %q: %w", lineNum, line, err)
		}
		sum.WriteString(line)
		sum.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	t.checksum = sum.Sum64()
	return t, nil
}

// LoadFile builds a dictionary from a word-list file on disk.
func LoadFile(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Checksum returns a digest of the loaded word list, used to key caches of
// solve results. Dictionaries built word-by-word report a zero checksum.
func (t *Trie) Checksum() uint64 {
	return t.checksum
}
