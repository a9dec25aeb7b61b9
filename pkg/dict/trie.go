package dict

import (
	"errors"
	"fmt"
	"sort"

	"github.com/junfengy/peeler/pkg/tiles"
)

// ErrShortWord is returned when inserting a word shorter than two letters.
var ErrShortWord = errors.New("word must be at least two letters")

// ErrInvalidWord is returned when inserting a word containing characters
// outside A-Z.
var ErrInvalidWord = errors.New("word must contain only uppercase letters A-Z")

// node is a single trie node. children is indexed by letter (A=0 .. Z=25);
// terminal marks that the path from the root to this node spells a word.
type node struct {
	children [26]*node
	terminal bool
}

// Trie is a letter trie over the dictionary. It is built once and then
// read-only, so it is safe to share between concurrent solves.
type Trie struct {
	root     *node
	size     int
	checksum uint64
}

// NewTrie returns an empty dictionary trie.
func NewTrie() *Trie {
	return &Trie{root: &node{}}
}

// Build constructs a trie from a slice of words. Words shorter than two
// letters or containing non-letters fail the build.
func Build(words []string) (*Trie, error) {
	t := NewTrie()
	for _, w := range words {
		if err := t.Insert(w); err != nil {
			return nil, fmt.Errorf("word %q: %w", w, err)
		}
	}
	return t, nil
}

// Size returns the number of words in the dictionary.
func (t *Trie) Size() int {
	return t.size
}

// Insert adds a word to the trie. Inserting a word twice is a no-op.
func (t *Trie) Insert(word string) error {
	if len(word) < 2 {
		return ErrShortWord
	}
	n := t.root
	for i := 0; i < len(word); i++ {
		l := tiles.Letter(word[i])
		if !l.Valid() {
			return ErrInvalidWord
		}
		idx := l.Index()
		if n.children[idx] == nil {
			n.children[idx] = &node{}
		}
		n = n.children[idx]
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
	return nil
}

// walk descends the trie along s and returns the node reached, or nil if
// the path does not exist.
func (t *Trie) walk(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		l := tiles.Letter(s[i])
		if !l.Valid() {
			return nil
		}
		n = n.children[l.Index()]
		if n == nil {
			return nil
		}
	}
	return n
}

// Contains reports whether word is in the dictionary.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// IsPrefix reports whether at least one dictionary word begins with s.
// The empty string is a prefix of every word.
func (t *Trie) IsPrefix(s string) bool {
	return t.walk(s) != nil
}

// Continuations returns the set of letters c such that some dictionary
// word begins with prefix followed by c, in alphabetical order.
func (t *Trie) Continuations(prefix string) []tiles.Letter {
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	var out []tiles.Letter
	for i, child := range n.children {
		if child != nil {
			out = append(out, tiles.Letter('A'+i))
		}
	}
	return out
}

// WordsFrom returns every dictionary word spellable from the given letter
// multiset. If require is a valid letter, only words containing it at least
// once are returned. Words are ordered by descending length, then ascending
// lexicographic, so callers iterate longest candidates first.
func (t *Trie) WordsFrom(hand tiles.Multiset, require tiles.Letter) []string {
	if require.Valid() && !hand.Has(require) {
		return nil
	}
	var (
		out  []string
		path = make([]byte, 0, 16)
	)
	var dfs func(n *node, hand tiles.Multiset, haveRequired bool)
	dfs = func(n *node, hand tiles.Multiset, haveRequired bool) {
		if n.terminal && (haveRequired || !require.Valid()) {
			out = append(out, string(path))
		}
		// Prune: the required letter can no longer appear on this branch.
		if require.Valid() && !haveRequired && !hand.Has(require) {
			return
		}
		for i, child := range n.children {
			if child == nil {
				continue
			}
			l := tiles.Letter('A' + i)
			if !hand.Has(l) {
				continue
			}
			hand.Remove(l)
			path = append(path, byte(l))
			dfs(child, hand, haveRequired || l == require)
			path = path[:len(path)-1]
			hand.Add(l)
		}
	}
	dfs(t.root, hand, false)

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
