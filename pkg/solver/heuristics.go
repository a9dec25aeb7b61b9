package solver

import (
	"sort"

	"github.com/junfengy/peeler/pkg/dict"
	"github.com/junfengy/peeler/pkg/grid"
	"github.com/junfengy/peeler/pkg/tiles"
)

// quality compares partial solutions lexicographically: more letters
// placed wins, then fewer words, then a tighter bounding box.
type quality struct {
	letters int
	words   int
	area    int
}

func gradeGrid(g *grid.Grid) quality {
	return quality{
		letters: g.CellCount(),
		words:   g.WordCount(),
		area:    g.Bounds().Area(),
	}
}

func (q quality) better(o quality) bool {
	if q.letters != o.letters {
		return q.letters > o.letters
	}
	if q.words != o.words {
		return q.words < o.words
	}
	return q.area < o.area
}

// seedWords enumerates candidate first words for an empty grid: longest
// first, then by summed letter difficulty so hands holding Q, X, Z or J
// spend those letters before they strand, then lexicographic for
// determinism.
func seedWords(d *dict.Trie, hand tiles.Multiset) []string {
	words := d.WordsFrom(hand, tiles.NoLetter)
	sort.SliceStable(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		di, dj := tiles.DifficultySum(words[i]), tiles.DifficultySum(words[j])
		if di != dj {
			return di > dj
		}
		return words[i] < words[j]
	})
	return words
}

// orderedAttachCells returns the grid's occupied cells ordered for
// expansion: hardest letters first, since they admit the fewest words and
// resolving them early prunes deeper. Ties break row-major.
func orderedAttachCells(g *grid.Grid) []grid.Coord {
	cells := g.AttachCells()
	sort.SliceStable(cells, func(i, j int) bool {
		li, _ := g.LetterAt(cells[i])
		lj, _ := g.LetterAt(cells[j])
		di, dj := tiles.Difficulty(li), tiles.Difficulty(lj)
		if di != dj {
			return di > dj
		}
		return cells[i].Less(cells[j])
	})
	return cells
}

// candidateWords enumerates dictionary words through an anchor letter,
// spellable from the pool (the remaining hand plus the anchor's free
// letter). When few letters remain, short words are tried first; with a
// large hand, long words first. Ties break lexicographically.
func candidateWords(d *dict.Trie, pool tiles.Multiset, anchor tiles.Letter, remainingSize int) []string {
	words := d.WordsFrom(pool, anchor)
	shortFirst := remainingSize < 5
	sort.SliceStable(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			if shortFirst {
				return len(words[i]) < len(words[j])
			}
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}
