package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/junfengy/peeler/pkg/tiles"
)

var (
	// ErrWordTooShort is returned when placing a word of fewer than two letters.
	ErrWordTooShort = errors.New("word must be at least two letters")
	// ErrLetterConflict is returned when a placement disagrees with a letter
	// already on the grid.
	ErrLetterConflict = errors.New("placement conflicts with an existing letter")
	// ErrBlockedEnd is returned when the cell immediately before or after the
	// word along its axis is already occupied, which would merge runs.
	ErrBlockedEnd = errors.New("cell beyond the word's end is occupied")
	// ErrCrossWord is returned when a newly written cell would form an
	// invalid perpendicular run.
	ErrCrossWord = errors.New("placement forms an invalid cross word")
	// ErrDetached is returned when a placement on a non-empty grid shares no
	// cell with the existing words.
	ErrDetached = errors.New("placement does not touch the existing grid")
	// ErrNoFreshCells is returned when every cell of the word is already on
	// the grid, so the placement would consume no tiles.
	ErrNoFreshCells = errors.New("placement writes no new cells")
	// ErrEmptyGrid is returned by Undo when there is nothing to undo.
	ErrEmptyGrid = errors.New("grid has no placements")
)

// WordChecker is the dictionary surface the grid needs for cross-word
// validation. *dict.Trie satisfies it.
type WordChecker interface {
	Contains(word string) bool
}

// Grid is a sparse, unbounded crossword plane. Cells are written through
// Place and cleared through Undo; every accepted mutation preserves the
// invariant that each maximal run of two or more letters is a dictionary
// word and all cells form one connected component.
type Grid struct {
	cells      map[Coord]tiles.Letter
	placements []*Placement
	bounds     Bounds
	checker    WordChecker
}

// New creates an empty grid validating cross words against the checker.
func New(checker WordChecker) *Grid {
	return &Grid{
		cells:   make(map[Coord]tiles.Letter),
		checker: checker,
	}
}

// IsEmpty reports whether the grid has no occupied cells.
func (g *Grid) IsEmpty() bool {
	return len(g.cells) == 0
}

// CellCount returns the number of occupied cells.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// WordCount returns the number of placed words.
func (g *Grid) WordCount() int {
	return len(g.placements)
}

// Bounds returns the current bounding box. The zero Bounds is returned for
// an empty grid.
func (g *Grid) Bounds() Bounds {
	if g.IsEmpty() {
		return Bounds{}
	}
	return g.bounds
}

// LetterAt returns the letter at the coordinate, if the cell is occupied.
func (g *Grid) LetterAt(c Coord) (tiles.Letter, bool) {
	l, ok := g.cells[c]
	return l, ok
}

// Letters returns the multiset of letters currently on the grid, counting
// each occupied cell once.
func (g *Grid) Letters() tiles.Multiset {
	var m tiles.Multiset
	for _, l := range g.cells {
		m.Add(l)
	}
	return m
}

// Placements returns the placed words in insertion order.
func (g *Grid) Placements() []*Placement {
	out := make([]*Placement, len(g.placements))
	copy(out, g.placements)
	return out
}

// CanPlace validates placing word at start along dir without mutating the
// grid. On success it returns the placement, with the newly written cells
// resolved; on failure it returns a rejection error.
//
// A valid placement must agree with every overlapped letter, keep the two
// cells beyond its ends empty, form only dictionary words perpendicular to
// its axis, write at least one new cell, and, unless the grid is empty,
// reuse at least one existing cell.
func (g *Grid) CanPlace(word string, start Coord, dir Direction) (*Placement, error) {
	if len(word) < 2 {
		return nil, ErrWordTooShort
	}

	before := start.Step(dir, -1)
	after := start.Step(dir, len(word))
	if _, ok := g.cells[before]; ok {
		return nil, ErrBlockedEnd
	}
	if _, ok := g.cells[after]; ok {
		return nil, ErrBlockedEnd
	}

	p := &Placement{Start: start, Dir: dir, Word: word}
	overlaps := 0
	for i := 0; i < len(word); i++ {
		cell := start.Step(dir, i)
		letter := tiles.Letter(word[i])
		if !letter.Valid() {
			return nil, tiles.ErrInvalidLetter
		}
		if existing, ok := g.cells[cell]; ok {
			if existing != letter {
				return nil, fmt.Errorf("%w: %s at (%d,%d)", ErrLetterConflict, existing, cell.Row, cell.Col)
			}
			overlaps++
			continue
		}
		if run := g.crossRun(cell, letter, dir.Perpendicular()); len(run) >= 2 {
			if !g.checker.Contains(run) {
				return nil, fmt.Errorf("%w: %q", ErrCrossWord, run)
			}
		}
		p.fresh = append(p.fresh, cell)
	}

	if len(p.fresh) == 0 {
		return nil, ErrNoFreshCells
	}
	if !g.IsEmpty() && overlaps == 0 {
		return nil, ErrDetached
	}
	return p, nil
}

// crossRun returns the maximal run through cell along dir, assuming cell
// holds letter. Only existing occupied cells extend the run; the candidate
// word's other cells lie on the perpendicular axis and cannot appear here.
func (g *Grid) crossRun(cell Coord, letter tiles.Letter, dir Direction) string {
	run := []byte{byte(letter)}
	for i := -1; ; i-- {
		l, ok := g.cells[cell.Step(dir, i)]
		if !ok {
			break
		}
		run = append([]byte{byte(l)}, run...)
	}
	for i := 1; ; i++ {
		l, ok := g.cells[cell.Step(dir, i)]
		if !ok {
			break
		}
		run = append(run, byte(l))
	}
	return string(run)
}

// Place commits a placement previously validated by CanPlace and returns
// the multiset of letters consumed from the hand. Only newly written cells
// draw tiles; overlap cells reuse the letters already on the grid.
func (g *Grid) Place(p *Placement) tiles.Multiset {
	p.prevBounds = g.bounds
	p.prevEmpty = g.IsEmpty()

	for i, c := range p.Cells() {
		if _, ok := g.cells[c]; !ok {
			g.cells[c] = tiles.Letter(p.Word[i])
			if p.prevEmpty && len(g.cells) == 1 {
				g.bounds = Bounds{MinRow: c.Row, MinCol: c.Col, MaxRow: c.Row, MaxCol: c.Col}
			} else {
				g.bounds = g.bounds.expand(c)
			}
		}
	}
	g.placements = append(g.placements, p)
	return p.FreshLetters()
}

// Undo removes the most recently placed word, clearing only the cells that
// word newly wrote. The grid returns exactly to its state before the
// matching Place call.
func (g *Grid) Undo() (*Placement, error) {
	if len(g.placements) == 0 {
		return nil, ErrEmptyGrid
	}
	p := g.placements[len(g.placements)-1]
	g.placements = g.placements[:len(g.placements)-1]
	for _, c := range p.fresh {
		delete(g.cells, c)
	}
	g.bounds = p.prevBounds
	return p, nil
}

// Anchors returns every empty cell 4-adjacent to an occupied cell, sorted
// row-major. An empty grid anchors at the origin.
func (g *Grid) Anchors() []Coord {
	if g.IsEmpty() {
		return []Coord{{}}
	}
	seen := make(map[Coord]bool)
	for c := range g.cells {
		for _, n := range neighbors(c) {
			if _, occupied := g.cells[n]; !occupied {
				seen[n] = true
			}
		}
	}
	out := make([]Coord, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// AttachCells returns the occupied cells in row-major order. These are the
// attachment points the solver threads new words through; the letter at
// each cell is contributed free to any word overlapping it.
func (g *Grid) AttachCells() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clone returns a deep copy of the grid sharing the checker and the
// immutable placement records.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cells:      make(map[Coord]tiles.Letter, len(g.cells)),
		placements: make([]*Placement, len(g.placements)),
		bounds:     g.bounds,
		checker:    g.checker,
	}
	for k, v := range g.cells {
		c.cells[k] = v
	}
	copy(c.placements, g.placements)
	return c
}

func neighbors(c Coord) [4]Coord {
	return [4]Coord{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}
