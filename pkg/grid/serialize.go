package grid

import (
	"fmt"
	"strings"

	"github.com/junfengy/peeler/pkg/tiles"
)

// CellJSON represents one occupied cell in the serialized form
type CellJSON struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// PlacedWordJSON represents one placed word in the serialized form
type PlacedWordJSON struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	Word      string `json:"word"`
}

// Snapshot is the wire form of a grid: its bounding box, the occupied
// cells, and the placed words in insertion order.
type Snapshot struct {
	Bounds Bounds           `json:"bounds"`
	Cells  []CellJSON       `json:"cells"`
	Words  []PlacedWordJSON `json:"words"`
}

// Snapshot serializes the grid. Cells are sorted row-major so the output
// is byte-stable for identical grids.
func (g *Grid) Snapshot() *Snapshot {
	s := &Snapshot{Bounds: g.Bounds()}
	for _, c := range g.AttachCells() {
		s.Cells = append(s.Cells, CellJSON{Row: c.Row, Col: c.Col, Letter: g.cells[c].String()})
	}
	for _, p := range g.placements {
		s.Words = append(s.Words, PlacedWordJSON{
			Row:       p.Start.Row,
			Col:       p.Start.Col,
			Direction: p.Dir.String(),
			Word:      p.Word,
		})
	}
	return s
}

// Restore rebuilds a grid from a snapshot by replaying its placed words in
// order, recovering the fresh-cell bookkeeping so Undo behaves exactly as
// it would on the original grid. The snapshot's words are trusted to have
// passed validation when the grid was produced; only structural conflicts
// are rejected.
func Restore(s *Snapshot, checker WordChecker) (*Grid, error) {
	g := New(checker)
	for _, w := range s.Words {
		dir := ACROSS
		if w.Direction == DOWN.String() {
			dir = DOWN
		}
		p := &Placement{Start: Coord{Row: w.Row, Col: w.Col}, Dir: dir, Word: w.Word}
		for i, c := range p.Cells() {
			letter := tiles.Letter(w.Word[i])
			if !letter.Valid() {
				return nil, fmt.Errorf("word %q: %w", w.Word, tiles.ErrInvalidLetter)
			}
			if existing, ok := g.cells[c]; ok {
				if existing != letter {
					return nil, fmt.Errorf("word %q at (%d,%d): %w", w.Word, c.Row, c.Col, ErrLetterConflict)
				}
				continue
			}
			p.fresh = append(p.fresh, c)
		}
		g.Place(p)
	}
	return g, nil
}

// Render returns a fixed-width text picture of the grid with '.' marking
// empty cells inside the bounding box.
func (g *Grid) Render() string {
	if g.IsEmpty() {
		return ""
	}
	b := g.Bounds()
	var sb strings.Builder
	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			if l, ok := g.cells[Coord{Row: r, Col: c}]; ok {
				sb.WriteByte(byte(l))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Words returns the placed words in insertion order.
func (g *Grid) Words() []string {
	out := make([]string, len(g.placements))
	for i, p := range g.placements {
		out[i] = p.Word
	}
	return out
}