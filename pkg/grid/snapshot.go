package grid

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/junfengy/peeler/pkg/tiles"
)

// Key returns a canonical hash of the grid's occupied cells, invariant
// under translation: two grids that place the same letters in the same
// relative geometry hash identically wherever they sit on the plane.
//
// With collapseSymmetry set, the key is additionally invariant under the
// eight dihedral transforms (rotations and reflections); the key is then
// the minimum hash over all eight orientations. Translation-only is the
// default the solver uses.
func (g *Grid) Key(collapseSymmetry bool) uint64 {
	if g.IsEmpty() {
		return 0
	}
	cells := g.cellList()
	if !collapseSymmetry {
		return hashCells(cells)
	}
	best := hashCells(cells)
	for t := 1; t < 8; t++ {
		transformed := make([]cellEntry, len(cells))
		for i, e := range cells {
			transformed[i] = cellEntry{Coord: dihedral(e.Coord, t), Letter: e.Letter}
		}
		if h := hashCells(transformed); h < best {
			best = h
		}
	}
	return best
}

type cellEntry struct {
	Coord
	Letter tiles.Letter
}

func (g *Grid) cellList() []cellEntry {
	out := make([]cellEntry, 0, len(g.cells))
	for c, l := range g.cells {
		out = append(out, cellEntry{Coord: c, Letter: l})
	}
	return out
}

// hashCells normalizes the cells to a (0,0)-anchored sorted list and
// hashes their coordinates and letters.
func hashCells(cells []cellEntry) uint64 {
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, e := range cells[1:] {
		if e.Row < minRow {
			minRow = e.Row
		}
		if e.Col < minCol {
			minCol = e.Col
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	h := xxhash.New()
	var buf [9]byte
	for _, e := range cells {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(e.Row-minRow))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(e.Col-minCol))
		buf[8] = byte(e.Letter)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// dihedral applies the t-th of the eight plane symmetries to a coordinate.
func dihedral(c Coord, t int) Coord {
	r, col := c.Row, c.Col
	switch t {
	case 1: // rotate 90
		return Coord{Row: col, Col: -r}
	case 2: // rotate 180
		return Coord{Row: -r, Col: -col}
	case 3: // rotate 270
		return Coord{Row: -col, Col: r}
	case 4: // flip rows
		return Coord{Row: -r, Col: col}
	case 5: // flip cols
		return Coord{Row: r, Col: -col}
	case 6: // transpose
		return Coord{Row: col, Col: r}
	case 7: // anti-transpose
		return Coord{Row: -col, Col: -r}
	default:
		return c
	}
}
