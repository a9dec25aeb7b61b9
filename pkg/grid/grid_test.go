package grid

import (
	"errors"
	"testing"

	"github.com/junfengy/peeler/pkg/dict"
	"github.com/junfengy/peeler/pkg/tiles"
)

func testChecker(t *testing.T, words ...string) WordChecker {
	t.Helper()
	trie, err := dict.Build(words)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return trie
}

// mustPlace validates and commits a word, failing the test on rejection.
func mustPlace(t *testing.T, g *Grid, word string, start Coord, dir Direction) *Placement {
	t.Helper()
	p, err := g.CanPlace(word, start, dir)
	if err != nil {
		t.Fatalf("CanPlace(%q, %v, %s) rejected: %v", word, start, dir, err)
	}
	g.Place(p)
	return p
}

func TestCanPlaceRejections(t *testing.T) {
	checker := testChecker(t, "CAT", "COT", "CATS", "AT", "TA", "TO")

	// Base grid: CAT across the origin.
	base := func(t *testing.T) *Grid {
		g := New(checker)
		mustPlace(t, g, "CAT", Coord{}, ACROSS)
		return g
	}

	tests := []struct {
		name    string
		word    string
		start   Coord
		dir     Direction
		wantErr error
	}{
		{
			name:    "word too short",
			word:    "C",
			start:   Coord{Row: 5, Col: 5},
			dir:     ACROSS,
			wantErr: ErrWordTooShort,
		},
		{
			name:    "conflicting overlap letter",
			word:    "TO",
			start:   Coord{Row: 0, Col: 0},
			dir:     DOWN,
			wantErr: ErrLetterConflict,
		},
		{
			name:    "detached placement",
			word:    "TO",
			start:   Coord{Row: 5, Col: 5},
			dir:     ACROSS,
			wantErr: ErrDetached,
		},
		{
			name:    "blocked end cell",
			word:    "AT",
			start:   Coord{Row: 0, Col: 1},
			dir:     ACROSS,
			wantErr: ErrBlockedEnd,
		},
		{
			name:    "invalid cross word",
			word:    "TA",
			start:   Coord{Row: -1, Col: 0},
			dir:     ACROSS,
			wantErr: ErrCrossWord,
		},
		{
			name:    "no fresh cells",
			word:    "CAT",
			start:   Coord{Row: 0, Col: 0},
			dir:     ACROSS,
			wantErr: ErrNoFreshCells,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := base(t)
			if _, err := g.CanPlace(tt.word, tt.start, tt.dir); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanPlace(%q) error = %v, want %v", tt.word, err, tt.wantErr)
			}
		})
	}
}

func TestPlaceConsumesOnlyFreshCells(t *testing.T) {
	checker := testChecker(t, "CAT", "TA", "AT")
	g := New(checker)

	p := mustPlace(t, g, "CAT", Coord{}, ACROSS)
	consumed := p.FreshLetters()
	want, _ := tiles.Parse("CAT")
	if consumed != want {
		t.Fatalf("seed consumed %q, want %q", consumed.String(), want.String())
	}

	// TA down through the existing A reuses it and draws only the T.
	p2 := mustPlace(t, g, "TA", Coord{Row: -1, Col: 1}, DOWN)
	consumed2 := p2.FreshLetters()
	wantT, _ := tiles.Parse("T")
	if consumed2 != wantT {
		t.Errorf("cross placement consumed %q, want %q", consumed2.String(), wantT.String())
	}
	if p2.OverlapCount() != 1 {
		t.Errorf("OverlapCount = %d, want 1", p2.OverlapCount())
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	checker := testChecker(t, "CAT", "TA", "AT", "COT", "TO")
	g := New(checker)
	mustPlace(t, g, "CAT", Coord{}, ACROSS)

	beforeRender := g.Render()
	beforeBounds := g.Bounds()
	beforeKey := g.Key(false)

	// A sequence of placements followed by the matching undos.
	mustPlace(t, g, "TA", Coord{Row: -1, Col: 1}, DOWN)
	mustPlace(t, g, "COT", Coord{Row: 0, Col: 0}, DOWN)

	if _, err := g.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if _, err := g.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}

	if got := g.Render(); got != beforeRender {
		t.Errorf("Render after undo = %q, want %q", got, beforeRender)
	}
	if got := g.Bounds(); got != beforeBounds {
		t.Errorf("Bounds after undo = %+v, want %+v", got, beforeBounds)
	}
	if got := g.Key(false); got != beforeKey {
		t.Errorf("Key after undo = %d, want %d", got, beforeKey)
	}
	if got := g.WordCount(); got != 1 {
		t.Errorf("WordCount after undo = %d, want 1", got)
	}
}

func TestUndoOnEmptyGrid(t *testing.T) {
	g := New(testChecker(t, "CAT"))
	if _, err := g.Undo(); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("Undo on empty grid error = %v, want ErrEmptyGrid", err)
	}
}

func TestUndoClearsOnlyFreshCells(t *testing.T) {
	checker := testChecker(t, "CAT", "TA")
	g := New(checker)
	mustPlace(t, g, "CAT", Coord{}, ACROSS)
	mustPlace(t, g, "TA", Coord{Row: -1, Col: 1}, DOWN)

	if _, err := g.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	// The shared A at (0,1) belongs to CAT and must survive.
	if l, ok := g.LetterAt(Coord{Row: 0, Col: 1}); !ok || l != 'A' {
		t.Errorf("shared cell after undo = %v %v, want A", l, ok)
	}
	if _, ok := g.LetterAt(Coord{Row: -1, Col: 1}); ok {
		t.Error("fresh cell (-1,1) still occupied after undo")
	}
}

func TestAnchors(t *testing.T) {
	checker := testChecker(t, "AT")
	g := New(checker)

	// Empty grid anchors at the origin.
	got := g.Anchors()
	if len(got) != 1 || got[0] != (Coord{}) {
		t.Fatalf("empty grid Anchors() = %v, want [{0 0}]", got)
	}

	mustPlace(t, g, "AT", Coord{}, ACROSS)
	got = g.Anchors()
	want := map[Coord]bool{
		{Row: -1, Col: 0}: true,
		{Row: -1, Col: 1}: true,
		{Row: 1, Col: 0}:  true,
		{Row: 1, Col: 1}:  true,
		{Row: 0, Col: -1}: true,
		{Row: 0, Col: 2}:  true,
	}
	if len(got) != len(want) {
		t.Fatalf("Anchors() = %v, want %d cells", got, len(want))
	}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected anchor %v", c)
		}
	}
}

func TestConnected(t *testing.T) {
	checker := testChecker(t, "CAT", "TA")
	g := New(checker)
	if !g.Connected() {
		t.Error("empty grid should be connected")
	}
	mustPlace(t, g, "CAT", Coord{}, ACROSS)
	mustPlace(t, g, "TA", Coord{Row: -1, Col: 1}, DOWN)
	if !g.Connected() {
		t.Error("crossing words should be connected")
	}
}

func TestRuns(t *testing.T) {
	checker := testChecker(t, "CAT", "TA")
	g := New(checker)
	mustPlace(t, g, "CAT", Coord{}, ACROSS)
	mustPlace(t, g, "TA", Coord{Row: -1, Col: 1}, DOWN)

	runs := g.Runs()
	found := map[string]bool{}
	for _, r := range runs {
		found[r] = true
	}
	if len(runs) != 2 || !found["CAT"] || !found["TA"] {
		t.Errorf("Runs() = %v, want [CAT TA]", runs)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	checker := testChecker(t, "CAT", "TA")
	g := New(checker)
	mustPlace(t, g, "CAT", Coord{}, ACROSS)

	c := g.Clone()
	mustPlace(t, c, "TA", Coord{Row: -1, Col: 1}, DOWN)

	if g.CellCount() != 3 {
		t.Errorf("original CellCount = %d after mutating clone, want 3", g.CellCount())
	}
	if c.CellCount() != 4 {
		t.Errorf("clone CellCount = %d, want 4", c.CellCount())
	}
}
