package grid

import (
	"encoding/json"
	"testing"
)

// buildCross places CAT across with TA crossing it, offset by the given
// origin, giving translated copies of one geometry.
func buildCross(t *testing.T, checker WordChecker, origin Coord) *Grid {
	t.Helper()
	g := New(checker)
	mustPlace(t, g, "CAT", origin, ACROSS)
	mustPlace(t, g, "TA", Coord{Row: origin.Row - 1, Col: origin.Col + 1}, DOWN)
	return g
}

func TestKeyTranslationInvariant(t *testing.T) {
	checker := testChecker(t, "CAT", "TA")

	a := buildCross(t, checker, Coord{})
	b := buildCross(t, checker, Coord{Row: 17, Col: -40})

	if a.Key(false) != b.Key(false) {
		t.Errorf("translated grids have different keys: %d vs %d", a.Key(false), b.Key(false))
	}
	if a.Key(true) != b.Key(true) {
		t.Errorf("translated grids have different symmetric keys")
	}
}

func TestKeyDistinguishesGeometry(t *testing.T) {
	checker := testChecker(t, "CAT", "TA", "AT")

	a := New(checker)
	mustPlace(t, a, "CAT", Coord{}, ACROSS)

	b := New(checker)
	mustPlace(t, b, "TA", Coord{}, ACROSS)

	if a.Key(false) == b.Key(false) {
		t.Error("different grids share a key")
	}
}

func TestKeyDihedralCollapse(t *testing.T) {
	checker := testChecker(t, "CAT")

	across := New(checker)
	mustPlace(t, across, "CAT", Coord{}, ACROSS)

	down := New(checker)
	mustPlace(t, down, "CAT", Coord{}, DOWN)

	if across.Key(false) == down.Key(false) {
		t.Error("rotated grids share a translation-only key")
	}
	if across.Key(true) != down.Key(true) {
		t.Errorf("rotated grids differ under symmetric keys: %d vs %d",
			across.Key(true), down.Key(true))
	}
}

func TestKeyEmptyGrid(t *testing.T) {
	g := New(testChecker(t, "CAT"))
	if g.Key(false) != 0 {
		t.Errorf("empty grid Key = %d, want 0", g.Key(false))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	checker := testChecker(t, "CAT", "TA")
	g := buildCross(t, checker, Coord{Row: 2, Col: 3})

	snap := g.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	restored, err := Restore(&decoded, checker)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if restored.Render() != g.Render() {
		t.Errorf("restored render = %q, want %q", restored.Render(), g.Render())
	}
	if restored.Key(false) != g.Key(false) {
		t.Error("restored grid has a different key")
	}
	if restored.WordCount() != g.WordCount() {
		t.Errorf("restored WordCount = %d, want %d", restored.WordCount(), g.WordCount())
	}

	// Undo must work on a restored grid exactly as on the original.
	if _, err := restored.Undo(); err != nil {
		t.Fatalf("Undo on restored grid failed: %v", err)
	}
	if restored.CellCount() != 3 {
		t.Errorf("CellCount after undo = %d, want 3", restored.CellCount())
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	checker := testChecker(t, "CAT", "TA")
	a, _ := json.Marshal(buildCross(t, checker, Coord{}).Snapshot())
	b, _ := json.Marshal(buildCross(t, checker, Coord{}).Snapshot())
	if string(a) != string(b) {
		t.Errorf("snapshots differ for identical grids:\n%s\n%s", a, b)
	}
}
