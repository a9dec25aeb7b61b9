package solver

import (
	"testing"
)

func TestSwapScoresRanksStuckRareLetters(t *testing.T) {
	d := mustBuild(t, "CAT", "AT", "TA")
	s := New(d, Config{})
	hand := mustParse(t, "QJXZQJXZ")

	scores := s.SwapScores(hand, nil)
	if len(scores) != 4 {
		t.Fatalf("got %d scored letters, want 4", len(scores))
	}

	top := map[byte]bool{}
	for _, ls := range scores {
		top[byte(ls.Letter)] = true
	}
	for _, want := range []byte{'Q', 'J', 'X', 'Z'} {
		if !top[want] {
			t.Errorf("letter %c missing from swap ranking", want)
		}
	}

	// Scores must be non-increasing.
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[i-1].Score {
			t.Errorf("scores out of order at %d: %v", i, scores)
		}
	}
}

func TestSwapScoresExcludesPlacedLetters(t *testing.T) {
	d := mustBuild(t, "CAT", "AT", "TA")
	s := New(d, Config{})
	hand := mustParse(t, "CATQ")

	res, err := s.Solve(hand)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	scores := s.SwapScores(hand, res.Grid)
	if len(scores) != 1 {
		t.Fatalf("got %d scored letters, want 1: %v", len(scores), scores)
	}
	if scores[0].Letter != 'Q' {
		t.Errorf("top swap letter = %s, want Q", scores[0].Letter)
	}
}

func TestSwapScoresEmptyWhenAllPlaced(t *testing.T) {
	d := mustBuild(t, "CAT")
	s := New(d, Config{})
	hand := mustParse(t, "CAT")

	res, err := s.Solve(hand)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	scores := s.SwapScores(hand, res.Grid)
	if len(scores) != 0 {
		t.Errorf("got %d scored letters, want 0: %v", len(scores), scores)
	}
}

func TestSwapScoresDeadLetterOutranksLiveOne(t *testing.T) {
	// VAT seeds ahead of CAT, leaving C and Q unplaced; Q is dead (no Q
	// word), while C still appears in CAT.
	d := mustBuild(t, "CAT", "VAT", "AT")
	s := New(d, Config{})
	hand := mustParse(t, "CATQV")

	res, err := s.Solve(hand)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	scores := s.SwapScores(hand, res.Grid)
	if len(scores) == 0 {
		t.Fatal("no swap scores returned")
	}
	if scores[0].Letter != 'Q' {
		t.Errorf("top swap letter = %s, want the dead Q\nscores: %v", scores[0].Letter, scores)
	}
}
