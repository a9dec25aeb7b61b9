package solver

import (
	"sort"

	"github.com/junfengy/peeler/pkg/grid"
	"github.com/junfengy/peeler/pkg/tiles"
)

// Swap-score weights. Higher scores mean "better to trade away".
const (
	swapDifficultyWeight = 10 // base: rare letters are worth shedding
	swapShortWordWeight  = 3  // penalty per short word the letter could still form
	swapDeadBonus        = 50 // the letter provably cannot be played at all
)

// LetterScore pairs a letter with its swap score.
type LetterScore struct {
	Letter tiles.Letter `json:"letter"`
	Score  int          `json:"score"`
}

// SwapScores ranks the letters of the hand that are not placed on the grid
// by how attractive they are to trade back to the pool. A nil grid treats
// the whole hand as unplaced. The result is sorted by descending score,
// breaking ties by letter difficulty and then alphabetically; it is empty
// when every letter is placed.
func (s *Solver) SwapScores(hand tiles.Multiset, g *grid.Grid) []LetterScore {
	unplaced := hand
	if g != nil {
		unplaced = hand.Diff(g.Letters())
	}
	if unplaced.IsEmpty() {
		return []LetterScore{}
	}

	dead := DeadLetters(s.dict, hand)

	scores := make([]LetterScore, 0, len(unplaced.Distinct()))
	for _, c := range unplaced.Distinct() {
		score := swapDifficultyWeight * tiles.Difficulty(c)
		score -= swapShortWordWeight * s.shortWordCount(unplaced, c)
		if dead.Has(c) {
			score += swapDeadBonus
		}
		scores = append(scores, LetterScore{Letter: c, Score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		di, dj := tiles.Difficulty(scores[i].Letter), tiles.Difficulty(scores[j].Letter)
		if di != dj {
			return di > dj
		}
		return scores[i].Letter < scores[j].Letter
	})
	return scores
}

// shortWordCount counts the 2- to 4-letter dictionary words containing c
// that the unplaced letters can still spell. A letter with many short
// outs is easy to keep; one with none is stuck.
func (s *Solver) shortWordCount(unplaced tiles.Multiset, c tiles.Letter) int {
	n := 0
	for _, w := range s.dict.WordsFrom(unplaced, c) {
		if len(w) >= 2 && len(w) <= 4 {
			n++
		}
	}
	return n
}
