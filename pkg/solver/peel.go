package solver

import (
	"time"

	"github.com/junfengy/peeler/pkg/grid"
	"github.com/junfengy/peeler/pkg/tiles"
)

// Strategy names reported in Stats.Strategy by Peel.
const (
	StrategyQuickAttach        = "quick-attach"
	StrategyPartialRestructure = "partial-restructure"
	StrategyFullResolve        = "full-resolve"
)

// quickAttachMaxLen bounds the words quick attach considers. Short words
// are the only ones likely to hang off the existing grid with a single
// fresh cell.
const quickAttachMaxLen = 4

// maxPopWords is how many trailing placements partial restructure is
// willing to take back before giving up and re-solving from scratch.
const maxPopWords = 3

// Peel updates a previously solved grid after new letters arrive. Three
// strategies run in order under a shared node budget (quick attach gets
// 20%, partial restructure 30%, a full re-solve whatever remains),
// returning as soon as one places every outstanding letter. If none
// succeeds completely, the best grid across all three is returned with the
// leftover letters.
//
// The budget is counted in search nodes, the same unit Solve uses; each
// quick-attach placement trial also costs one node.
func (s *Solver) Peel(prev *grid.Grid, prevHand, added tiles.Multiset) (*Result, error) {
	if added.IsEmpty() {
		return nil, tiles.ErrEmptyHand
	}
	if prev == nil {
		prev = grid.New(s.dict)
	}
	start := time.Now()
	fullHand := prevHand.Union(added)

	budget := s.cfg.MaxNodes
	quickBudget := budget / 5
	partialBudget := budget * 3 / 10

	nodes := 0
	best := prev.Clone()
	bestQ := gradeGrid(prev)

	// Tier 1: hang each new letter off the existing grid with a short
	// word that writes exactly one fresh cell.
	g := prev.Clone()
	leftover, spent := s.quickAttach(g, added, quickBudget)
	nodes += spent
	if q := gradeGrid(g); q.better(bestQ) {
		best = g.Clone()
		bestQ = q
	}
	if leftover.IsEmpty() {
		return &Result{
			Grid:     g,
			Unplaced: fullHand.Diff(g.Letters()),
			Stats: Stats{
				Nodes:    nodes,
				Letters:  g.CellCount(),
				Words:    g.WordCount(),
				Elapsed:  time.Since(start),
				Strategy: StrategyQuickAttach,
			},
		}, nil
	}

	// Tier 2: take back the last k words, return their tiles to the hand
	// and re-run the core search from the reduced grid.
	perPop := partialBudget / maxPopWords
	for k := 1; k <= maxPopWords && k <= prev.WordCount(); k++ {
		gk := prev.Clone()
		returned := added
		for i := 0; i < k; i++ {
			p, err := gk.Undo()
			if err != nil {
				break
			}
			returned = returned.Union(p.FreshLetters())
		}

		se := newSearch(s.dict, s.cfg, perPop, gk.CellCount()+returned.Size())
		se.best = gk.Clone()
		se.bestQ = gradeGrid(gk)
		se.run(gk, returned)
		nodes += se.nodes

		if q := gradeGrid(se.best); q.better(bestQ) {
			best = se.best
			bestQ = q
		}
		if se.done {
			return &Result{
				Grid:     se.best,
				Unplaced: fullHand.Diff(se.best.Letters()),
				Stats: Stats{
					Nodes:    nodes,
					Deduped:  se.deduped,
					Letters:  se.best.CellCount(),
					Words:    se.best.WordCount(),
					Elapsed:  time.Since(start),
					Strategy: StrategyPartialRestructure,
				},
			}, nil
		}
	}

	// Tier 3: discard the grid and solve the whole hand again.
	res := s.solve(fullHand, budget-nodes)
	nodes += res.Stats.Nodes
	if q := gradeGrid(res.Grid); q.better(bestQ) {
		best = res.Grid
		bestQ = q
	}

	return &Result{
		Grid:     best,
		Unplaced: fullHand.Diff(best.Letters()),
		Stats: Stats{
			Nodes:           nodes,
			Deduped:         res.Stats.Deduped,
			Letters:         best.CellCount(),
			Words:           best.WordCount(),
			Elapsed:         time.Since(start),
			BudgetExhausted: res.Stats.BudgetExhausted,
			Strategy:        StrategyFullResolve,
		},
	}, nil
}

// quickAttach places as many of the added letters as it can, one at a
// time, mutating g. It returns the letters it could not place and the
// number of placement trials spent.
func (s *Solver) quickAttach(g *grid.Grid, added tiles.Multiset, budget int) (tiles.Multiset, int) {
	remaining := added
	spent := 0
	for {
		placedOne := false
		// Hardest letters first; they have the fewest chances to attach.
		letters := remaining.Distinct()
		for i := 0; i < len(letters); i++ {
			for j := i + 1; j < len(letters); j++ {
				if tiles.Difficulty(letters[j]) > tiles.Difficulty(letters[i]) {
					letters[i], letters[j] = letters[j], letters[i]
				}
			}
		}
		for _, c := range letters {
			if spent >= budget {
				return remaining, spent
			}
			if s.attachOne(g, c, budget, &spent) {
				remaining.Remove(c)
				placedOne = true
				break
			}
		}
		if remaining.IsEmpty() || !placedOne {
			return remaining, spent
		}
	}
}

// attachOne tries to place letter c on g with a word of length at most
// quickAttachMaxLen writing exactly one fresh cell, the cell holding c.
// Every other cell of the word overlaps letters already on the grid.
func (s *Solver) attachOne(g *grid.Grid, c tiles.Letter, budget int, spent *int) bool {
	if g.IsEmpty() {
		return false
	}
	pool := g.Letters()
	pool.Add(c)
	words := candidateWords(s.dict, pool, c, 1) // short words first
	for _, w := range words {
		if len(w) > quickAttachMaxLen {
			break
		}
		for _, ap := range g.AttachCells() {
			anchorLetter, _ := g.LetterAt(ap)
			for _, dir := range []grid.Direction{grid.ACROSS, grid.DOWN} {
				for idx := 0; idx < len(w); idx++ {
					if tiles.Letter(w[idx]) != anchorLetter {
						continue
					}
					if *spent >= budget {
						return false
					}
					*spent++
					p, err := g.CanPlace(w, ap.Step(dir, -idx), dir)
					if err != nil {
						continue
					}
					fresh := p.FreshLetters()
					if fresh.Size() != 1 || !fresh.Has(c) {
						continue
					}
					g.Place(p)
					return true
				}
			}
		}
	}
	return false
}
