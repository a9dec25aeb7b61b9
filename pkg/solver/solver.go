package solver

import (
	"time"

	"github.com/junfengy/peeler/pkg/dict"
	"github.com/junfengy/peeler/pkg/grid"
	"github.com/junfengy/peeler/pkg/tiles"
)

// DefaultMaxNodes is the node budget used when the config leaves it unset.
// One node is one entry into the recursive search.
const DefaultMaxNodes = 500000

// progressEvery controls how often the progress callback fires, in nodes.
const progressEvery = 2048

// Config holds solver configuration.
type Config struct {
	MaxNodes         int         // search budget in nodes (0 = DefaultMaxNodes)
	CollapseSymmetry bool        // fold the 8 dihedral orientations into one snapshot key
	Progress         func(Stats) // optional progress callback, invoked periodically
}

// Stats describes how a solve went alongside its result.
type Stats struct {
	Nodes           int           `json:"nodes"`
	Deduped         int           `json:"deduped"`
	Letters         int           `json:"letters"`
	Words           int           `json:"words"`
	Elapsed         time.Duration `json:"elapsed"`
	BudgetExhausted bool          `json:"budgetExhausted"`
	Strategy        string        `json:"strategy,omitempty"`
}

// Result is the outcome of a solve or peel: the best grid found, the
// letters that could not be placed, and the search statistics. An
// unsolvable hand is a normal result with a non-empty Unplaced, not an
// error.
type Result struct {
	Grid     *grid.Grid
	Unplaced tiles.Multiset
	Stats    Stats
}

// Solver runs placement searches against a fixed dictionary. A Solver is
// safe for concurrent use: every solve owns its own grid, snapshot store
// and recursion stack, and the dictionary is read-only.
type Solver struct {
	dict *dict.Trie
	cfg  Config
}

// New creates a solver. Zero config fields take their defaults.
func New(d *dict.Trie, cfg Config) *Solver {
	if cfg.MaxNodes == 0 {
		cfg.MaxNodes = DefaultMaxNodes
	}
	return &Solver{dict: d, cfg: cfg}
}

// Solve arranges as much of the hand as possible into a valid grid.
// Letters that appear in no word spellable from the hand are pruned before
// the search and reported back unplaced.
func (s *Solver) Solve(hand tiles.Multiset) (*Result, error) {
	if hand.IsEmpty() {
		return nil, tiles.ErrEmptyHand
	}
	return s.solve(hand, s.cfg.MaxNodes), nil
}

// solve runs the seed phase and recursive search under the given budget.
func (s *Solver) solve(hand tiles.Multiset, budget int) *Result {
	start := time.Now()

	dead := DeadLetters(s.dict, hand)
	work := hand.Diff(dead)

	se := newSearch(s.dict, s.cfg, budget, work.Size())
	se.best = grid.New(s.dict)
	se.run(grid.New(s.dict), work)

	placed := se.best.Letters()
	return &Result{
		Grid:     se.best,
		Unplaced: hand.Diff(placed),
		Stats: Stats{
			Nodes:           se.nodes,
			Deduped:         se.deduped,
			Letters:         se.best.CellCount(),
			Words:           se.best.WordCount(),
			Elapsed:         time.Since(start),
			BudgetExhausted: se.exhausted,
		},
	}
}

// search carries the per-solve state: the snapshot store, the node budget,
// and the best grid seen so far. It is discarded when the solve returns.
type search struct {
	dict     *dict.Trie
	cfg      Config
	seen     map[uint64]struct{}
	budget   int
	nodes    int
	deduped  int
	target    int // total letters available; reaching it ends the search
	best      *grid.Grid
	bestQ     quality
	done      bool // early exit: a full placement was found
	exhausted bool // the node budget ran out
}

func newSearch(d *dict.Trie, cfg Config, budget, target int) *search {
	return &search{
		dict:   d,
		cfg:    cfg,
		seen:   make(map[uint64]struct{}),
		budget: budget,
		target: target,
	}
}

// record scores the current grid against the best seen, keeping a clone
// when it wins. Finding a grid that places every available letter ends
// the search.
func (se *search) record(g *grid.Grid) {
	q := gradeGrid(g)
	if se.best == nil || q.better(se.bestQ) {
		se.best = g.Clone()
		se.bestQ = q
	}
	if q.letters >= se.target && se.target > 0 {
		se.done = true
	}
}

// spend consumes one node of budget. It returns false once the budget is
// gone, which unwinds the search cleanly with the best grid kept.
func (se *search) spend() bool {
	if se.budget <= 0 {
		se.exhausted = true
		return false
	}
	se.budget--
	se.nodes++
	if se.cfg.Progress != nil && se.nodes%progressEvery == 0 {
		se.cfg.Progress(Stats{
			Nodes:   se.nodes,
			Deduped: se.deduped,
			Letters: se.bestQ.letters,
			Words:   se.bestQ.words,
		})
	}
	return true
}

// run explores from g. An empty grid is seeded first: each candidate seed
// word is laid horizontally at the origin and the recursion continues from
// there.
func (se *search) run(g *grid.Grid, remaining tiles.Multiset) {
	if !g.IsEmpty() {
		se.record(g)
		se.recurse(g, remaining)
		return
	}
	if remaining.IsEmpty() {
		return
	}
	for _, seed := range seedWords(se.dict, remaining) {
		sg := g.Clone()
		p, err := sg.CanPlace(seed, grid.Coord{}, grid.ACROSS)
		if err != nil {
			continue
		}
		need := p.FreshLetters()
		sg.Place(p)
		se.record(sg)
		se.recurse(sg, remaining.Diff(need))
		if se.done || se.exhausted {
			return
		}
	}
}

// recurse extends the grid with one more word in every legal way, depth
// first. The grid is mutated in place and restored before returning; the
// current state is itself always a candidate answer (the "stop" move).
func (se *search) recurse(g *grid.Grid, remaining tiles.Multiset) {
	if se.done || !se.spend() {
		return
	}
	if remaining.IsEmpty() {
		return
	}

	for _, ap := range orderedAttachCells(g) {
		anchorLetter, ok := g.LetterAt(ap)
		if !ok {
			continue
		}
		pool := remaining
		pool.Add(anchorLetter)
		words := candidateWords(se.dict, pool, anchorLetter, remaining.Size())

		for _, dir := range []grid.Direction{grid.ACROSS, grid.DOWN} {
			for _, w := range words {
				for idx := 0; idx < len(w); idx++ {
					if tiles.Letter(w[idx]) != anchorLetter {
						continue
					}
					start := ap.Step(dir, -idx)
					p, err := g.CanPlace(w, start, dir)
					if err != nil {
						continue
					}
					need := p.FreshLetters()
					if !remaining.Contains(need) {
						continue
					}
					g.Place(p)
					key := g.Key(se.cfg.CollapseSymmetry)
					if _, dup := se.seen[key]; dup {
						se.deduped++
						g.Undo()
						continue
					}
					se.seen[key] = struct{}{}
					se.record(g)
					se.recurse(g, remaining.Diff(need))
					g.Undo()
					if se.done || se.exhausted {
						return
					}
				}
			}
		}
	}
}
