package tiles

import (
	"errors"
	"math/rand"
)

// ErrPoolEmpty is returned when a draw is requested from an exhausted pool.
var ErrPoolEmpty = errors.New("pool has no tiles left")

// Distribution is the standard tile-frequency table. The 26 counts sum to 144.
var Distribution = Multiset{
	'A' - 'A': 13,
	'B' - 'A': 3,
	'C' - 'A': 3,
	'D' - 'A': 6,
	'E' - 'A': 18,
	'F' - 'A': 3,
	'G' - 'A': 4,
	'H' - 'A': 3,
	'I' - 'A': 12,
	'J' - 'A': 2,
	'K' - 'A': 2,
	'L' - 'A': 5,
	'M' - 'A': 3,
	'N' - 'A': 8,
	'O' - 'A': 11,
	'P' - 'A': 3,
	'Q' - 'A': 2,
	'R' - 'A': 9,
	'S' - 'A': 6,
	'T' - 'A': 9,
	'U' - 'A': 6,
	'V' - 'A': 3,
	'W' - 'A': 3,
	'X' - 'A': 2,
	'Y' - 'A': 3,
	'Z' - 'A': 2,
}

// Pool is the bag of tiles not yet drawn into any hand.
// Draws are randomized but reproducible given the same seed.
type Pool struct {
	remaining Multiset
	rng       *rand.Rand
}

// NewPool creates a full pool from the standard distribution.
// A seed of 0 selects a source seeded from the default shared source.
func NewPool(seed int64) *Pool {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Pool{remaining: Distribution, rng: rng}
}

// Remaining returns a copy of the multiset of tiles still in the bag.
func (p *Pool) Remaining() Multiset {
	return p.remaining
}

// Size returns the number of tiles left in the bag.
func (p *Pool) Size() int {
	return p.remaining.Size()
}

// Draw removes n random tiles from the bag and returns them.
// If fewer than n tiles remain it draws what is left and returns
// ErrPoolEmpty alongside the partial draw.
func (p *Pool) Draw(n int) ([]Letter, error) {
	drawn := make([]Letter, 0, n)
	for i := 0; i < n; i++ {
		l, ok := p.drawOne()
		if !ok {
			return drawn, ErrPoolEmpty
		}
		drawn = append(drawn, l)
	}
	return drawn, nil
}

// Swap returns one tile to the bag and draws drawN fresh tiles.
// The returned tile is eligible to be drawn again immediately.
func (p *Pool) Swap(give Letter, drawN int) ([]Letter, error) {
	if !give.Valid() {
		return nil, ErrInvalidLetter
	}
	p.remaining.Add(give)
	return p.Draw(drawN)
}

// drawOne picks a single tile uniformly over the remaining tiles.
func (p *Pool) drawOne() (Letter, bool) {
	total := p.remaining.Size()
	if total == 0 {
		return 0, false
	}
	pick := p.rng.Intn(total)
	for i, c := range p.remaining {
		if pick < c {
			l := Letter('A' + i)
			p.remaining.Remove(l)
			return l, true
		}
		pick -= c
	}
	return 0, false
}
