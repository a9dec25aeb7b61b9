package solver

import (
	"github.com/junfengy/peeler/pkg/dict"
	"github.com/junfengy/peeler/pkg/tiles"
)

// DeadLetters returns the sub-multiset of the hand whose letters appear in
// no word spellable from the hand. Dead letters cannot participate in any
// solution and are pruned before the search; the swap analyzer scores them
// as prime trade-away candidates.
func DeadLetters(d *dict.Trie, hand tiles.Multiset) tiles.Multiset {
	var usable [26]bool
	for _, w := range d.WordsFrom(hand, tiles.NoLetter) {
		for i := 0; i < len(w); i++ {
			usable[tiles.Letter(w[i]).Index()] = true
		}
	}
	var dead tiles.Multiset
	for _, l := range hand.Distinct() {
		if !usable[l.Index()] {
			for i := 0; i < hand.Count(l); i++ {
				dead.Add(l)
			}
		}
	}
	return dead
}
