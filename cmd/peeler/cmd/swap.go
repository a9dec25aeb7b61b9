package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/junfengy/peeler/pkg/solver"
	"github.com/junfengy/peeler/pkg/tiles"
	"github.com/spf13/cobra"
)

var (
	swapHand  string
	swapSolve bool
)

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Rank which letters to trade back to the pool",
	Long: `Swap scores each distinct letter of the hand, highest score first; with
--solve the hand is solved first and only the letters left unplaced are
scored. The top letter is the best candidate to trade for three fresh tiles.

Examples:
  # Rank a stuck hand outright
  peeler swap --hand QJXZVW

  # Solve first, then rank only the leftovers
  peeler swap --hand CATQ --solve`,
	RunE: runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().StringVarP(&swapHand, "hand", "H", "", "letters in hand (required)")
	swapCmd.Flags().BoolVar(&swapSolve, "solve", false, "solve the hand first and rank only unplaced letters")
	swapCmd.MarkFlagRequired("hand")
}

func runSwap(cmd *cobra.Command, args []string) error {
	hand, err := tiles.Parse(swapHand)
	if err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}

	trie, err := loadDictionary()
	if err != nil {
		return err
	}

	s := solver.New(trie, solver.Config{})

	var scores []solver.LetterScore
	if swapSolve {
		res, err := s.Solve(hand)
		if err != nil {
			return err
		}
		scores = s.SwapScores(hand, res.Grid)
	} else {
		scores = s.SwapScores(hand, nil)
	}

	if len(scores) == 0 {
		fmt.Println("every letter is placeable; nothing to swap")
		return nil
	}

	bold := color.New(color.Bold)
	for i, ls := range scores {
		if i == 0 {
			bold.Printf("%s  %d  <- swap this\n", ls.Letter, ls.Score)
			continue
		}
		fmt.Printf("%s  %d\n", ls.Letter, ls.Score)
	}
	return nil
}
