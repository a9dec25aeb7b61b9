package cmd

import (
	"fmt"
	"time"

	"github.com/junfengy/peeler/pkg/solver"
	"github.com/junfengy/peeler/pkg/tiles"
	"github.com/spf13/cobra"
)

var (
	peelHand   string
	peelAdded  string
	peelBudget int
)

var peelCmd = &cobra.Command{
	Use:   "peel",
	Short: "Re-solve a hand after drawing new letters",
	Long: `Peel solves the original hand, then updates the grid incrementally with
the newly drawn letters: first trying to hang them off the existing grid,
then taking back a few words, and finally re-solving from scratch.

Examples:
  # Solve CAT, then take an S
  peeler peel --hand CAT --add S

  # Several letters at once
  peeler peel --hand HELLO --add WRD`,
	RunE: runPeel,
}

func init() {
	rootCmd.AddCommand(peelCmd)

	peelCmd.Flags().StringVarP(&peelHand, "hand", "H", "", "letters solved before the peel (required)")
	peelCmd.Flags().StringVarP(&peelAdded, "add", "a", "", "letters drawn in the peel (required)")
	peelCmd.Flags().IntVarP(&peelBudget, "budget", "b", 0, "search budget in nodes (0 = default)")
	peelCmd.MarkFlagRequired("hand")
	peelCmd.MarkFlagRequired("add")
}

func runPeel(cmd *cobra.Command, args []string) error {
	hand, err := tiles.Parse(peelHand)
	if err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}
	added, err := tiles.Parse(peelAdded)
	if err != nil {
		return fmt.Errorf("invalid added letters: %w", err)
	}

	trie, err := loadDictionary()
	if err != nil {
		return err
	}

	s := solver.New(trie, solver.Config{MaxNodes: peelBudget})

	start := time.Now()
	base, err := s.Solve(hand)
	if err != nil {
		return err
	}
	if verbosity > 0 {
		fmt.Printf("base grid: %d letters in %d words\n",
			base.Grid.CellCount(), base.Grid.WordCount())
	}

	res, err := s.Peel(base.Grid, hand, added)
	if err != nil {
		return err
	}

	printResult(res)
	if verbosity > 0 {
		printStats(res.Stats, time.Since(start))
	}
	return nil
}
