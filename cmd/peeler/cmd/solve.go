package cmd

import (
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/junfengy/peeler/pkg/grid"
	"github.com/junfengy/peeler/pkg/solver"
	"github.com/junfengy/peeler/pkg/tiles"
	"github.com/spf13/cobra"
)

var (
	solveHand     string
	solveBudget   int
	solveSymmetry bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Arrange a hand of letters into a grid",
	Long: `Solve arranges every letter of the hand into a single connected grid.

Examples:
  # Solve a 12-letter hand against SOWPODS
  peeler solve --hand WHATHATTHRAW --dict data/sowpods.txt

  # Bound the search and fold symmetric grids together
  peeler solve --hand BANANAGRAMS --budget 100000 --symmetry`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveHand, "hand", "H", "", "letters in hand (required)")
	solveCmd.Flags().IntVarP(&solveBudget, "budget", "b", 0, "search budget in nodes (0 = default)")
	solveCmd.Flags().BoolVar(&solveSymmetry, "symmetry", false, "collapse rotated and reflected grids in deduplication")
	solveCmd.MarkFlagRequired("hand")
}

func runSolve(cmd *cobra.Command, args []string) error {
	hand, err := tiles.Parse(solveHand)
	if err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}

	trie, err := loadDictionary()
	if err != nil {
		return err
	}
	if verbosity > 0 {
		fmt.Printf("Loaded %s words\n", humanize.Comma(int64(trie.Size())))
	}

	// The search budget doubles as the progress bar total; the bar fills
	// as nodes are spent and finishes early when a full placement lands.
	budget := solveBudget
	if budget == 0 {
		budget = solver.DefaultMaxNodes
	}
	bar := pb.Start64(int64(budget))
	bar.Set(pb.Bytes, false)

	s := solver.New(trie, solver.Config{
		MaxNodes:         solveBudget,
		CollapseSymmetry: solveSymmetry,
		Progress: func(st solver.Stats) {
			bar.SetCurrent(int64(st.Nodes))
		},
	})

	start := time.Now()
	res, err := s.Solve(hand)
	bar.Finish()
	if err != nil {
		return err
	}

	printResult(res)
	if verbosity > 0 {
		printStats(res.Stats, time.Since(start))
	}
	if verbosity > 1 {
		fmt.Printf("words: %s\n", renderWords(res.Grid))
	}
	return nil
}

// printResult renders the grid with placed letters highlighted and lists
// any letters that could not be placed.
func printResult(res *solver.Result) {
	letter := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)

	rendered := res.Grid.Render()
	if rendered == "" {
		warn.Println("(no letters placed)")
	} else {
		for _, r := range rendered {
			switch {
			case r >= 'A' && r <= 'Z':
				letter.Print(string(r))
			default:
				fmt.Print(string(r))
			}
		}
	}

	if !res.Unplaced.IsEmpty() {
		warn.Printf("unplaced: %s\n", res.Unplaced.String())
	}
}

func printStats(st solver.Stats, elapsed time.Duration) {
	fmt.Printf("letters %d  words %d  nodes %s  deduped %s  elapsed %s\n",
		st.Letters, st.Words,
		humanize.Comma(int64(st.Nodes)), humanize.Comma(int64(st.Deduped)),
		elapsed.Round(time.Millisecond))
	if st.BudgetExhausted {
		color.Yellow("search budget exhausted; result is best-effort")
	}
	if st.Strategy != "" {
		fmt.Printf("strategy: %s\n", st.Strategy)
	}
}

// renderWords lists the placed words in insertion order, for debug output.
func renderWords(g *grid.Grid) string {
	out := ""
	for i, w := range g.Words() {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}
