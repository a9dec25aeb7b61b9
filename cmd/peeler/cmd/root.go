package cmd

import (
	"fmt"

	"github.com/junfengy/peeler/pkg/dict"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	wordlistPath string
	verbosity    int
)

var rootCmd = &cobra.Command{
	Use:   "peeler",
	Short: "Word-tile grid solver CLI",
	Long: `peeler arranges a hand of letter tiles into a connected crossword grid
in which every horizontal and vertical run is a dictionary word.

It can solve a hand from scratch, update an existing grid after a peel,
and rank which letters to swap back into the pool.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&wordlistPath, "dict", "D", "data/sowpods.txt", "path to the word-list file (one uppercase word per line)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=results only, 1=stats, 2=debug)")
}

// loadDictionary loads the shared word list for a command run.
func loadDictionary() (*dict.Trie, error) {
	trie, err := dict.LoadFile(wordlistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	return trie, nil
}
