package cmd

import (
	"context"
	"fmt"

	"github.com/rybkr/wordsearch/internal/board"
	"github.com/rybkr/wordsearch/internal/render"
	"github.com/rybkr/wordsearch/internal/solver"
	"github.com/rybkr/wordsearch/internal/wordlist"
	"github.com/spf13/cobra"
)

var gridFile string

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve --grid FILE [flags] WORD...",
		Short: "Find words in an existing word search grid",
		Long: `Find words in a word search grid read from a file with one row of
letters per line, and print a colored answer key.

Examples:
  wordsearch solve --grid puzzle.txt cat dog bird
  wordsearch solve --grid puzzle.txt -f animals.txt`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&gridFile, "grid", "g", "", "File holding the grid, one row per line")
	solveCmd.Flags().StringVarP(&wordFile, "file", "f", "", "File to load words from, one per line")
	_ = solveCmd.MarkFlagRequired("grid")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lines, err := wordlist.ReadFile(ctx, gridFile)
	if err != nil {
		return fmt.Errorf("failed to read grid: %w", err)
	}
	rowsUpper, err := wordlist.Normalize(lines)
	if err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}
	g, err := board.NewFromRows(rowsUpper)
	if err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}

	words, err := wordlist.Collect(ctx, args, wordSources()...)
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}

	placements, err := solver.New(g).Solve(words)
	if err != nil {
		return err
	}

	l := render.DefaultLayout()
	l.Margin = 0
	return render.AnswerKey(cmd.OutOrStdout(), g, placements, l)
}
