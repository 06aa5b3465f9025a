package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rybkr/wordsearch/internal/generator"
	"github.com/rybkr/wordsearch/internal/render"
	"github.com/rybkr/wordsearch/internal/wordlist"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	numPuzzles int
	rows       int
	cols       int
	tries      int
	seed       int64
	unique     bool
	timeout    time.Duration
	layout     = render.DefaultLayout()
	wordFile   string
	bqSource   wordlist.BigQuerySource
	answers    bool
	outputFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen [flags] WORD...",
		Short: "Generate word search puzzles",
		Long: `Generate one or more word search puzzles hiding the given words.

Examples:
  wordsearch gen -r 10 -c 10 cat dog bird
  wordsearch gen -r 12 -c 12 -t 20 -f animals.txt --answers
  wordsearch gen -r 15 -c 15 -n 5 -f words.txt -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().IntVarP(&rows, "rows", "r", 0, "Number of rows")
	genCmd.Flags().IntVarP(&cols, "cols", "c", 0, "Number of columns")
	genCmd.Flags().IntVarP(&tries, "tries", "t", generator.DefaultMaxAttempts, "Max number of attempts to make each puzzle")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible puzzles (0 = time based)")
	genCmd.Flags().BoolVar(&unique, "unique", false, "Reject puzzles where a word can be found more than once")
	genCmd.Flags().DurationVar(&timeout, "timeout", 0, "Generation timeout per puzzle (0 = none)")
	genCmd.Flags().IntVarP(&layout.Margin, "margin", "m", layout.Margin, "Left margin for the puzzle")
	genCmd.Flags().IntVarP(&layout.WordWidth, "word-width", "w", layout.WordWidth, "Width of each word list column")
	genCmd.Flags().IntVar(&layout.WordColumns, "word-cols", layout.WordColumns, "Number of columns in the word list")
	genCmd.Flags().StringVarP(&wordFile, "file", "f", "", "File to load words from, one per line")
	genCmd.Flags().StringVar(&bqSource.ProjectID, "bq-project", "", "BigQuery project to load words from")
	genCmd.Flags().StringVar(&bqSource.Table, "bq-table", "", "BigQuery table (project.dataset.table) with a word column")
	genCmd.Flags().StringVar(&bqSource.Scope, "bq-scope", "", "Only load BigQuery rows with this scope")
	genCmd.Flags().BoolVar(&answers, "answers", false, "Print a colored answer key after each puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")

	_ = genCmd.MarkFlagRequired("rows")
	_ = genCmd.MarkFlagRequired("cols")

	rootCmd.AddCommand(genCmd)
}

// wordSources returns the configured non-argument word sources.
func wordSources() []wordlist.Source {
	var sources []wordlist.Source
	if wordFile != "" {
		sources = append(sources, wordlist.FileSource{Path: wordFile})
	}
	if bqSource.Table != "" {
		sources = append(sources, bqSource)
	}
	return sources
}

func runGen(cmd *cobra.Command, args []string) error {
	if numPuzzles < 1 {
		return fmt.Errorf("number of puzzles must be at least 1, got %d", numPuzzles)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	words, err := wordlist.Collect(ctx, args, wordSources()...)
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}
	logrus.WithField("words", len(words)).Info("word list loaded")

	opts := generator.DefaultOptions(rows, cols)
	opts.MaxAttempts = tries
	opts.Seed = seed
	opts.EnsureUnique = unique
	opts.Timeout = timeout
	gen := generator.New(opts)

	var pages []render.Page
	outputHTML := outputFile != ""
	out := cmd.OutOrStdout()

	for i := 0; i < numPuzzles; i++ {
		puzzle, err := gen.Generate(ctx, words)
		if err != nil {
			if word, ok := generator.FailedWord(err); ok {
				return fmt.Errorf("unable to add word %s after %d attempts: %w", word, max(tries, 1), err)
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("generation timed out: %w", err)
			}
			return fmt.Errorf("generation failed: %w", err)
		}

		if outputHTML {
			pages = append(pages, render.Page{
				Grid:       puzzle.Grid,
				Words:      puzzle.Words,
				Placements: puzzle.Placements,
			})
			continue
		}

		if numPuzzles > 1 {
			fmt.Fprintf(out, "Puzzle #%d:\n", i+1)
		}
		fmt.Fprintln(out)
		if err := render.Puzzle(out, puzzle.Grid, puzzle.Words, layout); err != nil {
			return err
		}
		fmt.Fprintln(out)

		if answers {
			if err := render.AnswerKey(out, puzzle.Grid, puzzle.Placements, layout); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
	}

	if outputHTML {
		filename := outputFile
		if strings.Contains(filename, "*") {
			filename = strings.ReplaceAll(filename, "*", "puzzles")
		}

		// Ensure .html extension
		if filepath.Ext(filename) != ".html" {
			filename = filename + ".html"
		}

		if err := writeHTML(filename, pages); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Fprintf(out, "Generated %d puzzle(s) in %s\n", numPuzzles, filename)
	}

	return nil
}

func writeHTML(filename string, pages []render.Page) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()
	return render.HTML(file, pages)
}
