package generator

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/rybkr/wordsearch/internal/board"
	"github.com/rybkr/wordsearch/internal/solver"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxAttempts = 1
	Alphabet           = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrPlacementExhausted = errors.New("no valid placement for word")
	ErrGenerationFailed   = errors.New("failed to generate puzzle")
	ErrNotUnique          = errors.New("word does not occur exactly once")
)

// PlacementError reports the word that blocked a build.
// It wraps ErrPlacementExhausted.
type PlacementError struct {
	Word string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v: %q", ErrPlacementExhausted, e.Word)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementExhausted
}

// Puzzle is the result of a successful build.
type Puzzle struct {
	Grid *board.Grid
	// Words holds the input words in their original order.
	Words []string
	// Placements holds one entry per word in the order they were placed
	// (longest first).
	Placements []board.Placement
}

// Generator creates word search puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
	log     logrus.FieldLogger
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(0, 0)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return NewWithRand(options, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a generator that draws every random choice from rng.
// Tests pass a fixed-seed source to pin down placement order.
func NewWithRand(options *Options, rng *rand.Rand) *Generator {
	if options == nil {
		options = DefaultOptions(0, 0)
	}

	log := options.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Generator{
		options: options,
		rng:     rng,
		log:     log,
	}
}

// Build makes one attempt at placing every word into a fresh grid.
//
// Words are placed longest first; ties keep their input order. The first
// word with no valid placement stops the build and is reported through a
// *PlacementError; words after it are never tried and nothing already
// placed is undone. Words must already be case-normalized, since letters
// are compared exactly.
//
// The returned grid is not filled.
func (g *Generator) Build(words []string) (*Puzzle, error) {
	grid, err := board.New(g.options.Rows, g.options.Cols)
	if err != nil {
		return nil, err
	}

	ordered := slices.Clone(words)
	slices.SortStableFunc(ordered, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	placements := make([]board.Placement, 0, len(ordered))
	for _, word := range ordered {
		p, ok := g.Insert(grid, word)
		if !ok {
			return nil, &PlacementError{Word: word}
		}
		placements = append(placements, p)
	}

	return &Puzzle{
		Grid:       grid,
		Words:      slices.Clone(words),
		Placements: placements,
	}, nil
}

// Insert writes word at the first valid placement found by scanning
// shuffled rows, then shuffled columns, then shuffled directions.
// Every (row, col, direction) triple is tried before giving up, so false
// means the word fits nowhere; the grid is left untouched in that case.
func (g *Generator) Insert(grid *board.Grid, word string) (board.Placement, bool) {
	rows := g.rng.Perm(grid.Rows())
	cols := g.rng.Perm(grid.Cols())
	dirs := g.rng.Perm(board.DirectionCount)

	for _, row := range rows {
		for _, col := range cols {
			for _, d := range dirs {
				dir := board.Direction(d)
				if grid.Fits(word, row, col, dir) {
					grid.Place(word, row, col, dir)
					return board.Placement{Word: word, Row: row, Col: col, Direction: dir}, true
				}
			}
		}
	}

	return board.Placement{}, false
}

// Fill replaces every Blank cell with a random letter from Alphabet.
// Letters already in the grid are left alone.
func (g *Generator) Fill(grid *board.Grid) {
	Fill(grid, g.rng)
}

// Fill replaces every Blank cell of grid with a letter drawn uniformly from
// Alphabet using rng. It must only be called on a successfully built grid.
func Fill(grid *board.Grid, rng *rand.Rand) {
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			if grid.Get(row, col) == board.Blank {
				grid.Set(row, col, Alphabet[rng.Intn(len(Alphabet))])
			}
		}
	}
}

// Generate builds and fills a puzzle, retrying with a fresh grid up to
// MaxAttempts times. A failed build is never filled.
// Returns an error wrapping ErrGenerationFailed and the last attempt's
// failure if no attempt succeeds.
func (g *Generator) Generate(ctx context.Context, words []string) (*Puzzle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if g.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.Timeout)
		defer cancel()
	}

	attempts := max(g.options.MaxAttempts, 1)
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, attempt-1, lastErr)
		}

		puzzle, err := g.Build(words)
		if err != nil {
			var pe *PlacementError
			if !errors.As(err, &pe) {
				return nil, err
			}
			g.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"word":    pe.Word,
				"rows":    g.options.Rows,
				"cols":    g.options.Cols,
			}).Debug("word could not be placed")
			lastErr = err
			continue
		}

		g.Fill(puzzle.Grid)

		if g.options.EnsureUnique {
			if err := checkUnique(puzzle); err != nil {
				g.log.WithFields(logrus.Fields{
					"attempt": attempt,
				}).WithError(err).Debug("filled grid rejected")
				lastErr = err
				continue
			}
		}

		g.log.WithFields(logrus.Fields{
			"attempt": attempt,
			"words":   len(words),
		}).Debug("puzzle generated")
		return puzzle, nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, attempts, lastErr)
}

// checkUnique verifies each word can be found in exactly one place.
func checkUnique(p *Puzzle) error {
	s := solver.New(p.Grid)
	for _, word := range p.Words {
		if n := len(s.Find(word)); n != 1 {
			return fmt.Errorf("%w: %q found %d times", ErrNotUnique, word, n)
		}
	}
	return nil
}

// FailedWord extracts the blocking word from an error returned by Build or
// Generate.
func FailedWord(err error) (string, bool) {
	var pe *PlacementError
	if errors.As(err, &pe) {
		return pe.Word, true
	}
	return "", false
}
