package generator

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures puzzle generation behavior.
type Options struct {
	Rows         int           // Rows in the grid
	Cols         int           // Columns in the grid
	MaxAttempts  int           // MaxAttempts bounds how many fresh builds Generate tries
	Timeout      time.Duration // Timeout limits total generation time (0 = no limit)
	Seed         int64         // Seed for reproducible puzzles (0 = random)
	EnsureUnique bool          // EnsureUnique rejects filled grids where a word occurs more than once
	// Logger receives per-attempt diagnostics. nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// DefaultOptions returns standard generator options for a rows×cols grid.
func DefaultOptions(rows, cols int) *Options {
	return &Options{
		Rows:         rows,
		Cols:         cols,
		MaxAttempts:  DefaultMaxAttempts,
		Timeout:      0,
		Seed:         0,
		EnsureUnique: false,
		Logger:       nil, // nil → logrus.StandardLogger() inside New
	}
}
