// Package wordlist gathers the words a puzzle hides and normalizes them to
// the uppercase A-Z form the generator expects.
package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrInvalidWord = errors.New("word must contain only letters A-Z")
	ErrEmptyList   = errors.New("word list is empty")
)

// Normalize trims and uppercases each word, dropping blanks.
// Returns ErrInvalidWord for anything outside A-Z.
func Normalize(words []string) ([]string, error) {
	out := make([]string, 0, len(words))
	for _, w := range words {
		word := strings.ToUpper(strings.TrimSpace(w))
		if word == "" {
			continue
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("%w: %q contains %q", ErrInvalidWord, w, r)
			}
		}
		out = append(out, word)
	}
	return out, nil
}

// Read reads one word per line from r. Blank lines and lines starting with
// '#' are skipped. Words are returned as written; call Normalize on them.
func Read(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return words, nil
}

// ReadFile uses Read to load words from path.
func ReadFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(ctx, f)
}

// Source supplies raw words from somewhere outside the command line.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// FileSource reads words from a newline-delimited file.
type FileSource struct {
	Path string
}

func (s FileSource) Words(ctx context.Context) ([]string, error) {
	return ReadFile(ctx, s.Path)
}

// Collect merges args with the words of every source, normalizes the
// result, and drops repeated words keeping the first. Returns ErrEmptyList
// if nothing remains.
func Collect(ctx context.Context, args []string, sources ...Source) ([]string, error) {
	raw := append([]string(nil), args...)
	for _, src := range sources {
		words, err := src.Words(ctx)
		if err != nil {
			return nil, err
		}
		raw = append(raw, words...)
	}

	words, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(words))
	unique := words[:0]
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		unique = append(unique, w)
	}

	if len(unique) == 0 {
		return nil, ErrEmptyList
	}
	return unique, nil
}
