// Package api exposes puzzle generation as a JSON HTTP function.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rybkr/wordsearch/internal/board"
	"github.com/rybkr/wordsearch/internal/generator"
	"github.com/rybkr/wordsearch/internal/wordlist"
	"github.com/sirupsen/logrus"
)

const (
	MaxDimension = 50
	MaxAttempts  = 100
	Timeout      = 10 * time.Second
)

type GenerateRequest struct {
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Words  []string `json:"words"`
	Tries  int      `json:"tries"`
	Seed   int64    `json:"seed"`
	Unique bool     `json:"unique"`
}

type GenerateResponse struct {
	Success    bool              `json:"success"`
	Grid       []string          `json:"grid,omitempty"`
	Words      []string          `json:"words,omitempty"`
	Placements []board.Placement `json:"placements,omitempty"`
	FailedWord string            `json:"failedWord,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Handler serves generation requests.
type Handler struct {
	Log logrus.FieldLogger
}

// New creates a handler logging through log, or the standard logger if nil.
func New(log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{Log: log}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		h.encode(w, GenerateResponse{Error: fmt.Sprintf("method %s not allowed", r.Method)})
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.encode(w, GenerateResponse{Error: fmt.Sprintf("invalid JSON: %v", err)})
		return
	}

	opts, words, err := validate(req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.encode(w, GenerateResponse{Error: err.Error()})
		return
	}
	opts.Logger = h.Log

	puzzle, err := generator.New(opts).Generate(r.Context(), words)
	if err != nil {
		resp := GenerateResponse{Error: err.Error()}
		resp.FailedWord, _ = generator.FailedWord(err)
		h.Log.WithFields(logrus.Fields{
			"rows":       req.Rows,
			"cols":       req.Cols,
			"failedWord": resp.FailedWord,
		}).WithError(err).Info("generation failed")
		w.WriteHeader(http.StatusUnprocessableEntity)
		h.encode(w, resp)
		return
	}

	h.encode(w, GenerateResponse{
		Success:    true,
		Grid:       puzzle.Grid.Lines(),
		Words:      puzzle.Words,
		Placements: puzzle.Placements,
	})
}

func validate(req GenerateRequest) (*generator.Options, []string, error) {
	if req.Rows <= 0 || req.Cols <= 0 {
		return nil, nil, fmt.Errorf("%w: got %dx%d", board.ErrInvalidDimension, req.Rows, req.Cols)
	}
	if req.Rows > MaxDimension || req.Cols > MaxDimension {
		return nil, nil, fmt.Errorf("rows and cols must be at most %d", MaxDimension)
	}
	tries := req.Tries
	if tries <= 0 {
		tries = generator.DefaultMaxAttempts
	}
	if tries > MaxAttempts {
		return nil, nil, fmt.Errorf("tries must be at most %d", MaxAttempts)
	}

	words, err := wordlist.Normalize(req.Words)
	if err != nil {
		return nil, nil, err
	}
	if len(words) == 0 {
		return nil, nil, wordlist.ErrEmptyList
	}

	opts := generator.DefaultOptions(req.Rows, req.Cols)
	opts.MaxAttempts = tries
	opts.Seed = req.Seed
	opts.EnsureUnique = req.Unique
	opts.Timeout = Timeout
	return opts, words, nil
}

func (h *Handler) encode(w http.ResponseWriter, resp GenerateResponse) {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.WithError(err).Warn("failed to write response")
	}
}
