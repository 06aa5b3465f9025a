package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rybkr/wordsearch/internal/board"
	"github.com/rybkr/wordsearch/internal/solver"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method, body string) (*httptest.ResponseRecorder, GenerateResponse) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	h := New(logger)

	req := httptest.NewRequest(method, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp GenerateResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestGenerate_OK(t *testing.T) {
	rec, resp := do(t, http.MethodPost, `{"rows": 8, "cols": 8, "words": ["cat", "dog", "emu"], "tries": 5, "seed": 99}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"CAT", "DOG", "EMU"}, resp.Words)
	require.Len(t, resp.Grid, 8)
	assert.Len(t, resp.Placements, 3)

	g, err := board.NewFromRows(resp.Grid)
	require.NoError(t, err)
	s := solver.New(g)
	for _, w := range resp.Words {
		assert.NotEmpty(t, s.Find(w), "word %s missing from grid", w)
	}
}

func TestGenerate_FailedWord(t *testing.T) {
	rec, resp := do(t, http.MethodPost, `{"rows": 2, "cols": 2, "words": ["cat"], "tries": 2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "CAT", resp.FailedWord)
	assert.Empty(t, resp.Grid)
}

func TestGenerate_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"rows":`},
		{"zero rows", `{"rows": 0, "cols": 5, "words": ["cat"]}`},
		{"too large", `{"rows": 500, "cols": 5, "words": ["cat"]}`},
		{"too many tries", `{"rows": 5, "cols": 5, "words": ["cat"], "tries": 1000}`},
		{"bad word", `{"rows": 5, "cols": 5, "words": ["c@t"]}`},
		{"no words", `{"rows": 5, "cols": 5, "words": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := do(t, http.MethodPost, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGenerate_Methods(t *testing.T) {
	rec, _ := do(t, http.MethodOptions, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec, resp := do(t, http.MethodGet, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, resp.Error, "GET")
}
