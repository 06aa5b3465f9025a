package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// genArgs resets every gen flag so earlier tests do not leak into later ones.
func genArgs(extra ...string) []string {
	base := []string{"gen", "-n", "1", "-t", "1", "--seed", "5", "-m", "0", "-f", "", "-o", "", "--answers=false", "--unique=false"}
	return append(base, extra...)
}

func TestGen_SingleRow(t *testing.T) {
	out, err := execute(t, genArgs("-r", "1", "-c", "3", "cat")...)
	if err != nil {
		t.Fatalf("gen failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "C A T") && !strings.Contains(out, "T A C") {
		t.Fatalf("grid row missing from output:\n%s", out)
	}
	if !strings.Contains(out, "CAT") {
		t.Fatalf("word list missing from output:\n%s", out)
	}
}

func TestGen_ReportsFailedWord(t *testing.T) {
	out, err := execute(t, genArgs("-r", "1", "-c", "1", "-t", "2", "cat")...)
	if err == nil {
		t.Fatalf("gen succeeded on a 1x1 grid:\n%s", out)
	}
	if !strings.Contains(err.Error(), "unable to add word CAT after 2 attempts") {
		t.Fatalf("error = %v", err)
	}
}

func TestGen_HTMLOutput(t *testing.T) {
	target := filepath.Join(t.TempDir(), "puzzles")
	out, err := execute(t, genArgs("-r", "6", "-c", "6", "-n", "2", "-o", target, "cat", "dog")...)
	if err != nil {
		t.Fatalf("gen failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(target + ".html")
	if err != nil {
		t.Fatalf("HTML file not written: %v", err)
	}
	if n := strings.Count(string(data), "Word Search #2"); n != 2 {
		t.Fatalf("second puzzle appears %d times, want 2", n)
	}
	if !strings.Contains(out, "Generated 2 puzzle(s)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSolve_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	if err := os.WriteFile(path, []byte("cat\nxox\nxxw\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "solve", "-g", path, "-f", "", "cow", "cat")
	if err != nil {
		t.Fatalf("solve failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "COW") || !strings.Contains(out, "(down-right)") {
		t.Fatalf("answer key missing COW:\n%s", out)
	}

	if _, err := execute(t, "solve", "-g", path, "-f", "", "emu"); err == nil {
		t.Fatal("solve succeeded for a missing word")
	}
}
