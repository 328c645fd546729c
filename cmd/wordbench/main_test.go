package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run(append([]string{"wordbench"}, args...)))
	return out.String()
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	words := []string{"pear", "Apple", "fig", "kiwi", "lime", "plum", "date", "grape"}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")), 0o644))

	out := runApp(t, "run", "--words", path, "--queries", "5", "--seed", "7", "--baselines")
	for _, name := range []string{"list", "sorted insertion", "random insertion", "rebalanced", "google/btree", "GoLLRB", "gods treeset", "haxmap", "cornelk/hashmap", "xsync MapOf"} {
		assert.Contains(t, out, name)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	found := regexp.MustCompile(`\s{2,}5\s{2,}`)
	for _, l := range lines[1:] {
		assert.Regexp(t, found, l)
	}
}

func TestRun_MissingFile(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run([]string{"wordbench", "run", "--words", filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestRun_NegativeQueries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run([]string{"wordbench", "run", "--words", path, "--queries", "-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
	assert.Empty(t, out.String())

	t.Setenv("WORDBENCH_QUERIES", "-3")
	app = newApp()
	app.Writer = &out
	assert.Error(t, app.Run([]string{"wordbench", "run", "--words", path}))
}

func TestShow(t *testing.T) {
	out := runApp(t, "show", "--rebalance", "a", "b", "c")
	assert.Contains(t, out, "height 2, balanced false")
	assert.Contains(t, out, "| | c\n| b\na\n")
	assert.Contains(t, out, "height 1, balanced true")
	assert.Contains(t, out, "| c\nb\n| a\n")
}
