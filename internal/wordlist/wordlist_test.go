package wordlist

import (
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	words, err := Load(strings.NewReader("Apple\n  banana \n\nCHERRY\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, words)

	words, err = Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("b\na\n"), 0o644))
	words, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, words)

	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err = LoadFile(missing)
	require.Error(t, err)
	assert.Equal(t, missing, merry.Value(err, "path"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	words := []string{"a", "b", "c", "d", "e"}
	s := Sample(words, 3, rng)
	assert.Len(t, s, 3)
	seen := map[string]bool{}
	for _, w := range s {
		assert.Contains(t, words, w)
		assert.False(t, seen[w], "picked %s twice", w)
		seen[w] = true
	}

	all := Sample(words, 10, rng)
	slices.Sort(all)
	assert.Equal(t, words, all)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, words)

	assert.Empty(t, Sample(words, 0, rng))
	assert.Empty(t, Sample(words, -1, rng))
	assert.Empty(t, Sample(nil, 3, rng))
}

func TestShuffled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	words := []string{"a", "b", "c", "d", "e"}
	s := Shuffled(words, rng)
	assert.ElementsMatch(t, words, s)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, words)
}
