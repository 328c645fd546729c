// Package wordlist reads line-delimited word lists for bulk-loading trees.
package wordlist

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/ansel1/merry"
)

// Load reads one word per line from r. Words are trimmed and lower-cased;
// blank lines are dropped. The file order is kept.
func Load(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.ToLower(strings.TrimSpace(sc.Text())); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, merry.Prepend(err, "reading word list")
	}
	return words, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, merry.Wrap(err).WithValue("path", path)
	}
	defer f.Close()
	words, err := Load(f)
	if err != nil {
		return nil, merry.WithValue(err, "path", path)
	}
	return words, nil
}

// Sample picks n words from words without picking the same position twice.
// All words are returned, shuffled, when n >= len(words), and none when n <= 0.
// words isn't modified.
func Sample(words []string, n int, rng *rand.Rand) []string {
	idx := rng.Perm(len(words))
	idx = idx[:max(0, min(n, len(idx)))]
	res := make([]string, len(idx))
	for i, j := range idx {
		res[i] = words[j]
	}
	return res
}

// Shuffled returns a shuffled copy of words.
func Shuffled(words []string, rng *rand.Rand) []string {
	res := make([]string, len(words))
	copy(res, words)
	rng.Shuffle(len(res), func(i, j int) {
		res[i], res[j] = res[j], res[i]
	})
	return res
}
