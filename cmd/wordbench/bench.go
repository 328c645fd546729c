package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/ansel1/merry"
	"github.com/g-m-twostay/linkedbst/Sets"
	"github.com/g-m-twostay/linkedbst/Trees"
	"github.com/g-m-twostay/linkedbst/internal/wordlist"
	"github.com/urfave/cli/v2"
)

func cmdRun() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "time a batch of lookups against a list and three tree shapes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "words",
				Usage:    "path to a word list, one word per line",
				Required: true,
				EnvVars:  []string{"WORDBENCH_WORDS"},
			},
			&cli.IntFlag{
				Name:    "queries",
				Usage:   "number of distinct words to look up",
				Value:   10000,
				EnvVars: []string{"WORDBENCH_QUERIES"},
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed, 0 picks one from the clock",
			},
			&cli.BoolFlag{
				Name:  "baselines",
				Usage: "also time library trees and hash maps",
			},
		},
		Action: runBench,
	}
}

type result struct {
	name    string
	found   int
	elapsed time.Duration
}

type namedSet struct {
	name string
	set  Sets.Set[string]
}

func runBench(cctx *cli.Context) error {
	log := configLogger(cctx)

	n := cctx.Int("queries")
	if n < 0 {
		return merry.Errorf("queries must not be negative, got %d", n)
	}
	words, err := wordlist.LoadFile(cctx.String("words"))
	if err != nil {
		return err
	}
	seed := cctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	queries := wordlist.Sample(words, n, rng)
	log.Info("loaded word list", "words", len(words), "queries", len(queries), "seed", seed)

	var results []result

	list := Sets.NewSliceSet[string](len(words))
	for _, w := range words {
		list.Put(w)
	}
	results = append(results, measure(log, "list", list, queries))

	sorted := slices.Clone(words)
	slices.Sort(sorted)
	seqTree := buildTree(log, "sorted insertion", sorted)
	results = append(results, measure(log, "sorted insertion", seqTree, queries))

	rndTree := buildTree(log, "random insertion", wordlist.Shuffled(words, rng))
	results = append(results, measure(log, "random insertion", rndTree, queries))

	start := time.Now()
	rndTree.Rebalance()
	log.Debug("rebalanced tree", "took", time.Since(start), "height", rndTree.Height())
	results = append(results, measure(log, "rebalanced", rndTree, queries))

	if cctx.Bool("baselines") {
		for _, b := range baselineSets() {
			for _, w := range words {
				b.set.Put(w)
			}
			results = append(results, measure(log, b.name, b.set, queries))
		}
	}

	tw := tabwriter.NewWriter(cctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEARCH\tFOUND\tTIME")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.name, r.found, r.elapsed)
	}
	return tw.Flush()
}

func buildTree(log *slog.Logger, name string, words []string) *Trees.LinkedBST[string] {
	start := time.Now()
	tree := Trees.New(words...)
	log.Debug("built tree", "name", name, "took", time.Since(start),
		"height", tree.Height(), "balanced", tree.IsBalanced())
	return tree
}

// measure the time taken to look up every query in s.
func measure(log *slog.Logger, name string, s interface{ Has(string) bool }, queries []string) result {
	r := result{name: name}
	start := time.Now()
	for _, q := range queries {
		if s.Has(q) {
			r.found++
		}
	}
	r.elapsed = time.Since(start)
	log.Info("search done", "name", name, "found", r.found, "took", r.elapsed)
	return r
}

func baselineSets() []namedSet {
	return []namedSet{
		{"google/btree", Sets.NewBTreeSet[string](32)},
		{"GoLLRB", Sets.NewLLRBSet[string]()},
		{"gods treeset", Sets.NewGodsSet[string]()},
		{"haxmap", Sets.NewHaxSet[string]()},
		{"cornelk/hashmap", Sets.NewHashMapSet[string]()},
		{"xsync MapOf", Sets.NewXSyncSet[string]()},
	}
}
