package main

import (
	"fmt"

	"github.com/g-m-twostay/linkedbst/Trees"
	"github.com/urfave/cli/v2"
)

func cmdShow() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "insert words in the given order and draw the tree",
		ArgsUsage: "<word>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "rebalance",
				Usage: "draw the tree again after rebalancing",
			},
		},
		Action: func(cctx *cli.Context) error {
			log := configLogger(cctx)
			if cctx.Args().Len() == 0 {
				return fmt.Errorf("need at least one word")
			}
			tree := Trees.New(cctx.Args().Slice()...)
			printTree(cctx, tree)
			if cctx.Bool("rebalance") {
				tree.Rebalance()
				log.Debug("rebalanced", "size", tree.Size())
				printTree(cctx, tree)
			}
			return nil
		},
	}
}

func printTree(cctx *cli.Context, tree *Trees.LinkedBST[string]) {
	w := cctx.App.Writer
	fmt.Fprintf(w, "height %d, balanced %v\n", tree.Height(), tree.IsBalanced())
	fmt.Fprint(w, tree.String())
	fmt.Fprintln(w, tree.Diagram())
}
