package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/avl-bench/avl"
)

func dotCommand() *cobra.Command {
	var (
		random int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "dot [keys...]",
		Short: "insert integer keys into a tree and print it as a graphviz digraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]int, 0, len(args)+random)
			for _, arg := range args {
				k, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid key %q: %w", arg, err)
				}
				keys = append(keys, k)
			}
			r := rand.New(rand.NewSource(seed))
			for i := 0; i < random; i++ {
				keys = append(keys, r.Intn(10*random))
			}

			tree := avl.New[int, int]()
			for i, k := range keys {
				tree.Insert(k, i)
			}
			if err := tree.Verify(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tree.DotGraph())
			return err
		},
	}
	cmd.Flags().IntVar(&random, "random", 0, "also insert this many pseudo random keys")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for --random")

	return cmd
}
