package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spf13/cobra"

	"github.com/cosmos/avl-bench/core"
	"github.com/cosmos/avl-bench/core/metrics"
)

func treeCommand(reg prometheus.Registerer, series *metrics.Metrics) *cobra.Command {
	var (
		profile        string
		seed           int64
		versions       int64
		statsFile      string
		sampleInterval time.Duration
	)
	ctx := &core.TreeContext{
		Series: series,
	}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "build AVL trees from generated changesets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sampleInterval <= 0 {
				return fmt.Errorf("sample interval must be positive; got %s", sampleInterval)
			}
			ctx.Context = cmd.Context()
			ctx.Log = core.Logger.With().Str("bench", "avl").Str("profile", profile).Logger()

			gens, err := core.Generators(profile, seed, versions)
			if err != nil {
				return err
			}
			ctx.Generators = gens
			multiTree := core.NewAVLMultiTree(core.StoreKeys(gens)...)

			if statsFile != "" {
				f, err := os.Create(statsFile)
				if err != nil {
					return err
				}
				defer f.Close()
				ctx.StatsLog = f
			}

			labels := map[string]string{"profile": profile}
			factory := promauto.With(reg)
			ctx.MetricTreeSize = factory.NewGauge(prometheus.GaugeOpts{
				Name:        "avl_tree_size",
				Help:        "number of keys over all trees at the last committed version",
				ConstLabels: labels,
			})
			ctx.MetricsTreeHeight = factory.NewGauge(prometheus.GaugeOpts{
				Name:        "avl_tree_height",
				Help:        "height of the tallest tree at the last committed version",
				ConstLabels: labels,
			})
			ctx.MetricLeafCount = factory.NewCounter(prometheus.CounterOpts{
				Name:        "avl_bench_leaf_count",
				Help:        "number of changes replayed into the trees",
				ConstLabels: labels,
			})

			runCtx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				defer close(done)
				series.Run(runCtx, sampleInterval)
			}()

			err = ctx.BuildTree(multiTree)
			cancel()
			<-done
			if err != nil {
				return err
			}

			ctx.Log.Info().
				Int64("size", multiTree.Size()).
				Int8("height", multiTree.Height()).
				Msg("final tree")
			_, err = fmt.Fprint(cmd.OutOrStdout(), series.Print())
			return err
		},
	}
	cmd.Flags().StringVar(&profile, "profile", "small", "changeset profile (small|bank|lockup|osmo)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the data generator")
	cmd.Flags().Int64Var(&versions, "versions", 100, "number of versions to generate")
	cmd.Flags().Int64Var(&ctx.VersionLimit, "version-limit", 0, "stop after this version; 0 replays every version")
	cmd.Flags().Int64Var(&ctx.VerifyInterval, "verify-interval", 0, "check tree invariants every n versions; 0 disables")
	cmd.Flags().StringVar(&statsFile, "stats-file", "", "write a version|size|height line per version to this file")
	cmd.Flags().DurationVar(&sampleInterval, "sample-interval", 10*time.Second, "interval between in-process metric samples")

	return cmd
}
