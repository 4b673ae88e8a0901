package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/avl-bench/core"
	"github.com/cosmos/avl-bench/core/metrics"
)

func execute(t *testing.T, reg *prometheus.Registry, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), reg, args...)
}

func executeContext(t *testing.T, ctx context.Context, reg *prometheus.Registry, args ...string) (string, error) {
	t.Helper()
	root := core.RootCommand()
	root.AddCommand(
		treeCommand(reg, metrics.NewMetrics()),
		dotCommand(),
	)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestTreeCommand(t *testing.T) {
	statsFile := filepath.Join(t.TempDir(), "stats.log")
	reg := prometheus.NewRegistry()
	out, err := execute(t, reg,
		"tree", "--log-level", "error", "--versions", "3", "--seed", "5",
		"--verify-interval", "1", "--stats-file", statsFile)
	require.NoError(t, err)
	require.Contains(t, out, "avl/sets")
	require.Contains(t, out, "avl/removes")

	stats, err := os.ReadFile(statsFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(stats)), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[2], "3|3600|"), lines[2])

	count, err := testutil.GatherAndCount(reg, "avl_tree_size", "avl_tree_height", "avl_bench_leaf_count")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestTreeCommandSampleInterval(t *testing.T) {
	for _, interval := range []string{"0", "-1s"} {
		_, err := execute(t, prometheus.NewRegistry(),
			"tree", "--log-level", "error", "--versions", "2", "--sample-interval="+interval)
		require.Error(t, err, interval)
		require.Contains(t, err.Error(), "sample interval")
	}
}

func TestTreeCommandCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := executeContext(t, ctx, prometheus.NewRegistry(),
		"tree", "--log-level", "error", "--versions", "2")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTreeCommandBadProfile(t *testing.T) {
	_, err := execute(t, prometheus.NewRegistry(), "tree", "--log-level", "error", "--profile", "nope")
	require.Error(t, err)
}

func TestDotCommand(t *testing.T) {
	out, err := execute(t, prometheus.NewRegistry(), "dot", "--log-level", "error", "5", "3", "8")
	require.NoError(t, err)
	require.Contains(t, out, "digraph")
	require.Contains(t, out, "K:5 H:1")
	require.Equal(t, 2, strings.Count(out, "->"))

	out, err = execute(t, prometheus.NewRegistry(), "dot", "--log-level", "error", "--random", "50", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "digraph")

	_, err = execute(t, prometheus.NewRegistry(), "dot", "--log-level", "error", "x")
	require.Error(t, err)
}
