package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/cosmos/avl-bench/core/metrics"
)

type TreeContext struct {
	context.Context

	Log            zerolog.Logger
	Generators     []ChangesetGenerator
	VersionLimit   int64
	VerifyInterval int64

	MetricLeafCount   prometheus.Counter
	MetricTreeSize    prometheus.Gauge
	MetricsTreeHeight prometheus.Gauge
	Series            *metrics.Metrics

	// StatsLog receives one "version|size|height" line per committed version.
	StatsLog io.Writer

	seriesSize    *metrics.Gauge
	seriesHeight  *metrics.Gauge
	seriesLeaves  *metrics.Counter
	versionLeaves int64
}

// BuildTree replays the generated changesets into multiTree, version by
// version, until the generators are exhausted or VersionLimit is passed.
func (c *TreeContext) BuildTree(multiTree MultiTree) error {
	itr, err := NewChangesetIterators(c.Generators)
	if err != nil {
		return err
	}

	var sets, removes *metrics.Counter
	if c.Series != nil {
		sets = c.Series.NewCounter("avl/sets")
		removes = c.Series.NewCounter("avl/removes")
		c.seriesLeaves = c.Series.NewCounter("avl/committed_leaves")
		c.seriesSize = c.Series.NewGauge("avl/size")
		c.seriesHeight = c.Series.NewGauge("avl/height")
	}
	c.versionLeaves = 0

	var (
		cnt     int64
		version int64
		since   = time.Now()
		start   = since
	)
	for ; itr.Valid(); err = itr.Next() {
		if err != nil {
			return err
		}
		n := itr.GetChange()
		if n.Version < version {
			return fmt.Errorf("expected version >= %d; got %d", version, n.Version)
		}
		if n.Version > version {
			if version > 0 {
				if err := c.commit(multiTree, version); err != nil {
					return err
				}
			}
			version = n.Version
			if c.VersionLimit > 0 && version > c.VersionLimit {
				c.Log.Info().Int64("version_limit", c.VersionLimit).Msg("version limit reached")
				c.logSummary(cnt, start)
				return nil
			}
			if c.Context != nil {
				if err := c.Context.Err(); err != nil {
					return err
				}
			}
		}

		cnt++
		c.versionLeaves++
		if cnt%100_000 == 0 {
			c.Log.Info().Msgf("processed %s leaves in %s; %s leaves/s; version=%d",
				humanize.Comma(cnt),
				time.Since(since),
				humanize.Comma(int64(100_000/time.Since(since).Seconds())),
				version)
			since = time.Now()
		}
		if c.MetricLeafCount != nil {
			c.MetricLeafCount.Inc()
		}

		storeTree, err := multiTree.GetTree(n.StoreKey)
		if err != nil {
			return err
		}
		if !n.Delete {
			if _, err := storeTree.Set(n.Key, n.Value); err != nil {
				return err
			}
			if sets != nil {
				sets.Inc()
			}
		} else {
			_, ok, err := storeTree.Remove(n.Key)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to remove key %x; version %d", n.Key, n.Version)
			}
			if removes != nil {
				removes.Inc()
			}
		}
	}
	if err != nil {
		return err
	}

	if version > 0 {
		if err := c.commit(multiTree, version); err != nil {
			return err
		}
	}
	c.logSummary(cnt, start)
	return nil
}

// commit closes a version: it publishes size and height, checks the tree
// invariants every VerifyInterval versions and appends to the stats log.
func (c *TreeContext) commit(multiTree MultiTree, version int64) error {
	size, height := multiTree.Size(), multiTree.Height()
	if c.MetricTreeSize != nil {
		c.MetricTreeSize.Set(float64(size))
	}
	if c.MetricsTreeHeight != nil {
		c.MetricsTreeHeight.Set(float64(height))
	}
	if c.Series != nil {
		c.seriesSize.Set(size)
		c.seriesHeight.Set(int64(height))
		c.seriesLeaves.Add(c.versionLeaves)
	}
	c.versionLeaves = 0

	if c.VerifyInterval > 0 && version%c.VerifyInterval == 0 {
		if err := multiTree.Verify(); err != nil {
			return fmt.Errorf("version %d: %w", version, err)
		}
		c.Log.Debug().Int64("version", version).Msg("verified tree invariants")
	}

	if c.StatsLog != nil {
		if _, err := fmt.Fprintf(c.StatsLog, "%d|%d|%d\n", version, size, height); err != nil {
			return err
		}
	}

	c.Log.Debug().
		Int64("version", version).
		Str("size", humanize.Comma(size)).
		Int8("height", height).
		Msg("committed version")
	return nil
}

func (c *TreeContext) logSummary(cnt int64, start time.Time) {
	elapsed := time.Since(start)
	c.Log.Info().
		Str("leaves", humanize.Comma(cnt)).
		Dur("elapsed", elapsed).
		Str("leaves_per_sec", humanize.Comma(int64(float64(cnt)/elapsed.Seconds()))).
		Msg("build complete")
}
