// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"cmp"
	"math/rand"
	"runtime"
	"time"

	"github.com/ajwerner/treemap"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const progressInterval = 100_000

type benchParams struct {
	N          int
	Order      string
	RemoveFrac float64
	Seed       int64
}

type benchResult struct {
	Inserted int
	Removed  int
	Len      int
	Height   int
	Duration time.Duration
}

// benchContext carries the logger and metrics of a bench run.
type benchContext struct {
	Log zerolog.Logger

	MetricOps        *prometheus.CounterVec
	MetricTreeSize   prometheus.Gauge
	MetricTreeHeight prometheus.Gauge
}

func newBenchContext(log zerolog.Logger, reg prometheus.Registerer) *benchContext {
	c := &benchContext{
		Log: log,
		MetricOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treemap",
			Name:      "ops_total",
			Help:      "Number of map operations performed, by operation.",
		}, []string{"op"}),
		MetricTreeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "treemap",
			Name:      "size",
			Help:      "Number of entries in the map.",
		}),
		MetricTreeHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "treemap",
			Name:      "height",
			Help:      "Height of the tree.",
		}),
	}
	reg.MustRegister(c.MetricOps, c.MetricTreeSize, c.MetricTreeHeight)
	return c
}

func newBenchCmd(opts *rootOptions) *cobra.Command {
	var p benchParams
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Inserts, reads back and removes integer keys, reporting throughput and tree shape.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			c := newBenchContext(opts.log, reg)
			if _, err := c.run(p); err != nil {
				return err
			}
			return c.logMetrics(reg)
		},
	}
	cmd.Flags().IntVar(&p.N, "n", 10_000, "Number of keys to insert.")
	cmd.Flags().StringVar(&p.Order, "order", "random", "Insertion order (seq|random). Sequential order degrades the tree to a list.")
	cmd.Flags().Float64Var(&p.RemoveFrac, "remove-frac", 0.5, "Fraction of keys to remove after insertion.")
	cmd.Flags().Int64Var(&p.Seed, "seed", 0, "Seed for key order and removal choice.")
	return cmd
}

func (p benchParams) keys(rng *rand.Rand) ([]int, error) {
	switch p.Order {
	case "seq":
		keys := make([]int, p.N)
		for i := range keys {
			keys[i] = i
		}
		return keys, nil
	case "random":
		return rng.Perm(p.N), nil
	default:
		return nil, errors.Newf("unknown order %q", p.Order)
	}
}

func (c *benchContext) run(p benchParams) (res benchResult, err error) {
	if p.N < 0 {
		return res, errors.Newf("n must not be negative, got %d", p.N)
	}
	if p.RemoveFrac < 0 || p.RemoveFrac > 1 {
		return res, errors.Newf("remove-frac must be in [0, 1], got %v", p.RemoveFrac)
	}
	rng := rand.New(rand.NewSource(p.Seed))
	keys, err := p.keys(rng)
	if err != nil {
		return res, err
	}

	m := treemap.New[int, int](cmp.Compare[int])
	start := time.Now()
	c.phase("place", keys, func(k int) {
		if !m.Place(k, k) {
			res.Inserted++
		}
	})
	c.phase("get", keys, func(k int) {
		if v, ok := m.Get(k); !ok || v != k {
			err = errors.AssertionFailedf("key %d: got %d, %t", k, v, ok)
		}
	})
	if err != nil {
		return res, err
	}
	toRemove := keys[:int(float64(len(keys))*p.RemoveFrac)]
	rng.Shuffle(len(toRemove), func(i, j int) { toRemove[i], toRemove[j] = toRemove[j], toRemove[i] })
	c.phase("remove", toRemove, func(k int) {
		if m.Remove(k) {
			res.Removed++
		}
	})
	res.Duration = time.Since(start)

	if err := m.Verify(); err != nil {
		return res, errors.Wrap(err, "verifying map")
	}
	res.Len = m.Len()
	res.Height = m.Height()
	c.MetricTreeSize.Set(float64(res.Len))
	c.MetricTreeHeight.Set(float64(res.Height))

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	var opsPerSec float64
	if secs := res.Duration.Seconds(); secs > 0 {
		opsPerSec = float64(2*len(keys)+len(toRemove)) / secs
	}
	c.Log.Info().
		Str("order", p.Order).
		Str("len", humanize.Comma(int64(res.Len))).
		Int("height", res.Height).
		Dur("duration", res.Duration).
		Str("ops_per_sec", humanize.Comma(int64(opsPerSec))).
		Str("mem_allocs", humanize.Bytes(memStats.Alloc)).
		Str("mem_sys", humanize.Bytes(memStats.Sys)).
		Msg("bench complete")
	return res, nil
}

func (c *benchContext) phase(op string, keys []int, f func(int)) {
	counter := c.MetricOps.WithLabelValues(op)
	since := time.Now()
	for i, k := range keys {
		f(k)
		counter.Inc()
		if (i+1)%progressInterval == 0 {
			c.Log.Info().Msgf("%s: processed %s keys in %s; %s keys/s",
				op,
				humanize.Comma(int64(i+1)),
				time.Since(since),
				humanize.Comma(int64(progressInterval/time.Since(since).Seconds())))
			since = time.Now()
		}
	}
	c.Log.Debug().Str("op", op).Int("count", len(keys)).Msg("phase done")
}

// logMetrics logs the current value of every metric gathered from g.
func (c *benchContext) logMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev := c.Log.Info().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				ev = ev.Float64("value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				ev = ev.Float64("value", m.GetGauge().GetValue())
			}
			ev.Msg("metric")
		}
	}
	return nil
}
