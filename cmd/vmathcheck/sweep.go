// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	stdmath "math"
	"math/rand/v2"
	"runtime"
	"slices"

	"github.com/ajroetker/go-vmath/hwy/contrib/algo"
	"github.com/ajroetker/go-vmath/hwy/contrib/workerpool"
	"github.com/chewxy/math32"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result summarizes the ULP error of one sweep.
type Result struct {
	Kernel     string  `yaml:"kernel"`
	Precision  string  `yaml:"precision"`
	Lo         float64 `yaml:"lo"`
	Hi         float64 `yaml:"hi"`
	Samples    int     `yaml:"samples"`
	MaxULP     float64 `yaml:"max_ulp"`
	MeanULP    float64 `yaml:"mean_ulp"`
	P99ULP     float64 `yaml:"p99_ulp"`
	WorstInput float64 `yaml:"worst_input"`
	Bound      float64 `yaml:"bound,omitempty"`
}

// Failed reports whether the sweep exceeded its configured bound.
func (r Result) Failed() bool {
	return r.Bound > 0 && !(r.MaxULP <= r.Bound)
}

// runSweeps evaluates every sweep in cfg. Sweeps run concurrently, and each
// one evaluates its inputs with algo.ParallelTransform on pool. Results keep
// the order of cfg.Sweeps.
func runSweeps(ctx context.Context, pool *workerpool.Pool, cfg *Config) ([]Result, error) {
	results := make([]Result, len(cfg.Sweeps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range cfg.Sweeps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
			r, err := runSweep(pool, rng, s)
			if err != nil {
				return fmt.Errorf("sweep %s/%s: %w", s.Kernel, s.Precision, err)
			}
			log.Debug().Str("kernel", s.Kernel).Str("precision", s.Precision).
				Float64("max_ulp", r.MaxULP).Msg("sweep done")
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSweep(pool *workerpool.Pool, rng *rand.Rand, s Sweep) (Result, error) {
	k, ok := kernels[s.Kernel]
	if !ok {
		return Result{}, fmt.Errorf("%w: unknown kernel %q", errInvalidConfig, s.Kernel)
	}
	inputs := make([]float64, s.Samples)
	for i := range inputs {
		inputs[i] = s.Lo + rng.Float64()*(s.Hi-s.Lo)
	}

	var errs []float64
	switch s.Precision {
	case "float32":
		errs = sweep32(pool, k, inputs)
	default:
		errs = sweep64(pool, k, inputs)
	}

	r := Result{
		Kernel:    s.Kernel,
		Precision: s.Precision,
		Lo:        s.Lo,
		Hi:        s.Hi,
		Samples:   s.Samples,
		Bound:     s.MaxULP,
	}
	if len(errs) == 0 {
		return r, nil
	}
	worst := floats.MaxIdx(errs)
	r.MaxULP = errs[worst]
	r.WorstInput = inputs[worst]
	r.MeanULP = stat.Mean(errs, nil)
	sorted := slices.Clone(errs)
	slices.Sort(sorted)
	r.P99ULP = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return r, nil
}

func sweep64(pool *workerpool.Pool, k kernel, inputs []float64) []float64 {
	out := make([]float64, len(inputs))
	algo.ParallelTransform(pool, inputs, out, k.f64)
	errs := make([]float64, len(inputs))
	for i, x := range inputs {
		errs[i] = ulpError64(out[i], k.ref(x))
	}
	return errs
}

func sweep32(pool *workerpool.Pool, k kernel, inputs []float64) []float64 {
	in := make([]float32, len(inputs))
	for i, x := range inputs {
		in[i] = float32(x)
		inputs[i] = float64(in[i])
	}
	out := make([]float32, len(in))
	algo.ParallelTransform(pool, in, out, k.f32)
	errs := make([]float64, len(in))
	for i, x := range in {
		errs[i] = ulpError32(out[i], float32(k.ref(float64(x))))
	}
	return errs
}

// ulpError64 measures |got-want| in units of the spacing above |want|.
// Matching NaNs and matching infinities count as exact.
func ulpError64(got, want float64) float64 {
	switch {
	case got == want, stdmath.IsNaN(got) && stdmath.IsNaN(want):
		return 0
	case stdmath.IsNaN(got) || stdmath.IsNaN(want) || stdmath.IsInf(want, 0) || stdmath.IsInf(got, 0):
		return stdmath.Inf(1)
	}
	a := stdmath.Abs(want)
	ulp := stdmath.Nextafter(a, stdmath.Inf(1)) - a
	return stdmath.Abs(got-want) / ulp
}

func ulpError32(got, want float32) float64 {
	switch {
	case got == want, math32.IsNaN(got) && math32.IsNaN(want):
		return 0
	case math32.IsNaN(got) || math32.IsNaN(want) || math32.IsInf(want, 0) || math32.IsInf(got, 0):
		return stdmath.Inf(1)
	}
	a := math32.Abs(want)
	ulp := math32.Nextafter(a, math32.Inf(1)) - a
	return float64(math32.Abs(got-want)) / float64(ulp)
}
