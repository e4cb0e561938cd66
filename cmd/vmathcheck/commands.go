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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajroetker/go-vmath/hwy"
	"github.com/ajroetker/go-vmath/hwy/contrib/flux"
	"github.com/ajroetker/go-vmath/hwy/contrib/solve"
	"github.com/ajroetker/go-vmath/hwy/contrib/workerpool"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Report is the YAML document written by the sweep command.
type Report struct {
	Target  string   `yaml:"target"`
	Results []Result `yaml:"results"`
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		configPath string
		outPath    string
		names      []string
		samples    int
		seed       uint64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure kernel ULP error over random inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if samples > 0 {
				for i := range cfg.Sweeps {
					cfg.Sweeps[i].Samples = samples
				}
			}
			if err := cfg.selectKernels(names); err != nil {
				return err
			}

			pool := workerpool.New(opts.workers)
			defer pool.Close()
			log.Info().Int("sweeps", len(cfg.Sweeps)).Int("workers", pool.NumWorkers()).
				Str("target", hwy.CurrentName()).Msg("starting sweeps")

			results, err := runSweeps(cmd.Context(), pool, cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create report: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := writeReport(w, Report{Target: hwy.CurrentName(), Results: results}); err != nil {
				return err
			}

			failed := lo.Filter(results, func(r Result, _ int) bool { return r.Failed() })
			for _, r := range failed {
				log.Error().Str("kernel", r.Kernel).Str("precision", r.Precision).
					Float64("max_ulp", r.MaxULP).Float64("bound", r.Bound).
					Float64("worst_input", r.WorstInput).Msg("bound exceeded")
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d sweeps exceeded their bound", len(failed), len(results))
			}
			log.Info().Int("sweeps", len(results)).Msg("sweeps passed")
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML sweep definition (default: every kernel at both precisions)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the YAML report to this file instead of stdout")
	cmd.Flags().StringSliceVar(&names, "kernel", nil, "only sweep these kernels")
	cmd.Flags().IntVar(&samples, "samples", 0, "override the sample count of every sweep")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "override the random seed")
	return cmd
}

func writeReport(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func newLimiterCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "limiter d1 d2",
		Short: "Evaluate slope limiters on a pair of differences",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseFloats(args)
			if err != nil {
				return err
			}
			limiters := flux.Limiters()
			if kind != "" {
				l, err := flux.ParseLimiter(kind)
				if err != nil {
					return err
				}
				limiters = []flux.Limiter{l}
			}
			for _, l := range limiters {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %v\n", l, flux.Limit(l, d[0], d[1]))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "limiter name (default: all)")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var lower, upper float64
	cmd := &cobra.Command{
		Use:   "solve c_n ... c_0",
		Short: "Find a real root of a polynomial of degree 1 to 3 in [lo, hi]",
		Long: "Coefficients are given highest degree first. Use -- before the\n" +
			"coefficients when the first one is negative.",
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloats(args)
			if err != nil {
				return err
			}
			iv := solve.Interval[float64]{Lo: lower, Hi: upper}
			var root float64
			switch len(c) {
			case 2:
				root = solve.Linear(c[0], c[1])
			case 3:
				root = solve.Quadratic(c[0], c[1], c[2], iv)
			default:
				root = solve.Cubic(c[0], c[1], c[2], c[3], iv)
			}
			if !iv.Contains(root) {
				log.Warn().Float64("root", root).Msg("root lies outside the interval")
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
	unbounded := solve.Unbounded[float64]()
	cmd.Flags().Float64Var(&lower, "lo", unbounded.Lo, "interval lower bound")
	cmd.Flags().Float64Var(&upper, "hi", unbounded.Hi, "interval upper bound")
	return cmd
}

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List kernels and their default sweep domains",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range kernelNames() {
				k := kernels[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s [%g, %g]\n", name, k.lo, k.hi)
			}
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch target and lane widths",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "target:        %s\n", hwy.CurrentName())
			fmt.Fprintf(w, "width (bytes): %d\n", hwy.CurrentWidth())
			fmt.Fprintf(w, "lanes float32: %d\n", hwy.MaxLanes[float32]())
			fmt.Fprintf(w, "lanes float64: %d\n", hwy.MaxLanes[float64]())
			fmt.Fprintf(w, "real bits:     %d\n", hwy.RealBits)
			fmt.Fprintf(w, "HWY_NO_SIMD:   %t\n", hwy.NoSimdEnv())
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
