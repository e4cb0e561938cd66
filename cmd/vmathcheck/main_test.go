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
	"bytes"
	"context"
	"io"
	stdmath "math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ajroetker/go-vmath/hwy/contrib/flux"
	"github.com/ajroetker/go-vmath/hwy/contrib/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, defaultSamples, cfg.Samples)
	assert.Len(t, cfg.Sweeps, 2*len(kernels))
	for _, s := range cfg.Sweeps {
		k := kernels[s.Kernel]
		assert.Equal(t, k.lo, s.Lo, s.Kernel)
		assert.Equal(t, k.hi, s.Hi, s.Kernel)
		assert.Equal(t, defaultSamples, s.Samples)
	}
}

func TestParseConfig(t *testing.T) {
	const doc = `
seed: 7
samples: 512
sweeps:
  - kernel: exp
  - kernel: sin
    precision: float32
    lo: -1
    hi: 1
    samples: 100
    max_ulp: 6
`
	cfg, err := parseConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	require.Len(t, cfg.Sweeps, 2)
	assert.Equal(t, Sweep{Kernel: "exp", Precision: "float64", Lo: -80, Hi: 80, Samples: 512}, cfg.Sweeps[0])
	assert.Equal(t, Sweep{Kernel: "sin", Precision: "float32", Lo: -1, Hi: 1, Samples: 100, MaxULP: 6}, cfg.Sweeps[1])
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown kernel": "sweeps: [{kernel: gamma}]",
		"bad precision":  "sweeps: [{kernel: exp, precision: float16}]",
		"empty domain":   "sweeps: [{kernel: exp, lo: 2, hi: 1}]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseConfig(strings.NewReader(doc))
			require.ErrorIs(t, err, errInvalidConfig)
		})
	}

	_, err := parseConfig(strings.NewReader("bogus: 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestSelectKernels(t *testing.T) {
	cfg, err := parseConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.NoError(t, cfg.selectKernels([]string{"erf", "tan"}))
	require.Len(t, cfg.Sweeps, 4)
	for _, s := range cfg.Sweeps {
		assert.Contains(t, []string{"erf", "tan"}, s.Kernel)
	}
	require.ErrorIs(t, cfg.selectKernels([]string{"gamma"}), errInvalidConfig)
}

func TestULPError(t *testing.T) {
	assert.Zero(t, ulpError64(1, 1))
	assert.Zero(t, ulpError64(stdmath.NaN(), stdmath.NaN()))
	assert.Zero(t, ulpError64(stdmath.Inf(-1), stdmath.Inf(-1)))
	assert.Equal(t, 1.0, ulpError64(stdmath.Nextafter(1, 2), 1))
	assert.Equal(t, 2.0, ulpError64(-3-2*0x1p-51, -3))
	assert.True(t, stdmath.IsInf(ulpError64(1, stdmath.NaN()), 1))
	assert.True(t, stdmath.IsInf(ulpError64(stdmath.MaxFloat64, stdmath.Inf(1)), 1))

	assert.Equal(t, 1.0, ulpError32(1+0x1p-23, 1))
	assert.Zero(t, ulpError32(float32(stdmath.NaN()), float32(stdmath.NaN())))
}

func TestResultFailed(t *testing.T) {
	assert.False(t, Result{MaxULP: 100}.Failed())
	assert.False(t, Result{MaxULP: 2, Bound: 2}.Failed())
	assert.True(t, Result{MaxULP: 3, Bound: 2}.Failed())
	assert.True(t, Result{MaxULP: stdmath.NaN(), Bound: 2}.Failed())
}

func TestRunSweeps(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	cfg := &Config{
		Seed:    1,
		Samples: 2000,
		Sweeps: []Sweep{
			{Kernel: "exp2", Precision: "float64", Lo: -10, Hi: 10},
			{Kernel: "cbrt", Precision: "float32"},
			{Kernel: "cbrt", Precision: "float64"},
		},
	}
	require.NoError(t, cfg.normalize())

	results, err := runSweeps(context.Background(), pool, cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, cfg.Sweeps[i].Kernel, r.Kernel)
		assert.Equal(t, cfg.Sweeps[i].Precision, r.Precision)
		assert.Equal(t, 2000, r.Samples)
		assert.LessOrEqual(t, r.MaxULP, 4.0, "%s/%s worst input %v", r.Kernel, r.Precision, r.WorstInput)
		assert.LessOrEqual(t, r.MeanULP, r.MaxULP)
		assert.LessOrEqual(t, r.P99ULP, r.MaxULP)
		assert.GreaterOrEqual(t, r.WorstInput, r.Lo)
		assert.LessOrEqual(t, r.WorstInput, r.Hi)
	}

	again, err := runSweeps(context.Background(), pool, cfg)
	require.NoError(t, err)
	assert.Equal(t, results, again)
}

func TestRunSweepsCanceled(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()
	cfg := &Config{Sweeps: []Sweep{{Kernel: "exp"}}}
	require.NoError(t, cfg.normalize())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runSweeps(ctx, pool, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--kernel", "cbrt,exp2", "--samples", "256", "--seed", "3", "--workers", "2")
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.Target)
	require.Len(t, report.Results, 4)
	for _, r := range report.Results {
		assert.Equal(t, 256, r.Samples)
		assert.Contains(t, []string{"cbrt", "exp2"}, r.Kernel)
	}

	_, err = execute(t, "sweep", "--kernel", "gamma")
	require.ErrorIs(t, err, errInvalidConfig)
}

func TestSweepCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sweeps.yaml")
	outPath := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("samples: 128\nsweeps:\n  - kernel: atan\n    max_ulp: 1000\n"), 0o644))

	out, err := execute(t, "sweep", "--config", cfgPath, "--out", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var report Report
	require.NoError(t, yaml.Unmarshal(data, &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "atan", report.Results[0].Kernel)
	assert.Equal(t, 1000.0, report.Results[0].Bound)
}

func TestLimiterCommand(t *testing.T) {
	out, err := execute(t, "limiter", "--kind", "minmod", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "minmod", strings.Fields(out)[0])
	assert.Equal(t, "0.5", strings.Fields(out)[1])

	out, err = execute(t, "limiter", "--", "-1", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(flux.Limiters()))

	_, err = execute(t, "limiter", "--kind", "koren", "1", "2")
	require.ErrorIs(t, err, flux.ErrUnknownLimiter)

	_, err = execute(t, "limiter", "1")
	require.Error(t, err)
}

func TestSolveCommand(t *testing.T) {
	parse := func(s string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		require.NoError(t, err)
		return v
	}

	out, err := execute(t, "solve", "--", "1", "-3", "2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, parse(out))

	out, err = execute(t, "solve", "--lo", "0", "--hi", "1.5", "--", "1", "-3", "2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, parse(out))

	out, err = execute(t, "solve", "--", "2", "-4")
	require.NoError(t, err)
	assert.Equal(t, 2.0, parse(out))

	out, err = execute(t, "solve", "--lo", "2.5", "--hi", "3.5", "--", "1", "-6", "11", "-6")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, parse(out), 1e-9)

	_, err = execute(t, "solve", "1")
	require.Error(t, err)
	_, err = execute(t, "solve", "1", "x")
	require.Error(t, err)
}

func TestKernelsAndInfoCommands(t *testing.T) {
	out, err := execute(t, "kernels")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(kernels))
	assert.Contains(t, out, "erfc")

	out, err = execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "target:")
	assert.Contains(t, out, "lanes float64:")

	_, err = execute(t, "info", "--log-level", "loud")
	require.Error(t, err)
}

func TestRunSweepsNearDomainEdges(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	// Edges where the math package's own Asin, Acos and Pow(10, x) are off by
	// many ULP.
	cfg := &Config{
		Seed:    2,
		Samples: 4000,
		Sweeps: []Sweep{
			{Kernel: "acos", Lo: 0.999, Hi: 1},
			{Kernel: "asin", Lo: -1, Hi: -0.999},
			{Kernel: "exp10", Lo: 250, Hi: 300},
		},
	}
	require.NoError(t, cfg.normalize())

	results, err := runSweeps(context.Background(), pool, cfg)
	require.NoError(t, err)
	for _, r := range results {
		assert.LessOrEqual(t, r.MaxULP, 4.0, "%s worst input %v", r.Kernel, r.WorstInput)
	}
	assert.InDelta(t, 0.010167118576555917, acosRef(0.9999483152951494), 2e-18)
}
