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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const defaultSamples = 1 << 16

var errInvalidConfig = errors.New("invalid sweep config")

// Sweep is one kernel evaluated at one precision over [Lo, Hi].
type Sweep struct {
	Kernel    string  `yaml:"kernel"`
	Precision string  `yaml:"precision"`
	Lo        float64 `yaml:"lo"`
	Hi        float64 `yaml:"hi"`
	Samples   int     `yaml:"samples,omitempty"`
	// MaxULP fails the run when the observed maximum error exceeds it.
	// Zero disables the check.
	MaxULP float64 `yaml:"max_ulp,omitempty"`
}

// Config is the YAML sweep definition.
type Config struct {
	Seed    uint64  `yaml:"seed"`
	Samples int     `yaml:"samples"`
	Sweeps  []Sweep `yaml:"sweeps"`
}

// loadConfig reads a config file. An empty path yields the default config.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		cfg := &Config{}
		return cfg, cfg.normalize()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return parseConfig(f)
}

func parseConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize fills defaults and validates every sweep. With no sweeps listed,
// every kernel is swept at both precisions over its default domain.
func (c *Config) normalize() error {
	if c.Samples <= 0 {
		c.Samples = defaultSamples
	}
	if len(c.Sweeps) == 0 {
		for _, name := range kernelNames() {
			for _, prec := range []string{"float64", "float32"} {
				c.Sweeps = append(c.Sweeps, Sweep{Kernel: name, Precision: prec})
			}
		}
	}
	for i := range c.Sweeps {
		s := &c.Sweeps[i]
		k, ok := kernels[s.Kernel]
		if !ok {
			return fmt.Errorf("%w: sweep %d: unknown kernel %q", errInvalidConfig, i, s.Kernel)
		}
		if s.Precision == "" {
			s.Precision = "float64"
		}
		if !lo.Contains([]string{"float64", "float32"}, s.Precision) {
			return fmt.Errorf("%w: sweep %d: precision %q", errInvalidConfig, i, s.Precision)
		}
		if s.Lo == 0 && s.Hi == 0 {
			s.Lo, s.Hi = k.lo, k.hi
		}
		if !(s.Lo < s.Hi) {
			return fmt.Errorf("%w: sweep %d: empty domain [%v, %v]", errInvalidConfig, i, s.Lo, s.Hi)
		}
		if s.Samples <= 0 {
			s.Samples = c.Samples
		}
	}
	return nil
}

// selectKernels keeps only the sweeps whose kernel is in names. An empty
// list keeps everything.
func (c *Config) selectKernels(names []string) error {
	if len(names) == 0 {
		return nil
	}
	if unknown := lo.Without(names, kernelNames()...); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown kernels %v", errInvalidConfig, unknown)
	}
	c.Sweeps = lo.Filter(c.Sweeps, func(s Sweep, _ int) bool {
		return lo.Contains(names, s.Kernel)
	})
	return nil
}
