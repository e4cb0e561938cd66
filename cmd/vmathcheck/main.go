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

// Command vmathcheck measures and inspects the go-vmath kernels.
//
// Usage:
//
//	vmathcheck sweep [--config sweeps.yaml] [--kernel exp,log] [--out report.yaml]
//	vmathcheck limiter [--kind superbee] d1 d2
//	vmathcheck solve [--lo L] [--hi H] -- c3 c2 c1 c0
//	vmathcheck kernels
//	vmathcheck info
//
// The sweep command evaluates kernels over random inputs with the bulk
// transforms and reports ULP error statistics against the standard library
// as YAML.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("vmathcheck failed")
		os.Exit(1)
	}
}
