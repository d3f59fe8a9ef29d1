// Copyright 2025 oevm-lb3 Authors
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

package dgemm

import "math/rand/v2"

// randomSpan is the number of distinct fill values; each value is an integer
// in [0, randomSpan) scaled by randomScale, giving [0, 1000) in steps of 0.01.
const (
	randomSpan  = 100000
	randomScale = 100.0
)

// NewRand returns a PCG-backed source seeded with seed. Pass the same source
// to every fill so that successive matrices continue one sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FillRandom overwrites every element with a value in [0, 1000) at a
// resolution of 0.01, consuming rng.
func (m *Matrix) FillRandom(rng *rand.Rand) {
	m.mustLive()
	for i := range m.data {
		m.data[i] = float64(rng.IntN(randomSpan)) / randomScale
	}
}
