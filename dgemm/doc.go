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

// Package dgemm provides dense square float64 matrix multiplication kernels
// that differ only in their memory-access pattern, plus the storage and
// CPU-time measurement needed to compare them.
//
// # Kernels
//
//   - MulNaive - i-j-k triple loop, resets every output cell itself
//   - MulReordered - i-k-j loop order, unit stride over B and C rows
//   - MulBlocked - i-k-j inside T×T×T tiles, boundary tiles clipped
//
// MulReordered and MulBlocked accumulate into C, so C must be zeroed first.
// Multiply and TimeKernel do that for the caller.
//
// # Example Usage
//
//	rng := dgemm.NewRand(42)
//	a, b, c := dgemm.MustNew(512), dgemm.MustNew(512), dgemm.MustNew(512)
//	defer a.Release()
//	defer b.Release()
//	defer c.Release()
//	a.FillRandom(rng)
//	b.FillRandom(rng)
//
//	secs, err := dgemm.TimeKernel(dgemm.VariantBlocked, a, b, c, 64)
//
// # Timing
//
// TimeKernel measures process CPU time, not wall-clock time. Its precision is
// the tick of the host clock, see ClockResolution.
package dgemm
