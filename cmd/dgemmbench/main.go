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

// Command dgemmbench times dense float64 matrix multiplication with the
// naive, reordered and blocked kernels of package dgemm.
//
// Usage:
//
//	dgemmbench 2048           # naive kernel once on 2048x2048 matrices
//	dgemmbench                # interactive: pick a kernel, run 1000 and 2000
//	dgemmbench search         # find the fastest block size on 2048x2048
//	dgemmbench cpuinfo        # print the CPU features seen by Go
//
// The random inputs come from one generator seeded at start-up from --seed,
// then DGEMM_SEED, then the current time.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultOptions()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
