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

import "time"

var processStart = time.Now()

// Clock returns a cumulative time reading. Only differences between two
// readings are meaningful.
type Clock func() time.Duration

// CPUClock reads ProcessCPUTime.
var CPUClock Clock = ProcessCPUTime

// Measure runs fn once and returns the seconds elapsed on clock between the
// readings taken immediately before and after it.
func Measure(clock Clock, fn func()) float64 {
	start := clock()
	fn()
	end := clock()
	return (end - start).Seconds()
}

// TimeKernel prepares c for variant v and returns the CPU seconds spent in a
// single kernel call. Zeroing c happens outside the measured window.
func TimeKernel(v Variant, a, b, c *Matrix, blockSize int) (float64, error) {
	return TimeKernelWith(CPUClock, v, a, b, c, blockSize)
}

// TimeKernelWith is TimeKernel with an explicit clock.
func TimeKernelWith(clock Clock, v Variant, a, b, c *Matrix, blockSize int) (float64, error) {
	kernel, err := bind(v, a, b, c, blockSize)
	if err != nil {
		return 0, err
	}
	if err := Prepare(v, c); err != nil {
		return 0, err
	}
	return Measure(clock, kernel), nil
}
