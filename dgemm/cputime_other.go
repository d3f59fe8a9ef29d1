//go:build !unix && !windows

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

// ProcessCPUTime falls back to monotonic wall-clock time since start on
// platforms without a process CPU clock.
func ProcessCPUTime() time.Duration {
	return time.Since(processStart)
}

// ClockResolution returns the tick of the clock behind ProcessCPUTime.
func ClockResolution() time.Duration {
	return time.Microsecond
}
