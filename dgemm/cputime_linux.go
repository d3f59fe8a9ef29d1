//go:build linux

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

import (
	"time"

	"golang.org/x/sys/unix"
)

// ProcessCPUTime returns the CPU time consumed by all threads of the process,
// read from CLOCK_PROCESS_CPUTIME_ID.
func ProcessCPUTime() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return rusageCPUTime()
	}
	return time.Duration(ts.Nano())
}

// ClockResolution returns the tick of the clock behind ProcessCPUTime.
func ClockResolution() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGetres(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil || ts.Nano() <= 0 {
		return time.Microsecond
	}
	return time.Duration(ts.Nano())
}
