//go:build windows

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

	"golang.org/x/sys/windows"
)

// ProcessCPUTime returns the user plus kernel CPU time of the process as
// reported by GetProcessTimes.
func ProcessCPUTime() time.Duration {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return time.Since(processStart)
	}
	return filetimeDuration(kernel) + filetimeDuration(user)
}

// ClockResolution returns the tick of the clock behind ProcessCPUTime.
// The counters are kept in 100ns units but only advance on the scheduler
// tick.
func ClockResolution() time.Duration {
	return 15625 * time.Microsecond
}

func filetimeDuration(ft windows.Filetime) time.Duration {
	ticks := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	return time.Duration(ticks) * 100
}
