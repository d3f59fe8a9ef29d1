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

// Package cpuinfo reports the host CPU features that bear on matrix kernel
// performance: vector extensions and cache line size.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Feature is one CPU capability flag.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Info describes the host.
type Info struct {
	GOOS          string
	GOARCH        string
	NumCPU        int
	CacheLineSize int // Bytes, as padded by golang.org/x/sys/cpu.CacheLinePad
	Features      []Feature
}

// Detect reads the host description from the Go runtime and x/sys/cpu.
func Detect() Info {
	info := Info{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		NumCPU:        runtime.NumCPU(),
		CacheLineSize: int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}
	switch runtime.GOARCH {
	case "arm64":
		info.Features = arm64Features()
	case "amd64":
		info.Features = amd64Features()
	}
	return info
}

// VectorLevel returns the widest vector extension present, or "scalar".
func (i Info) VectorLevel() string {
	for _, name := range []string{"AVX512F", "AVX2", "SVE2", "SVE", "ASIMD", "SSE2"} {
		if i.Has(name) {
			return name
		}
	}
	return "scalar"
}

// Has reports whether the named feature is present.
func (i Info) Has(name string) bool {
	for _, f := range i.Features {
		if f.Name == name {
			return f.Present
		}
	}
	return false
}

// DoublesPerCacheLine returns how many float64 values share one cache line.
func (i Info) DoublesPerCacheLine() int {
	if i.CacheLineSize <= 0 {
		return 1
	}
	return max(1, i.CacheLineSize/8)
}

// Fprint writes a human-readable description of info to w.
func Fprint(w io.Writer, info Info) error {
	if _, err := fmt.Fprintf(w, "GOOS: %s\nGOARCH: %s\nNumCPU: %d\n", info.GOOS, info.GOARCH, info.NumCPU); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Cache line: %d bytes (%d float64)\nVector level: %s\n",
		info.CacheLineSize, info.DoublesPerCacheLine(), info.VectorLevel()); err != nil {
		return err
	}
	if len(info.Features) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n=== golang.org/x/sys/cpu.%s ===\n", archStruct(info.GOARCH)); err != nil {
		return err
	}
	for _, f := range info.Features {
		line := fmt.Sprintf("  Has%-8s %v", f.Name+":", f.Present)
		if f.Note != "" {
			line += " (" + f.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func archStruct(goarch string) string {
	if goarch == "amd64" {
		return "X86"
	}
	return "ARM64"
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FP", cpu.ARM64.HasFP, "Floating point"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"SVE2", cpu.ARM64.HasSVE2, ""},
		{"ATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, ""},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"SSE42", cpu.X86.HasSSE42, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, "fused multiply-add"},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
		{"AVX512BW", cpu.X86.HasAVX512BW, ""},
		{"AVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}
