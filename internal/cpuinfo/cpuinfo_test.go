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

package cpuinfo

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	info := Detect()
	if info.GOOS != runtime.GOOS || info.GOARCH != runtime.GOARCH {
		t.Errorf("Detect() = %s/%s, want %s/%s", info.GOOS, info.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if info.NumCPU < 1 {
		t.Errorf("NumCPU = %d", info.NumCPU)
	}
	if info.CacheLineSize < 8 {
		t.Errorf("CacheLineSize = %d, want >= 8", info.CacheLineSize)
	}
	t.Logf("vector level %s, cache line %d bytes", info.VectorLevel(), info.CacheLineSize)
}

func TestVectorLevel(t *testing.T) {
	tests := []struct {
		features []Feature
		want     string
	}{
		{nil, "scalar"},
		{[]Feature{{Name: "SSE2", Present: true}, {Name: "AVX2", Present: true}}, "AVX2"},
		{[]Feature{{Name: "AVX2", Present: true}, {Name: "AVX512F", Present: true}}, "AVX512F"},
		{[]Feature{{Name: "AVX512F", Present: false}, {Name: "SSE2", Present: true}}, "SSE2"},
		{[]Feature{{Name: "ASIMD", Present: true}, {Name: "SVE", Present: true}}, "SVE"},
	}
	for _, tt := range tests {
		if got := (Info{Features: tt.features}).VectorLevel(); got != tt.want {
			t.Errorf("VectorLevel(%v) = %s, want %s", tt.features, got, tt.want)
		}
	}
}

func TestDoublesPerCacheLine(t *testing.T) {
	for size, want := range map[int]int{0: 1, 4: 1, 64: 8, 128: 16} {
		if got := (Info{CacheLineSize: size}).DoublesPerCacheLine(); got != want {
			t.Errorf("DoublesPerCacheLine(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestFprint(t *testing.T) {
	info := Info{
		GOOS: "linux", GOARCH: "amd64", NumCPU: 4, CacheLineSize: 64,
		Features: []Feature{{Name: "AVX2", Present: true}, {Name: "FMA", Present: false, Note: "fused multiply-add"}},
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, info); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"GOARCH: amd64",
		"Cache line: 64 bytes (8 float64)",
		"Vector level: AVX2",
		"=== golang.org/x/sys/cpu.X86 ===",
		"HasAVX2:    true",
		"HasFMA:     false (fused multiply-add)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
