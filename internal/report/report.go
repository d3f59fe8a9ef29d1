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

// Package report formats benchmark results for the console.
package report

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/golimghostpy/oevm-lb3/dgemm"
	"github.com/golimghostpy/oevm-lb3/dgemm/contrib/search"
)

// Reporter writes result lines to w with locale-aware number formatting.
type Reporter struct {
	w     io.Writer
	p     *message.Printer
	title cases.Caser
}

// New returns a Reporter that formats numbers for tag.
func New(w io.Writer, tag language.Tag) *Reporter {
	return &Reporter{
		w:     w,
		p:     message.NewPrinter(tag),
		title: cases.Title(tag),
	}
}

// GFLOPS returns the rate of an n×n multiply that took secs, counting one
// multiply and one add per inner iteration. It is 0 when secs is not positive.
func GFLOPS(n int, secs float64) float64 {
	if secs <= 0 {
		return 0
	}
	fn := float64(n)
	return 2 * fn * fn * fn / secs / 1e9
}

// Menu writes the interactive kernel prompt.
func (r *Reporter) Menu() {
	var names []string
	for _, v := range dgemm.Variants {
		names = append(names, r.p.Sprintf("%d - %s", int(v), v))
	}
	r.p.Fprintf(r.w, "Select a kernel: %s\n", strings.Join(names, ", "))
}

// BlockSizePrompt asks for the tile edge of the blocked kernel.
func (r *Reporter) BlockSizePrompt() {
	r.p.Fprintf(r.w, "Enter block size: ")
}

// Heading introduces a run of variant v.
func (r *Reporter) Heading(v dgemm.Variant, blockSize int) {
	name := r.title.String(v.String())
	if v.NeedsBlockSize() {
		r.p.Fprintf(r.w, "%s kernel, block size %d:\n", name, blockSize)
		return
	}
	r.p.Fprintf(r.w, "%s kernel:\n", name)
}

// Run reports one timed multiplication of n×n matrices.
func (r *Reporter) Run(n int, secs float64) {
	if rate := GFLOPS(n, secs); rate > 0 {
		r.p.Fprintf(r.w, "Total multiplication time for %dx%d matrices: %.6f s (%.2f GFLOP/s)\n", n, n, secs, rate)
		return
	}
	r.p.Fprintf(r.w, "Total multiplication time for %dx%d matrices: %.6f s\n", n, n, secs)
}

// SearchStart introduces a block-size search on n×n matrices.
func (r *Reporter) SearchStart(n int) {
	r.p.Fprintf(r.w, "Searching for the optimal block size for %dx%d matrices:\n", n, n)
}

// Candidate reports the averaged time of one block size.
func (r *Reporter) Candidate(c search.Candidate) {
	r.p.Fprintf(r.w, "Block size: %d\tAverage time: %.6f s\n", c.BlockSize, c.AvgSeconds)
}

// Optimal reports the search outcome.
func (r *Reporter) Optimal(o search.Outcome) {
	r.p.Fprintf(r.w, "\nOptimal block size: %d (best time: %.6f s)\n", o.BlockSize, o.AvgSeconds)
}
