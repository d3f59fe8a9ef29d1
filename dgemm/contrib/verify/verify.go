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

// Package verify checks a kernel's output against the product computed by
// gonum's BLAS-backed mat.Dense.
package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/golimghostpy/oevm-lb3/dgemm"
)

// DefaultTolerance is the largest accepted relative difference. The kernels
// sum in different orders than BLAS, so exact equality is not expected.
const DefaultTolerance = 1e-9

// ErrMismatch is returned by Check when the output is outside tolerance.
var ErrMismatch = errors.New("verify: result does not match reference product")

// Report describes how far C is from the reference product.
type Report struct {
	MaxAbsDiff float64 // Largest |C[i][j] - ref[i][j]|
	MaxRelDiff float64 // Largest |C[i][j] - ref[i][j]| / max(1, |ref[i][j]|)
	Row, Col   int     // Position of MaxRelDiff
}

// Reference returns a * b computed by gonum.
func Reference(a, b *dgemm.Matrix) (*mat.Dense, error) {
	if a.Size() != b.Size() {
		return nil, fmt.Errorf("%w: A is %d, B is %d", dgemm.ErrSizeMismatch, a.Size(), b.Size())
	}
	n := a.Size()
	// mat.NewDense adopts its slice, so hand it copies.
	da := mat.NewDense(n, n, append([]float64(nil), a.Data()...))
	db := mat.NewDense(n, n, append([]float64(nil), b.Data()...))
	var ref mat.Dense
	ref.Mul(da, db)
	return &ref, nil
}

// Compare measures the difference between c and a * b.
func Compare(a, b, c *dgemm.Matrix) (Report, error) {
	if c.Size() != a.Size() {
		return Report{}, fmt.Errorf("%w: A is %d, C is %d", dgemm.ErrSizeMismatch, a.Size(), c.Size())
	}
	ref, err := Reference(a, b)
	if err != nil {
		return Report{}, err
	}

	var r Report
	n := c.Size()
	for i := range n {
		row := c.Row(i)
		for j := range n {
			want := ref.At(i, j)
			diff := math.Abs(row[j] - want)
			rel := diff / math.Max(1, math.Abs(want))
			r.MaxAbsDiff = math.Max(r.MaxAbsDiff, diff)
			if rel > r.MaxRelDiff || math.IsNaN(rel) {
				r.MaxRelDiff, r.Row, r.Col = rel, i, j
			}
		}
	}
	return r, nil
}

// Check compares c with a * b and returns ErrMismatch when the relative
// difference exceeds tol.
func Check(a, b, c *dgemm.Matrix, tol float64) (Report, error) {
	r, err := Compare(a, b, c)
	if err != nil {
		return r, err
	}
	if r.MaxRelDiff > tol || math.IsNaN(r.MaxRelDiff) {
		return r, fmt.Errorf("%w: relative difference %g at (%d, %d) exceeds %g",
			ErrMismatch, r.MaxRelDiff, r.Row, r.Col, tol)
	}
	return r, nil
}
