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
	"errors"
	"fmt"
)

// ErrInvalidBlockSize is returned when the blocked kernel gets a block size
// that is not positive.
var ErrInvalidBlockSize = errors.New("dgemm: block size must be positive")

// checkSlices panics when a, b or c cannot hold an n×n matrix.
func checkSlices(a, b, c []float64, n int) {
	if len(a) < n*n {
		panic("dgemm: A slice too short")
	}
	if len(b) < n*n {
		panic("dgemm: B slice too short")
	}
	if len(c) < n*n {
		panic("dgemm: C slice too short")
	}
}

// NaiveMatMul computes C = A * B for row-major n×n slices with the textbook
// i-j-k order. Each output cell is reset before it is accumulated, so C
// does not need to be cleared first. B is walked down a column in the inner
// loop, which is the access pattern the other kernels avoid.
func NaiveMatMul(a, b, c []float64, n int) {
	checkSlices(a, b, c, n)
	for i := range n {
		aRow := a[i*n : (i+1)*n]
		cRow := c[i*n : (i+1)*n]
		for j := range n {
			cRow[j] = 0
			for k := range n {
				cRow[j] += aRow[k] * b[k*n+j]
			}
		}
	}
}

// ReorderedMatMul accumulates C += A * B in i-k-j order. The inner loop
// walks one row of B and one row of C with unit stride.
//
// C must be zeroed by the caller.
func ReorderedMatMul(a, b, c []float64, n int) {
	checkSlices(a, b, c, n)
	for i := range n {
		cRow := c[i*n : (i+1)*n]
		for k := range n {
			aik := a[i*n+k]
			bRow := b[k*n : (k+1)*n]
			for j := range n {
				cRow[j] += aik * bRow[j]
			}
		}
	}
}

// MulNaive computes c = a * b with NaiveMatMul.
func MulNaive(a, b, c *Matrix) error {
	if err := sameSize(a, b, c); err != nil {
		return err
	}
	NaiveMatMul(a.Data(), b.Data(), c.Data(), a.n)
	return nil
}

// MulReordered accumulates c += a * b with ReorderedMatMul. c must be zeroed
// first for the result to be the product.
func MulReordered(a, b, c *Matrix) error {
	if err := sameSize(a, b, c); err != nil {
		return err
	}
	ReorderedMatMul(a.Data(), b.Data(), c.Data(), a.n)
	return nil
}

// MulBlocked accumulates c += a * b with BlockedMatMul using blockSize×blockSize
// tiles. c must be zeroed first for the result to be the product.
func MulBlocked(a, b, c *Matrix, blockSize int) error {
	if err := sameSize(a, b, c); err != nil {
		return err
	}
	if blockSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBlockSize, blockSize)
	}
	BlockedMatMul(a.Data(), b.Data(), c.Data(), a.n, blockSize)
	return nil
}

// Multiply computes c = a * b with variant v. For variants that accumulate,
// c is zeroed first. blockSize is ignored unless v is VariantBlocked.
func Multiply(v Variant, a, b, c *Matrix, blockSize int) error {
	kernel, err := bind(v, a, b, c, blockSize)
	if err != nil {
		return err
	}
	if err := Prepare(v, c); err != nil {
		return err
	}
	kernel()
	return nil
}

// Prepare readies c as the output of variant v, zeroing it when v
// accumulates into its output.
func Prepare(v Variant, c *Matrix) error {
	if !v.Valid() {
		return fmt.Errorf("dgemm: unknown variant %d", int(v))
	}
	if v.NeedsZeroedOutput() {
		c.Zero()
	}
	return nil
}

// bind validates the operands for variant v and returns the kernel call
// with its arguments fixed.
func bind(v Variant, a, b, c *Matrix, blockSize int) (func(), error) {
	if err := sameSize(a, b, c); err != nil {
		return nil, err
	}
	ad, bd, cd, n := a.Data(), b.Data(), c.Data(), a.n
	switch v {
	case VariantNaive:
		return func() { NaiveMatMul(ad, bd, cd, n) }, nil
	case VariantReordered:
		return func() { ReorderedMatMul(ad, bd, cd, n) }, nil
	case VariantBlocked:
		if blockSize <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockSize, blockSize)
		}
		return func() { BlockedMatMul(ad, bd, cd, n, blockSize) }, nil
	default:
		return nil, fmt.Errorf("dgemm: unknown variant %d", int(v))
	}
}
