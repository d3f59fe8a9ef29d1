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
	"math"
)

var (
	// ErrInvalidSize is returned when a matrix dimension is not positive or
	// its N² float64 buffer cannot be addressed.
	ErrInvalidSize = errors.New("dgemm: invalid matrix size")

	// ErrSizeMismatch is returned when the operands of a kernel differ in size.
	ErrSizeMismatch = errors.New("dgemm: matrix sizes differ")
)

// Matrix is a square N×N grid of float64 values stored row-major in one
// contiguous buffer. Row i occupies data[i*n : (i+1)*n].
//
// A Matrix is owned by the scope that created it and must be released
// exactly once.
type Matrix struct {
	n        int
	data     []float64
	released bool
}

// maxBytes bounds one matrix buffer at 128 TiB, below the runtime's
// largest allocation on 64-bit hosts.
const maxBytes uint64 = 1 << 47

// MaxSize returns the largest N for which an N×N float64 buffer can be
// addressed on this platform.
func MaxSize() int {
	limit := min(maxBytes, uint64(math.MaxInt)) / 8
	return int(math.Sqrt(float64(limit)))
}

// CheckSize returns ErrInvalidSize unless n is positive and n×n float64
// values fit in one buffer.
func CheckSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d, must be positive", ErrInvalidSize, n)
	}
	if n > MaxSize() {
		return fmt.Errorf("%w: got %d, above the maximum %d", ErrInvalidSize, n, MaxSize())
	}
	return nil
}

// New allocates an n×n matrix. The contents are unspecified; callers that
// need zeros must call Zero.
func New(n int) (*Matrix, error) {
	if err := CheckSize(n); err != nil {
		return nil, err
	}
	return &Matrix{n: n, data: make([]float64, n*n)}, nil
}

// MustNew is like New but panics if n is invalid.
func MustNew(n int) *Matrix {
	m, err := New(n)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows builds a matrix from a square slice of rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrSizeMismatch, i, len(row), n)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	m.Zero()
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Release drops the backing buffer. Releasing twice panics.
func (m *Matrix) Release() {
	if m.released {
		panic("dgemm: matrix released twice")
	}
	m.released = true
	m.data = nil
}

// Released reports whether Release has been called.
func (m *Matrix) Released() bool {
	return m.released
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// Data returns the row-major backing slice of length N².
func (m *Matrix) Data() []float64 {
	m.mustLive()
	return m.data
}

// Row returns row i as a slice aliasing the backing buffer.
func (m *Matrix) Row(i int) []float64 {
	m.mustLive()
	return m.data[i*m.n : (i+1)*m.n]
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	m.mustLive()
	m.checkIndex(i, j)
	return m.data[i*m.n+j]
}

// Set stores v at (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.mustLive()
	m.checkIndex(i, j)
	m.data[i*m.n+j] = v
}

// Zero resets every element to 0.
func (m *Matrix) Zero() {
	m.mustLive()
	clear(m.data)
}

// ZeroRow resets row i to 0.
func (m *Matrix) ZeroRow(i int) {
	clear(m.Row(i))
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]float64 {
	m.mustLive()
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = append([]float64(nil), m.Row(i)...)
	}
	return rows
}

func (m *Matrix) mustLive() {
	if m.released {
		panic("dgemm: use of released matrix")
	}
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("dgemm: index (%d, %d) out of range for %dx%d matrix", i, j, m.n, m.n))
	}
}

func sameSize(a, b, c *Matrix) error {
	if a.n != b.n || a.n != c.n {
		return fmt.Errorf("%w: A is %d, B is %d, C is %d", ErrSizeMismatch, a.n, b.n, c.n)
	}
	return nil
}
