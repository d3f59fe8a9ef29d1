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

// DefaultBlockSize is the tile edge used when the caller has no measurement.
// 3 tiles of 64x64 float64 = 3 * 64 * 64 * 8 = 96KB, sized for L2 rather
// than L1 since the kernel has no register blocking.
const DefaultBlockSize = 64

// BlockedMatMul accumulates C += A * B for row-major n×n slices, tiling the
// i, j and k ranges into blocks of at most blockSize. Tiles on the far edge
// of each dimension are clipped to n, so blockSize need not divide n and a
// blockSize >= n degenerates to ReorderedMatMul.
//
// Inside a tile triple the loop order is ii, kk, jj with A[ii][kk] held in a
// register, the same order as ReorderedMatMul restricted to the tile.
//
// C must be zeroed by the caller. blockSize must be positive.
func BlockedMatMul(a, b, c []float64, n, blockSize int) {
	checkSlices(a, b, c, n)
	if blockSize <= 0 {
		panic("dgemm: block size must be positive")
	}

	for i0 := 0; i0 < n; i0 += blockSize {
		iEnd := min(i0+blockSize, n)
		for j0 := 0; j0 < n; j0 += blockSize {
			jEnd := min(j0+blockSize, n)
			for k0 := 0; k0 < n; k0 += blockSize {
				kEnd := min(k0+blockSize, n)

				for ii := i0; ii < iEnd; ii++ {
					cRow := c[ii*n+j0 : ii*n+jEnd]
					for kk := k0; kk < kEnd; kk++ {
						aik := a[ii*n+kk]
						bRow := b[kk*n+j0 : kk*n+jEnd]
						for jj := range bRow {
							cRow[jj] += aik * bRow[jj]
						}
					}
				}
			}
		}
	}
}
