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

package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golimghostpy/oevm-lb3/dgemm"
)

func TestCheckAllVariants(t *testing.T) {
	const n = 40
	rng := dgemm.NewRand(17)
	a, b, c := dgemm.MustNew(n), dgemm.MustNew(n), dgemm.MustNew(n)
	defer a.Release()
	defer b.Release()
	defer c.Release()
	a.FillRandom(rng)
	b.FillRandom(rng)

	for _, v := range dgemm.Variants {
		t.Run(v.String(), func(t *testing.T) {
			require.NoError(t, dgemm.Multiply(v, a, b, c, 16))
			r, err := Check(a, b, c, DefaultTolerance)
			require.NoError(t, err)
			assert.LessOrEqual(t, r.MaxRelDiff, DefaultTolerance)
		})
	}
}

func TestCheckDetectsMismatch(t *testing.T) {
	a, err := dgemm.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := dgemm.FromRows([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)
	c, err := dgemm.FromRows([][]float64{{19, 22}, {43, 51}})
	require.NoError(t, err)
	defer a.Release()
	defer b.Release()
	defer c.Release()

	r, err := Check(a, b, c, DefaultTolerance)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, 1.0, r.MaxAbsDiff)
	assert.Equal(t, 1, r.Row)
	assert.Equal(t, 1, r.Col)
	assert.InDelta(t, 1.0/50, r.MaxRelDiff, 1e-15)
}

func TestCheckSizeMismatch(t *testing.T) {
	a, b, c := dgemm.MustNew(2), dgemm.MustNew(2), dgemm.MustNew(3)
	defer a.Release()
	defer b.Release()
	defer c.Release()

	_, err := Check(a, b, c, DefaultTolerance)
	assert.ErrorIs(t, err, dgemm.ErrSizeMismatch)
}

func TestReferenceDoesNotAlias(t *testing.T) {
	a, err := dgemm.Identity(3)
	require.NoError(t, err)
	defer a.Release()

	ref, err := Reference(a, a)
	require.NoError(t, err)
	ref.Set(0, 0, 42)
	assert.Equal(t, 1.0, a.At(0, 0))
}
