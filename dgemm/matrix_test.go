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
	"math"
	"testing"
)

func TestNewInvalidSize(t *testing.T) {
	// 1<<32 squared wraps to 0 in 64-bit int arithmetic; on 32-bit hosts the
	// shift itself yields 0. Both must be rejected.
	shift := 32
	for _, n := range []int{0, -1, -2048, 1 << shift, MaxSize() + 1, math.MaxInt} {
		if _, err := New(n); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", n, err)
		}
	}
}

func TestMaxSize(t *testing.T) {
	n := MaxSize()
	if n <= 0 {
		t.Fatalf("MaxSize() = %d, want positive", n)
	}
	if uint64(n)*uint64(n) > uint64(math.MaxInt)/8 {
		t.Errorf("MaxSize()² = %d elements overflows int byte count", uint64(n)*uint64(n))
	}
	if err := CheckSize(n); err != nil {
		t.Errorf("CheckSize(MaxSize()) = %v, want nil", err)
	}
	if err := CheckSize(n + 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("CheckSize(MaxSize()+1) = %v, want ErrInvalidSize", err)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0) did not panic")
		}
	}()
	MustNew(0)
}

func TestMatrixLayout(t *testing.T) {
	m := MustNew(3)
	defer m.Release()

	m.Set(1, 2, 7.5)
	if got := m.Data()[1*3+2]; got != 7.5 {
		t.Errorf("Data()[5] = %v, want 7.5", got)
	}
	if got := m.Row(1)[2]; got != 7.5 {
		t.Errorf("Row(1)[2] = %v, want 7.5", got)
	}
	if len(m.Data()) != 9 {
		t.Errorf("len(Data()) = %d, want 9", len(m.Data()))
	}

	// Row aliases the backing buffer.
	m.Row(2)[0] = -1
	if m.At(2, 0) != -1 {
		t.Errorf("At(2, 0) = %v, want -1", m.At(2, 0))
	}
}

func TestMatrixZero(t *testing.T) {
	m := MustNew(4)
	defer m.Release()
	for i := range m.Data() {
		m.Data()[i] = float64(i + 1)
	}

	m.ZeroRow(2)
	for j := range 4 {
		if m.At(2, j) != 0 {
			t.Errorf("At(2, %d) = %v after ZeroRow, want 0", j, m.At(2, j))
		}
		if m.At(1, j) == 0 {
			t.Errorf("ZeroRow(2) cleared row 1")
		}
	}

	m.Zero()
	for i, v := range m.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v after Zero, want 0", i, v)
		}
	}
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()
	if m.Size() != 2 || m.At(1, 0) != 3 {
		t.Errorf("FromRows gave size %d, At(1,0) = %v", m.Size(), m.At(1, 0))
	}

	if _, err := FromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("ragged rows error = %v, want ErrSizeMismatch", err)
	}
	if _, err := FromRows(nil); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("empty rows error = %v, want ErrInvalidSize", err)
	}
}

func TestIdentity(t *testing.T) {
	id, err := Identity(5)
	if err != nil {
		t.Fatal(err)
	}
	defer id.Release()
	for i := range 5 {
		for j := range 5 {
			want := 0.0
			if i == j {
				want = 1
			}
			if id.At(i, j) != want {
				t.Errorf("At(%d, %d) = %v, want %v", i, j, id.At(i, j), want)
			}
		}
	}
}

func TestReleaseTwicePanics(t *testing.T) {
	m := MustNew(2)
	m.Release()
	if !m.Released() {
		t.Fatal("Released() = false after Release")
	}
	defer func() {
		if recover() == nil {
			t.Error("second Release did not panic")
		}
	}()
	m.Release()
}

func TestUseAfterReleasePanics(t *testing.T) {
	m := MustNew(2)
	m.Release()
	defer func() {
		if recover() == nil {
			t.Error("At after Release did not panic")
		}
	}()
	_ = m.At(0, 0)
}

func TestAtOutOfRangePanics(t *testing.T) {
	m := MustNew(2)
	defer m.Release()
	defer func() {
		if recover() == nil {
			t.Error("At(2, 0) did not panic")
		}
	}()
	_ = m.At(2, 0)
}

func TestFillRandomRange(t *testing.T) {
	m := MustNew(64)
	defer m.Release()
	m.FillRandom(NewRand(1))

	for i, v := range m.Data() {
		if v < 0 || v >= 1000 {
			t.Fatalf("Data()[%d] = %v, outside [0, 1000)", i, v)
		}
		// Every value is an integer number of hundredths.
		if scaled := v * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Fatalf("Data()[%d] = %v is not a multiple of 0.01", i, v)
		}
	}
}

func TestFillRandomDeterministic(t *testing.T) {
	a, b := MustNew(16), MustNew(16)
	defer a.Release()
	defer b.Release()

	a.FillRandom(NewRand(7))
	b.FillRandom(NewRand(7))
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("same seed diverged at %d: %v != %v", i, a.Data()[i], b.Data()[i])
		}
	}
}

func TestFillRandomContinuesSequence(t *testing.T) {
	a, b := MustNew(16), MustNew(16)
	defer a.Release()
	defer b.Release()

	rng := NewRand(7)
	a.FillRandom(rng)
	b.FillRandom(rng)

	same := 0
	for i := range a.Data() {
		if a.Data()[i] == b.Data()[i] {
			same++
		}
	}
	if same == len(a.Data()) {
		t.Error("two fills from one source produced identical matrices")
	}
}
