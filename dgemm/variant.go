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

import "fmt"

// Variant selects one of the kernels.
type Variant int

const (
	// VariantNaive is the i-j-k kernel, MulNaive.
	VariantNaive Variant = iota + 1

	// VariantReordered is the i-k-j kernel, MulReordered.
	VariantReordered

	// VariantBlocked is the tiled kernel, MulBlocked.
	VariantBlocked
)

// DefaultVariant is chosen for any menu selection that is not a known
// variant number.
const DefaultVariant = VariantBlocked

// Variants lists every kernel in menu order.
var Variants = []Variant{VariantNaive, VariantReordered, VariantBlocked}

// VariantFromSelection maps a menu number to a variant. 1 and 2 select the
// naive and reordered kernels; every other value selects DefaultVariant.
func VariantFromSelection(selection int) Variant {
	switch selection {
	case int(VariantNaive):
		return VariantNaive
	case int(VariantReordered):
		return VariantReordered
	default:
		return DefaultVariant
	}
}

// ParseVariant accepts a variant name as returned by String.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("dgemm: unknown variant %q", s)
}

// String returns a short lower-case name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantNaive:
		return "naive"
	case VariantReordered:
		return "reordered"
	case VariantBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Valid reports whether v names a kernel.
func (v Variant) Valid() bool {
	return v >= VariantNaive && v <= VariantBlocked
}

// NeedsZeroedOutput reports whether the kernel accumulates into C and so
// relies on the caller clearing it.
func (v Variant) NeedsZeroedOutput() bool {
	return v == VariantReordered || v == VariantBlocked
}

// NeedsBlockSize reports whether the kernel takes a block size.
func (v Variant) NeedsBlockSize() bool {
	return v == VariantBlocked
}
