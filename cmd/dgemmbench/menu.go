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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golimghostpy/oevm-lb3/dgemm"
)

// errNoInput is returned when the prompt reaches end of input.
var errNoInput = errors.New("no input")

// interactive asks for a kernel and, for the blocked kernel, a block size,
// then times it on every menu size.
func (b *bench) interactive(in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	b.report.Menu()
	word, err := next(sc)
	if err != nil {
		return fmt.Errorf("reading kernel selection: %w", err)
	}
	v := selectVariant(word)
	b.log.Debug().Str("input", word).Stringer("variant", v).Msg("kernel selected")

	blockSize := 0
	if v.NeedsBlockSize() {
		b.report.BlockSizePrompt()
		word, err := next(sc)
		if err != nil {
			return fmt.Errorf("reading block size: %w", err)
		}
		blockSize, err = parseBlockSize(word)
		if err != nil {
			return err
		}
	}

	b.report.Heading(v, blockSize)
	for _, n := range b.opts.menuSizes {
		if _, err := b.runOnce(v, n, blockSize); err != nil {
			return err
		}
	}
	return nil
}

// selectVariant maps the menu answer to a kernel. Anything that is not 1 or
// 2, including text that is not a number, selects dgemm.DefaultVariant.
func selectVariant(word string) dgemm.Variant {
	n, err := strconv.Atoi(word)
	if err != nil {
		return dgemm.DefaultVariant
	}
	return dgemm.VariantFromSelection(n)
}

func parseBlockSize(word string) (int, error) {
	bs, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("invalid block size %q: not an integer", word)
	}
	if bs <= 0 {
		return 0, fmt.Errorf("invalid block size %d: %w", bs, dgemm.ErrInvalidBlockSize)
	}
	return bs, nil
}

func next(sc *bufio.Scanner) (string, error) {
	if sc.Scan() {
		return strings.TrimSpace(sc.Text()), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", errNoInput
}
