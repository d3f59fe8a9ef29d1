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

// Package search finds the block size at which dgemm.MulBlocked runs fastest
// on the host.
//
// Candidates form a doubling sequence from MinBlock to MaxBlock. Each one is
// timed Trials times on the same pair of random inputs, the times are
// averaged, and the candidate with the strictly smallest average wins, so a
// tie keeps the smaller block size.
package search

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/golimghostpy/oevm-lb3/dgemm"
)

// Defaults for Config.
const (
	DefaultSize     = 2048
	DefaultTrials   = 3
	DefaultMinBlock = 16
	DefaultMaxBlock = 256
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("search: invalid config")

// Config controls a block-size search.
type Config struct {
	Size     int // Matrix dimension N
	Trials   int // Timed runs averaged per candidate
	MinBlock int // First candidate
	MaxBlock int // Last candidate is the largest power-of-two multiple of MinBlock <= MaxBlock
}

// DefaultConfig returns a 2048x2048 search over block sizes 16..256 with
// 3 trials each.
func DefaultConfig() Config {
	return Config{
		Size:     DefaultSize,
		Trials:   DefaultTrials,
		MinBlock: DefaultMinBlock,
		MaxBlock: DefaultMaxBlock,
	}
}

// Validate reports the first field that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, c.Size)
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials %d must be positive", ErrInvalidConfig, c.Trials)
	case c.MinBlock <= 0:
		return fmt.Errorf("%w: min block %d must be positive", ErrInvalidConfig, c.MinBlock)
	case c.MaxBlock < c.MinBlock:
		return fmt.Errorf("%w: max block %d is below min block %d", ErrInvalidConfig, c.MaxBlock, c.MinBlock)
	}
	return nil
}

// Candidates returns first, 2*first, 4*first, ... while not above last.
func Candidates(first, last int) []int {
	var out []int
	for bs := first; bs > 0 && bs <= last; bs *= 2 {
		out = append(out, bs)
	}
	return out
}

// Candidate is the averaged timing of one block size.
type Candidate struct {
	BlockSize  int
	AvgSeconds float64
}

// Outcome is the fastest candidate of a search.
type Outcome struct {
	BlockSize  int
	AvgSeconds float64
}

// TrialFunc runs and times one kernel invocation with the given block size,
// returning elapsed seconds.
type TrialFunc func(blockSize int) (float64, error)

// Observer is called once per candidate, in increasing block-size order,
// after its trials are averaged. It may be nil.
type Observer func(Candidate)

// Run times every candidate of cfg with trial and returns the one with the
// smallest average. A later candidate replaces the best only when strictly
// faster.
func Run(cfg Config, trial TrialFunc, observe Observer) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}

	best := Outcome{AvgSeconds: math.MaxFloat64}
	times := make([]float64, cfg.Trials)
	for _, bs := range Candidates(cfg.MinBlock, cfg.MaxBlock) {
		for t := range times {
			secs, err := trial(bs)
			if err != nil {
				return Outcome{}, fmt.Errorf("search: block size %d trial %d: %w", bs, t+1, err)
			}
			times[t] = secs
		}
		avg := lo.Mean(times)
		if observe != nil {
			observe(Candidate{BlockSize: bs, AvgSeconds: avg})
		}
		if avg < best.AvgSeconds {
			best = Outcome{BlockSize: bs, AvgSeconds: avg}
		}
	}
	return best, nil
}

// KernelTrial returns a TrialFunc that zeroes c and times one blocked
// multiply of a and b into it.
func KernelTrial(a, b, c *dgemm.Matrix) TrialFunc {
	return func(blockSize int) (float64, error) {
		return dgemm.TimeKernel(dgemm.VariantBlocked, a, b, c, blockSize)
	}
}

// Search allocates two cfg.Size matrices filled once from rng plus an output
// matrix, and runs the block-size search over them with KernelTrial.
func Search(cfg Config, rng *rand.Rand, observe Observer) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}

	a, err := dgemm.New(cfg.Size)
	if err != nil {
		return Outcome{}, err
	}
	defer a.Release()
	b, err := dgemm.New(cfg.Size)
	if err != nil {
		return Outcome{}, err
	}
	defer b.Release()
	c, err := dgemm.New(cfg.Size)
	if err != nil {
		return Outcome{}, err
	}
	defer c.Release()

	a.FillRandom(rng)
	b.FillRandom(rng)

	return Run(cfg, KernelTrial(a, b, c), observe)
}
