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
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/golimghostpy/oevm-lb3/dgemm"
	"github.com/golimghostpy/oevm-lb3/dgemm/contrib/verify"
	"github.com/golimghostpy/oevm-lb3/internal/cpuinfo"
	"github.com/golimghostpy/oevm-lb3/internal/report"
)

// seedEnv names the environment variable consulted when --seed is not set.
const seedEnv = "DGEMM_SEED"

// options holds what the commands need beyond their flags.
type options struct {
	menuSizes []int
	now       func() time.Time
	getenv    func(string) string
}

// menuSizes mirrors the interactive loop: sizes from 1000 while below 3000
// in steps of 1000.
func menuSizes() []int {
	var sizes []int
	for size := 1000; size < 3000; size += 1000 {
		sizes = append(sizes, size)
	}
	return sizes
}

func defaultOptions() options {
	return options{
		menuSizes: menuSizes(),
		now:       time.Now,
		getenv:    os.Getenv,
	}
}

// bench is the state shared by every command once flags are parsed.
type bench struct {
	opts   options
	log    zerolog.Logger
	rng    *rand.Rand
	seed   uint64
	report *report.Reporter
	verify bool
}

func newRootCmd(opts options) *cobra.Command {
	b := &bench{opts: opts}
	var (
		seed      uint64
		logLevel  string
		variant   string
		blockSize int
	)

	root := &cobra.Command{
		Use:   "dgemmbench [size]",
		Short: "Benchmark naive, reordered and blocked float64 matrix multiplication",
		Long: "With a size argument, times one kernel (naive unless --variant is set) on random size x size matrices.\n" +
			"Without arguments, prompts for a kernel and times it on 1000x1000 and 2000x2000 matrices.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return b.setup(cmd, seed, cmd.Flags().Changed("seed"), logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				n, err := parseSize(args[0])
				if err != nil {
					return err
				}
				v, err := dgemm.ParseVariant(variant)
				if err != nil {
					return fmt.Errorf("invalid --variant: %w", err)
				}
				if v.NeedsBlockSize() && blockSize <= 0 {
					return fmt.Errorf("invalid --block %d: %w", blockSize, dgemm.ErrInvalidBlockSize)
				}
				_, err = b.runOnce(v, n, blockSize)
				return err
			}
			return b.interactive(cmd.InOrStdin())
		},
	}

	flags := root.PersistentFlags()
	flags.Uint64Var(&seed, "seed", 0, "seed for the random input matrices (default: $"+seedEnv+" or the current time)")
	flags.StringVar(&logLevel, "log-level", "info", "diagnostic log level (trace, debug, info, warn, error)")
	flags.BoolVar(&b.verify, "verify", false, "check every product against gonum's reference multiply")

	root.Flags().StringVar(&variant, "variant", dgemm.VariantNaive.String(), "kernel for a single sized run (naive, reordered, blocked)")
	root.Flags().IntVar(&blockSize, "block", dgemm.DefaultBlockSize, "block size for --variant blocked")

	root.AddCommand(newSearchCmd(b), newCPUInfoCmd())
	return root
}

// setup builds the logger, reporter and random source. It runs once per
// process, before any matrix is filled.
func (b *bench) setup(cmd *cobra.Command, seed uint64, seedSet bool, logLevel string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	b.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	b.seed, err = b.resolveSeed(seed, seedSet)
	if err != nil {
		return err
	}
	b.rng = dgemm.NewRand(b.seed)
	b.report = report.New(cmd.OutOrStdout(), language.English)

	host := cpuinfo.Detect()
	b.log.Debug().
		Uint64("seed", b.seed).
		Str("vector", host.VectorLevel()).
		Int("cache_line", host.CacheLineSize).
		Dur("cpu_clock_tick", dgemm.ClockResolution()).
		Msg("benchmark setup")
	return nil
}

func (b *bench) resolveSeed(seed uint64, seedSet bool) (uint64, error) {
	if seedSet {
		return seed, nil
	}
	if env := b.opts.getenv(seedEnv); env != "" {
		s, err := strconv.ParseUint(env, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", seedEnv, env, err)
		}
		return s, nil
	}
	return uint64(b.opts.now().UnixNano()), nil
}

// parseSize converts a matrix dimension argument, rejecting anything that is
// not a positive integer or too large to allocate.
func parseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid matrix size %q: not an integer", arg)
	}
	if err := dgemm.CheckSize(n); err != nil {
		return 0, fmt.Errorf("invalid matrix size %q: %w", arg, err)
	}
	return n, nil
}

// runOnce allocates fresh n×n inputs, times one multiply with variant v and
// reports it. The three matrices are released before returning.
func (b *bench) runOnce(v dgemm.Variant, n, blockSize int) (float64, error) {
	a, err := dgemm.New(n)
	if err != nil {
		return 0, err
	}
	defer a.Release()
	bm, err := dgemm.New(n)
	if err != nil {
		return 0, err
	}
	defer bm.Release()
	c, err := dgemm.New(n)
	if err != nil {
		return 0, err
	}
	defer c.Release()

	a.FillRandom(b.rng)
	bm.FillRandom(b.rng)

	secs, err := dgemm.TimeKernel(v, a, bm, c, blockSize)
	if err != nil {
		return 0, err
	}
	b.log.Debug().Stringer("variant", v).Int("size", n).Int("block", blockSize).Float64("seconds", secs).Msg("kernel timed")
	b.report.Run(n, secs)

	if b.verify {
		if err := b.check(a, bm, c); err != nil {
			return secs, err
		}
	}
	return secs, nil
}

func (b *bench) check(a, bm, c *dgemm.Matrix) error {
	r, err := verify.Check(a, bm, c, verify.DefaultTolerance)
	if err != nil {
		b.log.Error().Err(err).Msg("verification failed")
		return err
	}
	b.log.Info().Float64("max_abs_diff", r.MaxAbsDiff).Float64("max_rel_diff", r.MaxRelDiff).Msg("solution validates")
	return nil
}

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the CPU features detected by Go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cpuinfo.Fprint(cmd.OutOrStdout(), cpuinfo.Detect())
		},
	}
}
