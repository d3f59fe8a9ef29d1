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
	"github.com/spf13/cobra"

	"github.com/golimghostpy/oevm-lb3/dgemm/contrib/search"
)

func newSearchCmd(b *bench) *cobra.Command {
	cfg := search.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the block size at which the blocked kernel is fastest",
		Long: "Times the blocked kernel on one pair of random matrices for block sizes\n" +
			"min-block, 2*min-block, ... up to max-block, averaging several trials each,\n" +
			"and reports the block size with the lowest average CPU time.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return b.search(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Size, "size", cfg.Size, "matrix dimension")
	flags.IntVar(&cfg.Trials, "trials", cfg.Trials, "timed runs averaged per block size")
	flags.IntVar(&cfg.MinBlock, "min-block", cfg.MinBlock, "smallest block size tried")
	flags.IntVar(&cfg.MaxBlock, "max-block", cfg.MaxBlock, "largest block size tried")
	return cmd
}

func (b *bench) search(cfg search.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.report.SearchStart(cfg.Size)
	out, err := search.Search(cfg, b.rng, func(c search.Candidate) {
		b.log.Debug().Int("block", c.BlockSize).Float64("avg_seconds", c.AvgSeconds).Msg("candidate timed")
		b.report.Candidate(c)
	})
	if err != nil {
		return err
	}
	b.report.Optimal(out)
	return nil
}
