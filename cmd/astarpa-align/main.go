// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command astarpa-align aligns pairs of sequences with the astarpa
// package, in the same spirit as the wfa module's own benchmark command:
// two sequences on the command line, or many pairs from a file.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/astarpa-go/astarpa"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "astarpa-align",
		Short:   "Unit-cost pairwise sequence alignment with a seed-heuristic A* search",
		Version: version,
	}
	root.AddCommand(newAlignCmd())
	root.AddCommand(newBenchCmd())
	return root
}

// alignFlags are the astarpa.Params-shaped flags shared by align and bench.
type alignFlags struct {
	config        string
	k             int
	r             int
	fanout        int
	heuristic     string
	pruneStart    bool
	pruneEnd      bool
	pruneFraction float64
}

func (f *alignFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "optional TOML config file overriding the defaults below")
	cmd.Flags().IntVar(&f.k, "k", 15, "seed length")
	cmd.Flags().IntVar(&f.r, "r", 2, "seed potential (one more than the edits a matched seed may absorb)")
	cmd.Flags().IntVar(&f.fanout, "fanout", 0, "max hits per seed before it is dropped (0 = default)")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "gcsh", "seed heuristic: sh, csh, gcsh, or none")
	cmd.Flags().BoolVar(&f.pruneStart, "prune-start", true, "prune arrows when their start vertex is expanded")
	cmd.Flags().BoolVar(&f.pruneEnd, "prune-end", false, "also prune arrows when their end vertex is expanded")
	cmd.Flags().Float64Var(&f.pruneFraction, "prune-fraction", 1, "fraction of eligible prunes to actually apply, in (0,1]")
}

// resolve merges an optional config file under the flags (flags win only
// when the user actually set them; cobra's Changed() distinguishes an
// explicit -k=15 from the default).
func (f *alignFlags) resolve(cmd *cobra.Command) (astarpa.Params, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return astarpa.Params{}, err
	}

	p := astarpa.DefaultParams()
	if cfg.K != 0 {
		p.K = cfg.K
	}
	if cfg.R != 0 {
		p.R = cfg.R
	}
	p.Fanout = cfg.Fanout
	if cfg.Heuristic != "" && !cmd.Flags().Changed("heuristic") {
		f.heuristic = cfg.Heuristic
	}
	p.PruneStart = cfg.PruneStart
	p.PruneEnd = cfg.PruneEnd
	if cfg.PruneFraction != 0 {
		p.PruneFraction = cfg.PruneFraction
	}

	if cmd.Flags().Changed("k") || cfg.K == 0 {
		p.K = f.k
	}
	if cmd.Flags().Changed("r") || cfg.R == 0 {
		p.R = f.r
	}
	if cmd.Flags().Changed("fanout") {
		p.Fanout = f.fanout
	}
	if cmd.Flags().Changed("prune-start") || !cfg.PruneStart {
		p.PruneStart = f.pruneStart
	}
	if cmd.Flags().Changed("prune-end") || !cfg.PruneEnd {
		p.PruneEnd = f.pruneEnd
	}
	if cmd.Flags().Changed("prune-fraction") || cfg.PruneFraction == 0 {
		p.PruneFraction = f.pruneFraction
	}

	heuristic, err := parseHeuristic(f.heuristic)
	if err != nil {
		return astarpa.Params{}, err
	}
	p.Heuristic = heuristic

	return p, nil
}

func newAlignCmd() *cobra.Command {
	var flags alignFlags
	var infile string
	var pretty bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "align [query] [target]",
		Short: "Align one or many sequence pairs",
		Long: `Align two sequences given as positional arguments, or many pairs read
from a file where each pair is two consecutive lines, the first prefixed
with '>' (query) and the second with '<' (target).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			run := func(q, t string) error {
				return alignAndReport(out, log, []byte(q), []byte(t), p, pretty)
			}

			if infile == "" {
				if len(args) != 2 {
					return fmt.Errorf("give two sequences, or -i FILE for many pairs")
				}
				return run(args[0], args[1])
			}
			return alignFile(infile, run)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&infile, "input", "i", "", "input file of sequence pairs")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print the three-line alignment view")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search statistics")

	return cmd
}

func newBenchCmd() *cobra.Command {
	var flags alignFlags
	var infile string
	var cpuProfile bool
	var memProfile bool

	cmd := &cobra.Command{
		Use:   "bench -i FILE",
		Short: "Repeatedly align pairs from a file, optionally under a profiler",
		RunE: func(cmd *cobra.Command, args []string) error {
			if infile == "" {
				return fmt.Errorf("bench requires -i FILE")
			}
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			if cpuProfile {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
			} else if memProfile {
				defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
			}

			var n int
			err = alignFile(infile, func(q, t string) error {
				if _, _, err := astarpa.Align([]byte(q), []byte(t), p); err != nil {
					return err
				}
				n++
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "aligned %d pairs\n", n)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&infile, "input", "i", "", "input file of sequence pairs")
	cmd.Flags().BoolVarP(&cpuProfile, "p", "p", false, "cpu pprof (go tool pprof -http=:8080 cpu.pprof)")
	cmd.Flags().BoolVarP(&memProfile, "m", "m", false, "mem pprof (go tool pprof -http=:8080 mem.pprof)")

	return cmd
}
