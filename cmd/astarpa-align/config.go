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

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/astarpa-go/astarpa"
)

// fileConfig holds the subset of astarpa.Params an optional TOML config
// file may override before command-line flags are applied. A false
// prune_start in the file is indistinguishable from an absent key, so it
// leaves the --prune-start flag value (default true) in effect.
type fileConfig struct {
	K             int     `toml:"k"`
	R             int     `toml:"r"`
	Fanout        int     `toml:"fanout"`
	Heuristic     string  `toml:"heuristic"`
	PruneStart    bool    `toml:"prune_start"`
	PruneEnd      bool    `toml:"prune_end"`
	PruneFraction float64 `toml:"prune_fraction"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func parseHeuristic(s string) (astarpa.Heuristic, error) {
	switch s {
	case "", "gcsh":
		return astarpa.GCSH, nil
	case "csh":
		return astarpa.CSH, nil
	case "sh":
		return astarpa.SH, nil
	case "none":
		return astarpa.NoHeuristic, nil
	default:
		return astarpa.NoHeuristic, fmt.Errorf("unknown heuristic %q (want sh, csh, gcsh, or none)", s)
	}
}
