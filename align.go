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

// Package astarpa computes unit-cost (Levenshtein) edit distance and an
// optimal CIGAR between two byte sequences with an A* search guided by a
// seed-and-extend heuristic, in the style of the AStarPA algorithm: a
// match index over fixed-length seeds (C1) is transformed into a plane
// where componentwise domination implies reachability (C2), chained
// into contours (C3) that give an admissible, consistently-tightening
// lower bound (C4) for a bucket-queue A* search (C5, C6).
package astarpa

import "github.com/google/uuid"

// Params configures a single Align call. The zero value is not valid;
// use DefaultParams as a starting point.
type Params struct {
	// K is the seed length used by the match finder. Must be >= 1.
	K int
	// R is the potential (credit) each seed contributes when matched
	// within its edit budget. Must be 1 or 2; R-1 is the number of edits
	// a single seed match may absorb (spec §4.1, §7).
	R int
	// Fanout caps how many hits a single seed may contribute before it
	// is dropped from the arrow set. Zero means DefaultFanout.
	Fanout int
	// Heuristic selects the seed-heuristic family. The zero value,
	// NoHeuristic, runs plain Dijkstra -- useful as a correctness oracle
	// and via the CLI's --heuristic none flag.
	Heuristic Heuristic
	// PruneStart enables pruning arrows when the search expands their
	// start vertex (spec §4.4). Enabling at least one of PruneStart /
	// PruneEnd is what makes the heuristic tighten during the search;
	// with both false the heuristic is static.
	PruneStart bool
	// PruneEnd additionally enables pruning when the search expands an
	// arrow's end vertex. The source implementation flags this as
	// weakening the consistency guarantee near the pruned region more
	// than PruneStart does (an open question in spec §9); this
	// implementation still guarantees a correct answer regardless, via
	// the mandatory stale-heuristic retry in the search loop, but
	// PruneEnd may increase the number of retries. Defaults to false.
	PruneEnd bool
	// PruneFraction throttles pruning to (roughly) this fraction of
	// eligible opportunities, in (0, 1]. 1 means prune every time. To
	// disable pruning entirely, leave PruneStart and PruneEnd false --
	// PruneFraction itself must still be a valid (0,1] value (spec §7);
	// DefaultParams' value of 1 is a safe choice for that case too.
	PruneFraction float64
}

// DefaultParams returns reasonable defaults for DNA-scale inputs: 15-mer
// seeds admitting one edit each, GCSH, pruning on arrow starts only.
func DefaultParams() Params {
	return Params{
		K:             15,
		R:             2,
		Heuristic:     GCSH,
		PruneStart:    true,
		PruneFraction: 1,
	}
}

func (p Params) validate(lenA, lenB int) error {
	if p.K < 1 {
		return invalidParams("K must be >= 1, got %d", p.K)
	}
	if p.R != 1 && p.R != 2 {
		return invalidParams("R must be 1 or 2, got %d", p.R)
	}
	if p.PruneFraction <= 0 || p.PruneFraction > 1 {
		return invalidParams("PruneFraction must be in (0, 1], got %g", p.PruneFraction)
	}
	if lenA > maxInputLen || lenB > maxInputLen {
		return overflow("input length exceeds %d", maxInputLen)
	}
	return nil
}

// Align computes the unit-cost edit distance between a and b and an
// optimal CIGAR realizing it (spec §6). It never mutates a or b.
func Align(a, b []byte, p Params) (cost int, cigar *CIGAR, err error) {
	cost, cigar, _, err = alignImpl(a, b, p, false)
	return cost, cigar, err
}

// AlignWithStats is Align plus the search statistics of spec's
// supplemented feature set (expanded/explored/retries/prunes), each
// tagged with a fresh run ID.
func AlignWithStats(a, b []byte, p Params) (cost int, cigar *CIGAR, stats Stats, err error) {
	return alignImpl(a, b, p, true)
}

func alignImpl(a, b []byte, p Params, wantStats bool) (int, *CIGAR, Stats, error) {
	if err := p.validate(len(a), len(b)); err != nil {
		return 0, nil, Stats{}, err
	}

	fanout := p.Fanout
	if fanout <= 0 {
		fanout = DefaultFanout
	}

	idx := buildMatchIndex(a, b, p.K, p.R, fanout)
	h := newHeuristic(idx, p.Heuristic, p.PruneStart, p.PruneEnd, effectivePruneFraction(p))

	s := newSearch(a, b, h)
	cost, cigar, err := s.run()
	if err != nil {
		return 0, nil, Stats{}, err
	}

	debugAssert(cigar.Cost() == cost, "cigar cost %d does not match search cost %d", cigar.Cost(), cost)

	stats := s.stats
	if wantStats {
		stats.RunID = uuid.New()
	}
	return cost, cigar, stats, nil
}

func effectivePruneFraction(p Params) float64 {
	if !p.PruneStart && !p.PruneEnd {
		return 0
	}
	return p.PruneFraction
}

// NewMatchIndex builds and returns the match index Align would use
// internally, for diagnostics (spec's supplemented "seed potential
// exposed for diagnostics" feature).
func NewMatchIndex(a, b []byte, k, r, fanout int) (*MatchIndex, error) {
	p := Params{K: k, R: r, Fanout: fanout, PruneFraction: 1}
	if err := p.validate(len(a), len(b)); err != nil {
		return nil, err
	}
	if fanout <= 0 {
		fanout = DefaultFanout
	}
	return buildMatchIndex(a, b, k, r, fanout), nil
}
