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

package astarpa

// heuristicHint carries the contour hint of the previous query, so
// h_with_hint can start its layer search near it (spec §4.4).
type heuristicHint struct {
	contourHint
}

// heuristic is C4: it maintains h(u) = P(u) - h_match(u), an admissible
// and (best-effort) consistent lower bound on the remaining edit cost,
// and mutates under prune requests from the search.
type heuristic struct {
	kind Heuristic
	idx  *MatchIndex
	c    *contours

	startPoint map[Vertex]Point // match start vertex -> transformed point, for prune(start)
	endPoint   map[Vertex]Point // match end vertex -> transformed point, for prune(end)

	pruneStart bool
	pruneEnd   bool

	// Deterministic prune_fraction throttle (spec §4.4): an accumulator
	// crossed by prune_fraction each eligible prune, avoiding both a RNG
	// dependency and a "skip every Nth" bias.
	pruneFraction float64
	pruneAccum    float64

	prunes int
}

func newHeuristic(idx *MatchIndex, kind Heuristic, pruneStart, pruneEnd bool, pruneFraction float64) *heuristic {
	arrows := buildArrows(idx, kind)
	h := &heuristic{
		kind:          kind,
		idx:           idx,
		c:             newContours(arrows),
		startPoint:    make(map[Vertex]Point, len(arrows)),
		endPoint:      make(map[Vertex]Point, len(arrows)),
		pruneStart:    pruneStart,
		pruneEnd:      pruneEnd,
		pruneFraction: pruneFraction,
	}
	for _, a := range arrows {
		h.startPoint[a.Match.Start] = a.Start
		h.endPoint[a.Match.End] = a.End
	}
	return h
}

func (h *heuristic) transform(u Vertex) Point {
	return transformPoint(u, h.idx.PotentialAt(int(u.I)), h.kind)
}

// h returns the admissible lower bound at u. When the contour set offers
// no credit at all at u (score == 0), P(u) alone is not a valid bound --
// this repo's potential table is a flat, match-unaware upper estimate,
// not tightened by discovered matches the way the source's seed_cost is
// (see DESIGN.md) -- so h falls back to the gap-cost distance to the
// target instead, matching h()/h_with_hint()'s `if val == 0` branch in
// chained_seed.rs and csh.rs.
func (h *heuristic) h(u Vertex) int {
	if h.kind == NoHeuristic {
		return 0
	}
	val := h.c.score(h.transform(u))
	if val == 0 {
		return h.gapDistance(u)
	}
	v := h.idx.PotentialAt(int(u.I)) - val
	if v < 0 {
		return 0
	}
	return v
}

// hWithHint is h, accelerated by a hint from a nearby previous query.
func (h *heuristic) hWithHint(u Vertex, hint heuristicHint) (int, heuristicHint) {
	if h.kind == NoHeuristic {
		return 0, hint
	}
	layer, next := h.c.scoreWithHint(h.transform(u), hint.contourHint)
	if layer == 0 {
		return h.gapDistance(u), heuristicHint{next}
	}
	v := h.idx.PotentialAt(int(u.I)) - layer
	if v < 0 {
		v = 0
	}
	return v, heuristicHint{next}
}

// gapDistance is the gap-cost lower bound between u and the target: the
// number of indels needed just to balance the remaining diagonal offset
// (distances.rs's GapCostI::distance). It is always a valid lower bound
// on the remaining edit cost, independent of any seed credit.
func (h *heuristic) gapDistance(u Vertex) int {
	di := int(int32(h.idx.lenA) - u.I)
	dj := int(int32(h.idx.lenB) - u.J)
	d := di - dj
	if d < 0 {
		d = -d
	}
	return d
}

// prune implements spec §4.4: if u starts (or, if enabled, ends) an
// arrow still contributing to h, remove it from the contours, subject
// to the conservative-neighbor check and the prune_fraction throttle.
// It returns the shift the caller may apply to its open set instead of
// rebuilding it.
func (h *heuristic) prune(u Vertex) (didPrune bool, shift int) {
	if h.kind == NoHeuristic {
		return false, 0
	}

	if h.pruneStart {
		if p, ok := h.startPoint[u]; ok {
			if d, s := h.prunePoint(u, p); d {
				return d, s
			}
		}
	}
	if h.pruneEnd {
		if p, ok := h.endPoint[u]; ok {
			if d, s := h.prunePoint(u, p); d {
				return d, s
			}
		}
	}
	return false, 0
}

func (h *heuristic) prunePoint(u Vertex, p Point) (bool, int) {
	layer, ok := h.c.layerOf[p]
	if !ok {
		return false, 0
	}
	if h.conservativeNeighborBlocks(u, layer) {
		return false, 0
	}
	if h.pruneFraction < 1 {
		h.pruneAccum += h.pruneFraction
		if h.pruneAccum < 1 {
			return false, 0
		}
		h.pruneAccum -= 1
	}
	pruned, shift := h.c.prune(p)
	if pruned {
		h.prunes++
	}
	return pruned, shift
}

// conservativeNeighborBlocks approximates spec §4.4's "conservative
// neighbor check": pruning is skipped if another match from the same
// seed row offers at least as much credit, since removing this arrow
// would then not be the thing that creates a gap in the chain -- the
// neighbor already covers it, and consistency across that edge is
// preserved either way. This is a deliberately narrow approximation of
// the full geometric adjacency test.
func (h *heuristic) conservativeNeighborBlocks(u Vertex, layer int) bool {
	for _, cand := range h.idx.MatchesFrom(int(u.I)) {
		if cand.Start == u {
			continue
		}
		p, ok := h.startPoint[cand.Start]
		if !ok {
			continue
		}
		if l, ok := h.c.layerOf[p]; ok && l >= layer {
			return true
		}
	}
	return false
}
