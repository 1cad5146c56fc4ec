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

import (
	"math"
	"sort"
)

// sentinel dominates every point in the plane; it plays the role of
// "layer 0 is the target" from spec §3: with only the sentinel present,
// score(q) is always 0 for any q, which is the correct h_match of the
// target vertex itself.
var sentinel = Point{X: math.MaxInt32, Y: math.MaxInt32}

// contourHint accelerates repeated score queries for vertices visited
// close together during the search (spec §4.3, "hint").
type contourHint struct {
	layer int
}

// contours is C3: a set of arrows partitioned into layers satisfying
// invariant I1. Layer numbers double as cumulative arrow-length credit
// -- an arrow ending up in layer v means the best chain starting at its
// point collects exactly v units of potential -- which folds spec
// §4.4's separate len_sum table directly into the layer index and keeps
// score() and h_match() the same computation.
type contours struct {
	layers   [][]Point
	layerOf  map[Point]int
	arrowsAt map[Point][]Arrow
	maxLen   int
}

func newContours(arrows []Arrow) *contours {
	c := &contours{
		layers:   [][]Point{{sentinel}},
		layerOf:  make(map[Point]int),
		arrowsAt: make(map[Point][]Arrow),
	}
	for _, a := range arrows {
		c.arrowsAt[a.Start] = append(c.arrowsAt[a.Start], a)
		if a.Len > c.maxLen {
			c.maxLen = a.Len
		}
	}
	if len(c.arrowsAt) == 0 {
		return c
	}

	points := make([]Point, 0, len(c.arrowsAt))
	for p := range c.arrowsAt {
		points = append(points, p)
	}
	// A linear extension of the dominance partial order: if p dominates
	// q then p.X+p.Y >= q.X+q.Y, so ascending coordinate-sum order never
	// processes a point before something it depends on (spec §4.3,
	// "sort arrows by a transformed-coordinate sweep").
	sort.Slice(points, func(i, j int) bool {
		si, sj := int64(points[i].X)+int64(points[i].Y), int64(points[j].X)+int64(points[j].Y)
		if si != sj {
			return si < sj
		}
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})

	for _, p := range points {
		v := c.chainScore(p)
		if v < 0 {
			continue
		}
		c.ensureLayer(v)
		c.layers[v] = append(c.layers[v], p)
		c.layerOf[p] = v
	}
	return c
}

func (c *contours) ensureLayer(v int) {
	for len(c.layers) <= v {
		c.layers = append(c.layers, nil)
	}
}

// chainScore returns the max, over arrows starting at p, of the layer
// its end point scores plus the arrow's length -- i.e. the best total
// credit a chain starting at p can collect. It returns -1 if p is no
// longer a live arrow start (spec §4.3's prune bookkeeping).
func (c *contours) chainScore(p Point) int {
	arrows, ok := c.arrowsAt[p]
	if !ok || len(arrows) == 0 {
		return -1
	}
	best := -1
	for _, a := range arrows {
		v := c.score(a.End) + a.Len
		if v > best {
			best = v
		}
	}
	return best
}

// score answers "max layer dominated by q" via binary search over
// non-empty layers (spec §4.3): the set of layers whose points dominate
// q forms a prefix [0, score(q)] by construction, so binary search is
// valid.
func (c *contours) score(q Point) int {
	lo, hi := 0, len(c.layers)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c.layerDominates(mid, q) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// scoreWithHint is score, but first tries a small linear window around
// hint.layer before falling back to the full binary search (spec §4.3,
// §4.4 "h_with_hint").
func (c *contours) scoreWithHint(q Point, hint contourHint) (int, contourHint) {
	const window = 4
	start := hint.layer
	if start < 0 || start >= len(c.layers) {
		v := c.score(q)
		return v, contourHint{layer: v}
	}
	if c.layerDominates(start, q) {
		best := start
		for w := start + 1; w <= start+window && w < len(c.layers); w++ {
			if c.layerDominates(w, q) {
				best = w
			} else {
				return best, contourHint{layer: best}
			}
		}
		if best == len(c.layers)-1 {
			return best, contourHint{layer: best}
		}
	} else {
		for w := start - 1; w >= 0 && w >= start-window; w-- {
			if c.layerDominates(w, q) {
				return w, contourHint{layer: w}
			}
		}
	}
	v := c.score(q)
	return v, contourHint{layer: v}
}

func (c *contours) layerDominates(layer int, q Point) bool {
	for _, p := range c.layers[layer] {
		if p.Dominates(q) {
			return true
		}
	}
	return false
}

// topLayer returns the highest non-empty layer index, or 0 if only the
// sentinel layer remains.
func (c *contours) topLayer() int {
	for w := len(c.layers) - 1; w > 0; w-- {
		if len(c.layers[w]) > 0 {
			return w
		}
	}
	return 0
}

// prune removes p from the contour set entirely and propagates the
// change to points whose chain passed through p, per invariant I4: a
// point's layer can drop by at most maxLen, and propagation stops once
// more than maxLen consecutive layers see no change (spec §4.3).
//
// It reports whether p was live, and the amount by which the globally
// maximal layer decreased -- the "shift" of spec §4.4/§4.5. Note that
// A*'s own retry-on-stale-heuristic step (spec §4.6 step 2) already
// guarantees correctness for any queued vertex whose f increases as a
// result; the shift value returned here exists purely so callers can
// short-circuit that recomputation instead of relying on the lazy
// retry, matching spec §4.5's stated purpose ("to add a global offset
// rather than rebuild").
func (c *contours) prune(p Point) (pruned bool, shift int) {
	v, ok := c.layerOf[p]
	if !ok {
		return false, 0
	}
	oldTop := c.topLayer()

	delete(c.arrowsAt, p)
	c.removeFromLayer(v, p)
	delete(c.layerOf, p)

	noChange := 0
	for w := v + 1; w < len(c.layers) && noChange <= c.maxLen; w++ {
		current := c.layers[w]
		if len(current) == 0 {
			noChange++
			continue
		}
		kept := current[:0]
		changed := false
		for _, q := range current {
			nv := c.chainScore(q)
			switch {
			case nv == w:
				kept = append(kept, q)
			case nv < 0:
				delete(c.layerOf, q)
				changed = true
			default:
				c.ensureLayer(nv)
				c.layers[nv] = append(c.layers[nv], q)
				c.layerOf[q] = nv
				changed = true
			}
		}
		c.layers[w] = kept
		if changed {
			noChange = 0
		} else {
			noChange++
		}
	}

	newTop := c.topLayer()
	if newTop < oldTop {
		shift = oldTop - newTop
	}
	return true, shift
}

func (c *contours) removeFromLayer(v int, p Point) {
	layer := c.layers[v]
	for i, q := range layer {
		if q == p {
			layer[i] = layer[len(layer)-1]
			c.layers[v] = layer[:len(layer)-1]
			return
		}
	}
}
