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

// parentLink records how a vertex was first reached: from, by which
// edge kind, and how many times in a row (>1 only for a collapsed
// greedy-diagonal run of matches).
type parentLink struct {
	from Vertex
	kind EdgeKind
	n    uint32
}

// search is C6: it owns the open set, the best-known distances, and the
// backtrace needed to reconstruct a CIGAR, for a single Align call
// (spec §9, "encapsulate them as a single owning value").
type search struct {
	a, b []byte
	h    *heuristic
	q    *bucketQueue

	g        map[Vertex]int
	parent   map[Vertex]parentLink
	expanded map[Vertex]bool

	stats Stats
}

func newSearch(a, b []byte, h *heuristic) *search {
	return &search{
		a: a, b: b, h: h,
		q:        newBucketQueue(),
		g:        make(map[Vertex]int),
		parent:   make(map[Vertex]parentLink),
		expanded: make(map[Vertex]bool),
	}
}

var source = Vertex{I: 0, J: 0}

// run executes the loop of spec §4.6 to completion and returns the edit
// distance and its CIGAR.
func (s *search) run() (int, *CIGAR, error) {
	target := Vertex{I: int32(len(s.a)), J: int32(len(s.b))}

	s.setG(source, 0)
	h0, hint0 := s.h.hWithHint(source, heuristicHint{})
	s.q.push(queueEntry{pos: source, g: 0, f: h0, hint: hint0})

	for {
		e, ok := s.q.pop()
		if !ok {
			// The all-deletions/all-insertions path always reaches
			// target, so an empty open set before reaching it means a
			// vertex was dropped somewhere upstream.
			debugAssert(false, "open set exhausted before reaching target")
			return 0, nil, overflow("search exhausted the open set without reaching the target")
		}

		g, live := s.g[e.pos]
		if !live || e.g > g {
			continue // superseded by a cheaper path found later
		}

		h, hint := s.h.hWithHint(e.pos, e.hint)
		f := g + h
		if f > e.f {
			// The heuristic tightened (a prune) since this entry was
			// pushed; requeue with the fresh f instead of expanding on
			// stale information (spec §4.6 step 2).
			s.stats.Retries++
			s.q.push(queueEntry{pos: e.pos, g: g, f: f, hint: hint})
			continue
		}

		pos := e.pos
		if s.expanded[pos] {
			s.stats.DoubleExpanded++
		}
		s.expanded[pos] = true
		s.stats.Expanded++
		s.tryPrune(pos)

		// Greedy diagonal extension: collapse a run of free matches into
		// a single transition instead of relaxing each step (spec §4.6
		// step 3, "critical for performance").
		cur := pos
		for cur.I < target.I && cur.J < target.J && s.a[cur.I] == s.b[cur.J] {
			cur = Vertex{I: cur.I + 1, J: cur.J + 1}
			s.tryPrune(cur)
		}
		if cur != pos {
			s.setG(cur, g)
			s.parent[cur] = parentLink{from: pos, kind: EdgeMatch, n: uint32(cur.I - pos.I)}
			pos = cur
		}

		if pos == target {
			s.stats.Cost = g
			return g, s.buildCIGAR(target, g), nil
		}

		s.relax(pos, g, hint)
	}
}

func (s *search) tryPrune(v Vertex) {
	if pruned, shift := s.h.prune(v); pruned {
		s.stats.Prunes++
		if shift > 0 {
			s.q.shift(shift)
			s.stats.ShiftCount = s.q.shiftCount
			s.stats.ShiftTotal = s.q.shiftTotal
		}
	}
}

// relax pushes every outgoing edge from pos that improves on the
// currently known distance to its endpoint. The diagonal match edge is
// not considered here: greedy extension in run already consumed every
// free match reachable from pos, so any remaining diagonal edge is a
// substitution.
func (s *search) relax(pos Vertex, g int, hint heuristicHint) {
	lenA, lenB := int32(len(s.a)), int32(len(s.b))

	type edge struct {
		to   Vertex
		kind EdgeKind
	}
	var edges []edge
	if pos.I < lenA && pos.J < lenB {
		edges = append(edges, edge{Vertex{pos.I + 1, pos.J + 1}, EdgeSub})
	}
	if pos.J < lenB {
		edges = append(edges, edge{Vertex{pos.I, pos.J + 1}, EdgeIns})
	}
	if pos.I < lenA {
		edges = append(edges, edge{Vertex{pos.I + 1, pos.J}, EdgeDel})
	}

	for _, ed := range edges {
		ng := g + ed.kind.Cost()
		if old, ok := s.g[ed.to]; ok && old <= ng {
			continue
		}
		s.setG(ed.to, ng)
		s.parent[ed.to] = parentLink{from: pos, kind: ed.kind, n: 1}
		hh, nhint := s.h.hWithHint(ed.to, hint)
		s.q.push(queueEntry{pos: ed.to, g: ng, f: ng + hh, hint: nhint})
	}
}

func (s *search) setG(v Vertex, g int) {
	if _, ok := s.g[v]; !ok {
		s.stats.Explored++
	}
	s.g[v] = g
}

// buildCIGAR walks the parent chain from target back to the source,
// appending runs in that (reversed) order -- CIGAR.process then flips
// and merges them, exactly as CIGAR.Add is meant to be driven from a
// backtrace.
func (s *search) buildCIGAR(target Vertex, cost int) *CIGAR {
	cigar := NewCIGAR()
	cur := target
	for cur != source {
		link := s.parent[cur]
		cigar.AddN(link.kind.Op(), link.n)
		cur = link.from
	}
	cigar.Score = cost
	cigar.process()
	return cigar
}
