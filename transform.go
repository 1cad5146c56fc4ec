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

// Heuristic selects the seed-heuristic family (spec §1, §4.2). NoHeuristic
// degrades the search to plain Dijkstra.
type Heuristic int

const (
	NoHeuristic Heuristic = iota
	SH
	CSH
	GCSH
)

func (h Heuristic) String() string {
	switch h {
	case NoHeuristic:
		return "NONE"
	case SH:
		return "SH"
	case CSH:
		return "CSH"
	case GCSH:
		return "GCSH"
	default:
		return "UNKNOWN"
	}
}

// transformPoint implements C2: it maps a vertex into the plane in which
// componentwise dominance implies reachability under the chosen
// heuristic family (spec §4.2).
//
//   - SH is unordered: reachability only requires row(v) >= row(u). That
//     is encoded as the diagonal point (i,i), so plain 2D domination
//     ((X,Y) >= (X,Y)) reduces to the single row comparison.
//   - CSH orders by diagonal (j-i) and potential.
//   - GCSH additionally folds potential into both axes so the
//     gap-cost lemma |Δi-Δj| <= P(u)-P(v) becomes exactly componentwise
//     domination (spec §4.2).
func transformPoint(u Vertex, pot int, kind Heuristic) Point {
	p := int32(pot)
	switch kind {
	case SH:
		return Point{X: u.I, Y: u.I}
	case CSH:
		return Point{X: u.J - u.I, Y: p}
	case GCSH:
		return Point{X: u.I - u.J - p, Y: u.J - u.I - p}
	default:
		return Point{}
	}
}
