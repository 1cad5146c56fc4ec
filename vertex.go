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

import "fmt"

// Vertex is a position (i,j) in the edit graph of A (rows) against B
// (columns). The source is (0,0), the target is (len(A), len(B)).
type Vertex struct {
	I, J int32
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.I, v.J)
}

// EdgeKind is one of the four edit-graph transitions from spec §3.
type EdgeKind uint8

const (
	// EdgeMatch is a diagonal, cost-0 transition when A[i]==B[j].
	EdgeMatch EdgeKind = iota
	// EdgeSub is a diagonal, cost-1 substitution.
	EdgeSub
	// EdgeIns advances j only: a base exists in B that A lacks.
	EdgeIns
	// EdgeDel advances i only: a base exists in A that B lacks.
	EdgeDel
)

// Op returns the CIGAR operator for the edge kind.
func (k EdgeKind) Op() byte {
	switch k {
	case EdgeMatch:
		return '='
	case EdgeSub:
		return 'X'
	case EdgeIns:
		return 'I'
	case EdgeDel:
		return 'D'
	default:
		return '?'
	}
}

// Cost is the unit cost of the edge kind.
func (k EdgeKind) Cost() int {
	if k == EdgeMatch {
		return 0
	}
	return 1
}

// Point is a position in a transformed coordinate plane (C2's output),
// where componentwise ordering ("p dominates q" iff p.X>=q.X && p.Y>=q.Y)
// implies reachability, per spec §4.2.
type Point struct {
	X, Y int32
}

// Dominates reports whether p >= q componentwise in the transformed
// plane, i.e. whether p can be reached from q along some chain of matches.
func (p Point) Dominates(q Point) bool {
	return p.X >= q.X && p.Y >= q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}
