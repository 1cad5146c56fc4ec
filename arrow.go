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

// Arrow is a match, expressed as a point in the transformed plane with a
// length (spec §3, "Arrow"): the score a chain collects by using this
// match is len(p) = r - cost.
type Arrow struct {
	Start Point
	End   Point
	Len   int
	Match Match
}

// buildArrows runs the arrow half of C2: every match becomes a point
// with a length. A match is only kept when it still lies on a path that
// can reach the target, mirroring the transform_filter check in the
// original matches builder (`transform(m.start) <= transform(target)`).
//
// SH and GCSH fold potential into the transform itself, so that check is
// applied in the transformed plane directly. Plain CSH (no gap cost) is
// different: its own source (`chained_seed.rs`, `use_gap_cost=false`)
// runs this admissibility check with the *identity* transform, not the
// (j-i, P(i)) plane used for scoring -- under the identity transform
// every match contained in A and B trivially satisfies start <= target,
// so the check can never reject a CSH match. Reusing the (j-i, P(i))
// transform for this check instead (comparing against a target point
// whose potential is always 0) would reject every CSH match, since every
// match start still has positive remaining potential; that emptied the
// CSH contour set entirely.
func buildArrows(idx *MatchIndex, kind Heuristic) []Arrow {
	if kind == NoHeuristic {
		return nil
	}
	target := Vertex{I: int32(idx.lenA), J: int32(idx.lenB)}
	transformedTarget := transformPoint(target, 0, kind)
	arrows := make([]Arrow, 0, len(idx.Matches))
	for _, m := range idx.Matches {
		start := transformPoint(m.Start, idx.PotentialAt(int(m.Start.I)), kind)
		if kind == CSH {
			if m.Start.I > target.I || m.Start.J > target.J {
				continue
			}
		} else if !transformedTarget.Dominates(start) {
			continue
		}
		end := transformPoint(m.End, idx.PotentialAt(int(m.End.I)), kind)
		arrows = append(arrows, Arrow{
			Start: start,
			End:   end,
			Len:   idx.R - m.Cost,
			Match: m,
		})
	}
	return arrows
}
