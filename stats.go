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

import "github.com/google/uuid"

// Stats reports how much work AlignWithStats did, mirroring the
// counters the original AStarPA implementation's AStarStats keeps
// (expanded/explored/double-expanded/retries), plus the pruning and
// bucket-queue-shift counts specific to this heuristic maintenance
// scheme.
//
// RunID lets a caller that aggregates many alignments -- the CLI's
// batch mode -- correlate a log line back to the Align call that
// produced it.
type Stats struct {
	RunID uuid.UUID

	// Cost is the returned edit distance, duplicated here so a Stats
	// value is self-describing when logged on its own.
	Cost int

	// Expanded counts vertices popped from the open set and processed
	// (greedy extension + edge relaxation).
	Expanded int
	// Explored counts distinct vertices ever assigned a g value.
	Explored int
	// DoubleExpanded counts expansions of a vertex that had already been
	// expanded before. For a
	// perfectly consistent heuristic this stays at 0; a nonzero count
	// is a diagnostic, not a correctness failure, since retry-on-stale
	// heuristic (spec §4.6 step 2) still guarantees the returned cost
	// is optimal.
	DoubleExpanded int
	// Retries counts pop events where the heuristic had tightened since
	// the entry was pushed, requiring a requeue instead of an expand.
	Retries int
	// Prunes counts successful heuristic tightenings.
	Prunes int
	// ShiftCount and ShiftTotal report how often, and by how much in
	// aggregate, a prune lowered the heuristic's own upper bound on
	// itself (spec §4.5's "shift").
	ShiftCount int
	ShiftTotal int
}
