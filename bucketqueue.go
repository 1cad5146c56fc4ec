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

// queueEntry is one open-set entry: a vertex together with the g and f
// it was pushed with. f may be stale by the time it is popped; astar.go
// re-checks it against the live heuristic before expanding (spec §4.6
// step 2).
type queueEntry struct {
	pos  Vertex
	g    int
	f    int
	hint heuristicHint
}

// bucketQueue is C5: a vector-of-buckets priority queue keyed by f=g+h.
// Buckets are indexed directly by f (no physical index shift); next
// advances as pop drains empty buckets and moves back down when push
// receives a smaller f. This follows the teacher's own pooled,
// append-heavy style for hot collections (wfa.go's poolOffsets) applied
// here to open-set buckets instead of WFA offsets.
//
// shiftCount is bookkeeping only: astar.go's retry-on-stale-heuristic
// step already guarantees correctness for entries whose f increased
// because of a prune (spec §4.6 step 2), so a shift never needs to
// touch bucket contents -- it is recorded so callers/stats can report
// how often the shortcut would have paid off.
type bucketQueue struct {
	layers     [][]queueEntry
	next       int
	shiftCount int
	shiftTotal int
}

func newBucketQueue() *bucketQueue {
	return &bucketQueue{}
}

// push is O(1) amortized: buckets grow lazily and next only moves down
// to accommodate a smaller f.
func (q *bucketQueue) push(e queueEntry) {
	if e.f < 0 {
		e.f = 0
	}
	for len(q.layers) <= e.f {
		q.layers = append(q.layers, nil)
	}
	q.layers[e.f] = append(q.layers[e.f], e)
	if e.f < q.next {
		q.next = e.f
	}
}

// pop returns the entry with the smallest f, LIFO within a bucket.
// Spec §5 explicitly allows any total order consistent with stack-LIFO
// inside a bucket; it only affects retry counts, not correctness.
func (q *bucketQueue) pop() (queueEntry, bool) {
	for q.next < len(q.layers) {
		bucket := q.layers[q.next]
		if len(bucket) == 0 {
			q.next++
			continue
		}
		e := bucket[len(bucket)-1]
		q.layers[q.next] = bucket[:len(bucket)-1]
		return e, true
	}
	return queueEntry{}, false
}

// shift records that a prune uniformly changed the effective f of
// not-yet-expanded vertices by delta (spec §4.5); see the bucketQueue
// doc comment for why no bucket contents need to move.
func (q *bucketQueue) shift(delta int) {
	if delta == 0 {
		return
	}
	q.shiftCount++
	q.shiftTotal += delta
}
