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

import "sort"

// DefaultFanout is the max number of hits a single seed may contribute
// before it is dropped from the arrow set (spec §4.1's "configurable
// fan-out"). The seed's potential still counts toward P; admissibility
// only improves by dropping arrows, never breaks.
const DefaultFanout = 64

// Match is an optimal alignment of one seed of A against a substring of
// B, spanning at most one edit (spec §3, "Match").
type Match struct {
	Start Vertex
	End   Vertex
	Cost  int
}

// MatchIndex is the immutable, once-built index of seed occurrences
// used by the heuristic (spec §3, "Match index"). It also carries the
// potential table P(i) used by the heuristic.
type MatchIndex struct {
	K, R         int
	lenA, lenB   int
	Matches      []Match
	byStartRow   map[int][]int
	Potential    []int
	seeds        []Seed
	Fanout       int
	DroppedSeeds int
}

// PotentialAt returns P(i), the sum of seed potentials for seeds
// starting at or after row i.
func (m *MatchIndex) PotentialAt(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(m.Potential) {
		return 0
	}
	return m.Potential[i]
}

// MatchesFrom returns the matches starting at seed row i (i must be a
// seed start; see Seeds).
func (m *MatchIndex) MatchesFrom(row int) []Match {
	idxs := m.byStartRow[row]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]Match, len(idxs))
	for n, idx := range idxs {
		out[n] = m.Matches[idx]
	}
	return out
}

// Seeds returns the fixed-length seeds A was split into.
func (m *MatchIndex) Seeds() []Seed { return m.seeds }

// buildMatchIndex runs C1: it splits A into seeds and finds their
// occurrences in B within Hamming/edit budget r-1 (spec §4.1).
func buildMatchIndex(a, b []byte, k, r, fanout int) *MatchIndex {
	if fanout <= 0 {
		fanout = DefaultFanout
	}
	seeds := seedsOf(a, k)
	idx := &MatchIndex{
		K: k, R: r,
		lenA: len(a), lenB: len(b),
		byStartRow: make(map[int][]int, len(seeds)),
		Potential:  potentialTable(len(a), k, r),
		seeds:      seeds,
		Fanout:     fanout,
	}

	exact := buildKmerIndex(b, k)

	var shrink, grow map[string][]int
	var alphabet []byte
	if r >= 2 {
		if k > 1 {
			shrink = buildKmerIndex(b, k-1)
		}
		grow = buildKmerIndex(b, k+1)
		alphabet = distinctBytes(a, b)
	}

	for _, s := range seeds {
		seed := a[s.Start:s.End]
		var found []Match

		for _, j := range exact[string(seed)] {
			found = append(found, Match{
				Start: Vertex{I: int32(s.Start), J: int32(j)},
				End:   Vertex{I: int32(s.End), J: int32(j + k)},
				Cost:  0,
			})
		}

		if r >= 2 {
			muts := mutate(seed, alphabet)
			for _, sub := range muts.substitutions {
				for _, j := range exact[sub] {
					found = append(found, Match{
						Start: Vertex{I: int32(s.Start), J: int32(j)},
						End:   Vertex{I: int32(s.End), J: int32(j + k)},
						Cost:  1,
					})
				}
			}
			if shrink != nil {
				for _, del := range muts.deletions {
					for _, j := range shrink[del] {
						found = append(found, Match{
							Start: Vertex{I: int32(s.Start), J: int32(j)},
							End:   Vertex{I: int32(s.End), J: int32(j + k - 1)},
							Cost:  1,
						})
					}
				}
			}
			for _, ins := range muts.insertions {
				for _, j := range grow[ins] {
					found = append(found, Match{
						Start: Vertex{I: int32(s.Start), J: int32(j)},
						End:   Vertex{I: int32(s.End), J: int32(j + k + 1)},
						Cost:  1,
					})
				}
			}
		}

		if len(found) > fanout {
			idx.DroppedSeeds++
			continue
		}
		for _, mtch := range found {
			idx.byStartRow[s.Start] = append(idx.byStartRow[s.Start], len(idx.Matches))
			idx.Matches = append(idx.Matches, mtch)
		}
	}

	sort.Slice(idx.Matches, func(i, j int) bool {
		a, b := idx.Matches[i].Start, idx.Matches[j].Start
		if a.I != b.I {
			return a.I < b.I
		}
		return a.J < b.J
	})
	// byStartRow held indices into the pre-sort order; rebuild.
	idx.byStartRow = make(map[int][]int, len(seeds))
	for n, mtch := range idx.Matches {
		row := int(mtch.Start.I)
		idx.byStartRow[row] = append(idx.byStartRow[row], n)
	}

	return idx
}

// buildKmerIndex maps every length-l substring of s to the list of
// positions at which it occurs.
func buildKmerIndex(s []byte, l int) map[string][]int {
	idx := make(map[string][]int)
	if l <= 0 || l > len(s) {
		return idx
	}
	for j := 0; j+l <= len(s); j++ {
		key := string(s[j : j+l])
		idx[key] = append(idx[key], j)
	}
	return idx
}

func distinctBytes(seqs ...[]byte) []byte {
	seen := make(map[byte]bool)
	var out []byte
	for _, s := range seqs {
		for _, c := range s {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

type mutations struct {
	deletions     []string
	substitutions []string
	insertions    []string
}

// mutate enumerates the 1-edit neighborhood of seed over the observed
// alphabet: |seed| substitutions per symbol (excluding identity),
// |seed| single-character deletions, and |seed|+1 single-character
// insertions per symbol (spec §4.1: "O(k*|alphabet|) variants").
func mutate(seed []byte, alphabet []byte) mutations {
	k := len(seed)
	var out mutations
	seenSub := make(map[string]bool)
	for i := 0; i < k; i++ {
		for _, c := range alphabet {
			if c == seed[i] {
				continue
			}
			buf := make([]byte, k)
			copy(buf, seed)
			buf[i] = c
			key := string(buf)
			if !seenSub[key] {
				seenSub[key] = true
				out.substitutions = append(out.substitutions, key)
			}
		}
	}

	seenDel := make(map[string]bool)
	for i := 0; i < k; i++ {
		buf := make([]byte, 0, k-1)
		buf = append(buf, seed[:i]...)
		buf = append(buf, seed[i+1:]...)
		key := string(buf)
		if !seenDel[key] {
			seenDel[key] = true
			out.deletions = append(out.deletions, key)
		}
	}

	seenIns := make(map[string]bool)
	for i := 0; i <= k; i++ {
		for _, c := range alphabet {
			buf := make([]byte, 0, k+1)
			buf = append(buf, seed[:i]...)
			buf = append(buf, c)
			buf = append(buf, seed[i:]...)
			key := string(buf)
			if !seenIns[key] {
				seenIns[key] = true
				out.insertions = append(out.insertions, key)
			}
		}
	}

	return out
}
