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

// Seed is a fixed-length substring of A, A[start, start+k), that seeds
// the match search. There are len(A)/k seeds; a trailing partial chunk
// shorter than k is not seeded.
type Seed struct {
	Start int
	End   int
}

// seedsOf splits A into floor(len(A)/k) disjoint seeds of length k.
func seedsOf(a []byte, k int) []Seed {
	n := len(a) / k
	seeds := make([]Seed, n)
	for i := 0; i < n; i++ {
		seeds[i] = Seed{Start: i * k, End: i*k + k}
	}
	return seeds
}

// potentialTable returns P(i) for i in [0, len(a)]: the sum of seed
// potentials r over seeds whose start is >= i (spec §3, "Potential
// function"). It is a non-increasing step function of i, dropping by r
// every k positions.
func potentialTable(n, k, r int) []int {
	numSeeds := n / k
	pot := make([]int, n+1)
	for i := 0; i <= n; i++ {
		startIdx := (i + k - 1) / k
		if startIdx > numSeeds {
			startIdx = numSeeds
		}
		pot[i] = r * (numSeeds - startIdx)
	}
	return pot
}
