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
	"bytes"
	"strconv"
	"sync"
)

// CIGAR is the edit script Align returns: runs over the unit-cost
// alphabet of spec §6 ('=' match, 'X' substitution, 'I' insertion into
// A, 'D' deletion from A).
type CIGAR struct {
	Ops   []*CIGARRecord
	Score int

	proccessed bool
}

// CIGARRecord records one run: an operator repeated N times.
type CIGARRecord struct {
	N  uint32
	Op byte
}

// NewCIGAR returns a CIGAR from the object pool; astar.go builds one per
// search and hands it to the caller, so pooling only pays off across
// repeated Align calls (batch mode in cmd/astarpa-align) -- callers that
// keep a CIGAR around past that batch should not recycle it.
func NewCIGAR() *CIGAR {
	cigar := poolCIGAR.Get().(*CIGAR)
	cigar.reset()
	return cigar
}

func (cigar *CIGAR) reset() {
	for _, r := range cigar.Ops {
		poolCIGARRecord.Put(r)
	}
	cigar.Ops = cigar.Ops[:0]
	cigar.Score = 0
	cigar.proccessed = false
}

// RecycleCIGAR returns cigar to the pool. Do not use cigar afterward.
func RecycleCIGAR(cigar *CIGAR) {
	if cigar != nil {
		poolCIGAR.Put(cigar)
	}
}

var poolCIGAR = &sync.Pool{New: func() interface{} {
	return &CIGAR{Ops: make([]*CIGARRecord, 0, 128)}
}}

var poolCIGARRecord = &sync.Pool{New: func() interface{} {
	return &CIGARRecord{}
}}

// Add appends a single op.
func (cigar *CIGAR) Add(op byte) {
	cigar.AddN(op, 1)
}

// AddN appends op repeated n times. astar.go's backtrace calls this once
// per parent link, so a run of n consecutive greedy-diagonal matches
// becomes a single record without a merge pass.
func (cigar *CIGAR) AddN(op byte, n uint32) {
	if n == 0 {
		return
	}
	r := poolCIGARRecord.Get().(*CIGARRecord)
	r.Op = op
	r.N = n
	cigar.Ops = append(cigar.Ops, r)
}

// process reverses the backtrace order (astar.go appends target-to-source)
// into source-to-target order and merges adjacent same-op runs.
func (cigar *CIGAR) process() {
	if cigar.proccessed {
		return
	}
	s := &cigar.Ops

	var i, j int
	for i, j = 0, len(*s)-1; i < j; i, j = i+1, j-1 {
		(*s)[i], (*s)[j] = (*s)[j], (*s)[i]
	}

	if len(*s) == 0 {
		cigar.proccessed = true
		return
	}

	var opPre, op *CIGARRecord
	var newOp bool
	i, j = 0, 0
	opPre = (*s)[0]
	for i = 1; i < len(*s); i++ {
		op = (*s)[i]
		if op.Op == opPre.Op {
			opPre.N += op.N
			poolCIGARRecord.Put(op)
			if !newOp {
				j = i
				newOp = true
			}
			continue
		}
		if newOp {
			(*s)[j] = op
			j++
		}
		opPre = op
	}
	if j > 0 {
		*s = (*s)[:j]
	}

	cigar.proccessed = true
}

// CIGAR renders the CIGAR string ("<N><op>" pairs), spec §6.
func (cigar *CIGAR) CIGAR() string {
	cigar.process()
	buf := poolBytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()

	for _, op := range cigar.Ops {
		buf.WriteString(strconv.Itoa(int(op.N)))
		buf.WriteByte(op.Op)
	}

	text := buf.String()
	poolBytesBuffer.Put(buf)
	return text
}

// String is an alias of CIGAR for fmt.Stringer callers.
func (cigar *CIGAR) String() string { return cigar.CIGAR() }

// Cost is the sum of the non-'=' run lengths; equal to Score for any
// CIGAR Align returns (spec §8, P2/P5).
func (cigar *CIGAR) Cost() int {
	cigar.process()
	var cost int
	for _, op := range cigar.Ops {
		if op.Op != '=' {
			cost += int(op.N)
		}
	}
	return cost
}

// Apply interprets the CIGAR against a and b, returning the slice of b
// it consumes -- the round-trip check of spec §8, P2 ("the CIGAR,
// interpreted against A, reconstructs B").
func (cigar *CIGAR) Apply(a, b []byte) ([]byte, error) {
	cigar.process()
	var out []byte
	var i, j int
	for _, op := range cigar.Ops {
		n := int(op.N)
		switch op.Op {
		case '=', 'X':
			if i+n > len(a) || j+n > len(b) {
				return nil, invalidParams("cigar run %d%c overruns input", op.N, op.Op)
			}
			out = append(out, b[j:j+n]...)
			i += n
			j += n
		case 'I':
			if j+n > len(b) {
				return nil, invalidParams("cigar run %dI overruns b", op.N)
			}
			out = append(out, b[j:j+n]...)
			j += n
		case 'D':
			if i+n > len(a) {
				return nil, invalidParams("cigar run %dD overruns a", op.N)
			}
			i += n
		default:
			return nil, invalidParams("unknown cigar operator %q", op.Op)
		}
	}
	return out, nil
}

// Alignment returns the formatted Query/marker/Target strings for
// display, adapted from the teacher's Alignment for the '='/'X' match
// alphabet (no clipping/'H' operator).
func (cigar *CIGAR) Alignment(a, b []byte) (Q, M, T []byte) {
	cigar.process()
	var v, h int
	for _, op := range cigar.Ops {
		var n int
		for n = 0; n < int(op.N); n++ {
			switch op.Op {
			case '=':
				Q = append(Q, a[v])
				M = append(M, '|')
				T = append(T, b[h])
				v++
				h++
			case 'X':
				Q = append(Q, a[v])
				M = append(M, ' ')
				T = append(T, b[h])
				v++
				h++
			case 'I':
				Q = append(Q, '-')
				M = append(M, ' ')
				T = append(T, b[h])
				h++
			case 'D':
				Q = append(Q, a[v])
				M = append(M, ' ')
				T = append(T, '-')
				v++
			}
		}
	}
	return Q, M, T
}

var poolBytesBuffer = &sync.Pool{New: func() interface{} {
	return bytes.NewBuffer(make([]byte, 0, 1024))
}}

// ParseCIGAR parses a "<N><op><N><op>..." string, the inverse of
// CIGAR.CIGAR (spec §8, R1: Parse(format(cigar)) == cigar). Unlike Add/
// AddN it appends directly in source-to-target order, so it marks the
// result already processed instead of running it through the
// backtrace's reverse-then-merge step.
func ParseCIGAR(s string) (*CIGAR, error) {
	cigar := NewCIGAR()
	var n uint32
	var sawDigit bool
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			n = n*10 + uint32(ch-'0')
			sawDigit = true
		case ch == '=' || ch == 'X' || ch == 'I' || ch == 'D':
			if !sawDigit {
				return nil, invalidParams("cigar %q: operator %q without a preceding run length", s, ch)
			}
			if l := len(cigar.Ops); l > 0 && cigar.Ops[l-1].Op == ch {
				cigar.Ops[l-1].N += n
			} else {
				cigar.AddN(ch, n)
			}
			if ch != '=' {
				cigar.Score += int(n)
			}
			n = 0
			sawDigit = false
		default:
			return nil, invalidParams("cigar %q: unexpected byte %q", s, ch)
		}
	}
	if sawDigit {
		return nil, invalidParams("cigar %q: trailing run length without an operator", s)
	}
	cigar.proccessed = true
	return cigar, nil
}
