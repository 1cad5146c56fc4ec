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

// ErrorKind classifies the errors Align can return.
type ErrorKind int

const (
	// InvalidParams means a Params field failed validation before any
	// work was done.
	InvalidParams ErrorKind = iota
	// Overflow means an input sequence or the resulting edit distance
	// does not fit the internal width used by the search.
	Overflow
	// Internal means an invariant check failed. Only ever raised in
	// debug builds (see debugAssert).
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidParams:
		return "InvalidParams"
	case Overflow:
		return "Overflow"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// AlignError is returned by Align and NewMatchIndex for the three error
// kinds of spec §7. It carries no allocation-heavy payload so it can be
// constructed before any search state exists.
type AlignError struct {
	Kind ErrorKind
	Msg  string
}

func (e *AlignError) Error() string {
	return fmt.Sprintf("astarpa: %s: %s", e.Kind, e.Msg)
}

func invalidParams(format string, args ...interface{}) *AlignError {
	return &AlignError{Kind: InvalidParams, Msg: fmt.Sprintf(format, args...)}
}

func overflow(format string, args ...interface{}) *AlignError {
	return &AlignError{Kind: Overflow, Msg: fmt.Sprintf(format, args...)}
}

// maxInputLen is the width guard from spec §7 ("input longer than 2^32").
// Vertex/Point coordinates are signed 32-bit, so the guard is bounded by
// their range (1<<31 - 1) rather than the nominal 2^32, or a longer input
// would overflow I/J before this check ever has a chance to reject it.
const maxInputLen = 1<<31 - 1

// debugAssert panics with an Internal AlignError when built with the
// astarpa_debug tag; it is a no-op otherwise (spec §7: "Fatal in debug;
// disabled in release").
func debugAssert(cond bool, format string, args ...interface{}) {
	if debugAssertsEnabled && !cond {
		panic(&AlignError{Kind: Internal, Msg: fmt.Sprintf(format, args...)})
	}
}
