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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/astarpa-go/astarpa"
)

// alignFile reads sequence pairs from path -- two consecutive lines per
// pair, '>' query then '<' target -- and calls fn on each, the same
// input convention the teacher's benchmark command uses.
func alignFile(path string, fn func(q, t string) error) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		q := scanner.Text()
		if !scanner.Scan() {
			break
		}
		t := scanner.Text()
		if len(q) < 1 || len(t) < 1 {
			return fmt.Errorf("%s: malformed pair line", path)
		}
		if err := fn(q[1:], t[1:]); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func alignAndReport(w io.Writer, log *zap.SugaredLogger, a, b []byte, p astarpa.Params, pretty bool) error {
	cost, cigar, stats, err := astarpa.AlignWithStats(a, b, p)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "cost    %d\n", cost)
	fmt.Fprintf(w, "cigar   %s\n", cigar.CIGAR())
	if pretty {
		Q, M, T := cigar.Alignment(a, b)
		fmt.Fprintf(w, "query   %s\n", Q)
		fmt.Fprintf(w, "        %s\n", M)
		fmt.Fprintf(w, "target  %s\n", T)
	}
	fmt.Fprintln(w)

	log.Infow("aligned",
		"run_id", stats.RunID.String(),
		"cost", stats.Cost,
		"expanded", stats.Expanded,
		"explored", stats.Explored,
		"double_expanded", stats.DoubleExpanded,
		"retries", stats.Retries,
		"prunes", stats.Prunes,
	)
	return nil
}
