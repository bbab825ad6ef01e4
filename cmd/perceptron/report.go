package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jvlmdr/go-perceptron/perceptron"
)

// reporter prints the progress of each evaluation.
type reporter struct {
	w io.Writer
}

func (r *reporter) Observe(s perceptron.Snapshot) error {
	if _, err := fmt.Fprintf(r.w, "Number of errors in iteration %d:\t%d\n", s.Sweep, s.Mistakes.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "weights:\t%s\n", formatVec(s.W)); err != nil {
		return err
	}
	if n := len(s.DistHistory); n > 0 {
		if _, err := fmt.Fprintf(r.w, "distance to feasible:\t%.6g\n", s.DistHistory[n-1]); err != nil {
			return err
		}
	}
	return nil
}

func formatVec(x []float64) string {
	s := make([]string, len(x))
	for i, v := range x {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(s, " ") + "]"
}
