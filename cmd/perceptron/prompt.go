package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jvlmdr/go-perceptron/perceptron"
)

const promptText = "<Press enter to continue, q to quit.>"

// prompt returns a TerminateFunc that waits for a line on in
// before every sweep. Entering q or closing the input stops training.
func prompt(in io.Reader, out io.Writer) perceptron.TerminateFunc {
	r := bufio.NewReader(in)
	return func(int, perceptron.Mistakes, []float64) (bool, error) {
		fmt.Fprint(out, promptText)
		line, err := r.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(out)
			return true, nil
		}
		if err != nil {
			return false, err
		}
		return strings.TrimSpace(line) == "q", nil
	}
}
