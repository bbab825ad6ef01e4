package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jvlmdr/go-perceptron/dataset"
)

var (
	generateOut    string
	generateN      int
	generateDim    int
	generateMargin float64
	generateScale  float64
	generateSeed   int64
	generateInit   bool
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random linearly-separable dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := generateSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			d, err := dataset.Generate(rand.New(rand.NewSource(seed)), generateN, generateDim, generateMargin, generateScale)
			if err != nil {
				return err
			}
			if generateInit {
				d.Init = make([]float64, generateDim+1)
			}
			if generateOut == "-" {
				return d.Encode(cmd.OutOrStdout())
			}
			return d.Save(generateOut)
		},
	}
	cmd.Flags().StringVarP(&generateOut, "out", "o", "-", "output path (- for stdout)")
	cmd.Flags().IntVar(&generateN, "n", 10, "examples per class")
	cmd.Flags().IntVar(&generateDim, "dim", 2, "feature dimension")
	cmd.Flags().Float64Var(&generateMargin, "margin", 0.1, "minimum distance from the separating hyperplane")
	cmd.Flags().Float64Var(&generateScale, "scale", 5, "half-width of the sampling cube")
	cmd.Flags().Int64Var(&generateSeed, "seed", 0, "random seed (0: time based)")
	cmd.Flags().BoolVar(&generateInit, "zero-init", false, "store all-zero initial weights")
	return cmd
}
