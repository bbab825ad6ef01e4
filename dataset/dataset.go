// Package dataset reads, writes and generates two-class training sets
// for the perceptron package.
package dataset

import (
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/jvlmdr/go-perceptron/perceptron"
)

// Dataset is a two-class set of examples without the bias component.
// Init and Feasible are optional weight vectors with the bias last.
// An empty vector counts as not given.
type Dataset struct {
	Neg      [][]float64 `toml:"neg"`
	Pos      [][]float64 `toml:"pos"`
	Init     []float64   `toml:"w_init,omitempty"`
	Feasible []float64   `toml:"w_gen_feas,omitempty"`
}

// Sets returns the negative and positive examples.
func (d *Dataset) Sets() (neg, pos perceptron.Slice) {
	return perceptron.Slice(d.Neg), perceptron.Slice(d.Pos)
}

// Dim returns the feature dimension, or 0 if there are no negative examples.
func (d *Dataset) Dim() int {
	return perceptron.Slice(d.Neg).Dim()
}

// Validate checks that both classes are non-empty,
// every vector has the same finite dimension
// and the optional weight vectors have one more component.
func (d *Dataset) Validate() error {
	neg, pos := d.Sets()
	m, err := perceptron.Dimension(neg, pos)
	if err != nil {
		return errors.Wrap(err, "examples")
	}
	if len(d.Init) > 0 {
		if err := perceptron.CheckWeights("initial", d.Init, m+1); err != nil {
			return errors.Wrap(err, "w_init")
		}
	}
	if len(d.Feasible) > 0 {
		if err := perceptron.CheckWeights("feasible", d.Feasible, m+1); err != nil {
			return errors.Wrap(err, "w_gen_feas")
		}
	}
	return nil
}

// Decode reads a TOML dataset from r and validates it.
func Decode(r io.Reader) (*Dataset, error) {
	d := new(Dataset)
	if _, err := toml.NewDecoder(r).Decode(d); err != nil {
		return nil, errors.Wrap(err, "decode dataset")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads a TOML dataset from a file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()
	d, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}

// Encode writes d to w as TOML.
func (d *Dataset) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(d), "encode dataset")
}

// Save writes d to a file, replacing it if it exists.
func (d *Dataset) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create dataset")
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "save %s", path)
}

// maxAttempts bounds rejection sampling per requested point.
const maxAttempts = 1000

// Generate draws n negative and n positive examples of dimension dim
// uniformly from the cube [-scale, scale]^dim, split by a random
// hyperplane. Points closer than margin to the hyperplane are rejected.
// The hyperplane is stored in Feasible with unit normal.
func Generate(rng *rand.Rand, n, dim int, margin, scale float64) (*Dataset, error) {
	if n <= 0 || dim <= 0 {
		return nil, errors.Errorf("need positive count and dimension: n %d, dim %d", n, dim)
	}
	if margin < 0 || scale <= 0 {
		return nil, errors.Errorf("need non-negative margin and positive scale: margin %g, scale %g", margin, scale)
	}
	// Random direction and an offset no further than half the scale
	// from the origin, so both sides of the cube are populated.
	u := randVec(rng, dim, 1)
	floats.Scale(1/floats.Norm(u, 2), u)
	bias := scale * (rng.Float64() - 0.5)
	w := append(u, bias)

	d := &Dataset{Feasible: w}
	for attempt := 0; len(d.Neg) < n || len(d.Pos) < n; attempt++ {
		if attempt >= 2*n*maxAttempts {
			return nil, errors.Errorf("margin %g too large: found %d negative and %d positive examples", margin, len(d.Neg), len(d.Pos))
		}
		x := make([]float64, dim)
		for i := range x {
			x[i] = scale * (2*rng.Float64() - 1)
		}
		a := floats.Dot(x, u) + bias
		switch {
		case a <= -margin && len(d.Neg) < n:
			d.Neg = append(d.Neg, x)
		case a >= margin && len(d.Pos) < n:
			d.Pos = append(d.Pos, x)
		}
	}
	return d, nil
}

func randVec(rng *rand.Rand, n int, sigma float64) []float64 {
	x := make([]float64, n)
	for {
		for i := range x {
			x[i] = sigma * rng.NormFloat64()
		}
		if floats.Norm(x, 2) > math.SmallestNonzeroFloat64 {
			return x
		}
	}
}
