package perceptron

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSweepSymmetricPair(t *testing.T) {
	neg := Augment(Slice{{-1, -1}})
	pos := Augment(Slice{{1, 1}})
	w := Sweep(neg, pos, []float64{0, 0, 0})
	assert.Equal(t, []float64{1, 1, -1}, w)
	assert.Equal(t, 0, Evaluate(neg, pos, w).Len())
}

func TestSweepAppliesCorrectionsInOrder(t *testing.T) {
	neg := Augment(Slice{{-2, 0}})
	pos := Augment(Slice{{2, 0}})
	w0 := []float64{0, 0, 0}
	w := Sweep(neg, pos, w0)
	// The negative correction gives (2, 0, -1), after which the
	// positive example has activation 3 and is left alone.
	assert.Equal(t, []float64{2, 0, -1}, w)
	assert.Equal(t, []float64{0, 0, 0}, w0)
}

func TestSweepIsOnline(t *testing.T) {
	// Two identical negatives: after the first correction
	// the second one is already classified correctly.
	neg := Augment(Slice{{1, 0}, {1, 0}})
	w := Sweep(neg, nil, []float64{0, 0, 0})
	assert.Equal(t, []float64{-1, 0, -1}, w)
	assert.NotEqual(t, []float64{-2, 0, -2}, w)
}

func TestSweepCorrectsNaNActivation(t *testing.T) {
	x := []float64{1, 1, 1}
	w := []float64{math.Inf(1), math.Inf(-1), 0}
	assert.NotEqual(t, w, Sweep([][]float64{x}, nil, w))
	assert.NotEqual(t, w, Sweep(nil, [][]float64{x}, w))
}

func TestSweepMovesMistakeTowardCorrectSign(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		x := []float64{rng.NormFloat64(), rng.NormFloat64(), 1}
		w := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		before := Activation(x, w)
		sq := floats.Dot(x, x)

		if before >= 0 {
			after := Activation(x, Sweep([][]float64{x}, nil, w))
			assert.InDelta(t, before-sq, after, 1e-9)
			assert.Less(t, after, before)
		} else {
			after := Activation(x, Sweep(nil, [][]float64{x}, w))
			assert.InDelta(t, before+sq, after, 1e-9)
			assert.Greater(t, after, before)
		}
	}
}

func TestMistakeBound(t *testing.T) {
	neg := Slice{{-2, 0}}
	pos := Slice{{2, 0}}
	// R^2 = 5, gamma = 2.
	b, err := MistakeBound(neg, pos, []float64{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.25, b, 1e-12)

	_, err = MistakeBound(neg, pos, []float64{0, 1, 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = MistakeBound(neg, pos, []float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = MistakeBound(neg, pos, []float64{1, 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
