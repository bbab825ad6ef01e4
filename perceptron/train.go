package perceptron

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// DefaultMaxSweeps bounds the number of sweeps when WithMaxSweeps is not given.
const DefaultMaxSweeps = 1000

// TerminateFunc is called after each evaluation that still has mistakes,
// before the next sweep. Returning true stops training with status Stopped.
// A non-nil error aborts training and is returned by Train.
type TerminateFunc func(sweep int, m Mistakes, w []float64) (bool, error)

// Status describes why training ended.
type Status int

const (
	// Converged means every example is classified correctly.
	Converged Status = iota
	// Stopped means the TerminateFunc asked to stop.
	Stopped
	// Exhausted means the sweep limit was reached with mistakes left.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Stopped:
		return "stopped"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of Train.
type Result struct {
	// W is the final weight vector. The last component is the bias.
	W      []float64
	Status Status
	// Sweeps is the number of update sweeps performed.
	Sweeps int
	// Mistakes made by W.
	Mistakes Mistakes
	// ErrHistory holds the mistake count of every evaluation,
	// starting with the initial weights.
	ErrHistory []int
	// DistHistory holds the distance from the weights of every evaluation
	// to the feasible reference. Empty if no reference was given.
	DistHistory []float64
}

// Converged reports whether training ended with zero mistakes.
func (r *Result) Converged() bool {
	return r.Status == Converged
}

// Snapshot is passed to an Observer once per evaluation.
// Its slices are shared with the trainer and must not be modified.
type Snapshot struct {
	Sweep       int
	Neg, Pos    [][]float64
	Mistakes    Mistakes
	ErrHistory  []int
	W           []float64
	DistHistory []float64
}

// Observer receives training progress, e.g. to print or plot it.
// Errors are logged and otherwise ignored.
type Observer interface {
	Observe(Snapshot) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Snapshot) error

func (f ObserverFunc) Observe(s Snapshot) error {
	return f(s)
}

type config struct {
	init      []float64
	feasible  []float64
	maxSweeps int
	terminate TerminateFunc
	observer  Observer
	rand      *rand.Rand
	logger    *zap.Logger
}

// Option configures Train.
type Option func(*config)

// WithInitialWeights sets the starting weights, bias last.
// Without it, or with an empty w, each component is drawn uniformly from [0, 1).
func WithInitialWeights(w []float64) Option {
	return func(c *config) { c.init = w }
}

// WithFeasible sets a reference weight vector known to separate the data.
// It is used only to record DistHistory. An empty w is ignored.
func WithFeasible(w []float64) Option {
	return func(c *config) { c.feasible = w }
}

// WithMaxSweeps limits the number of update sweeps.
func WithMaxSweeps(n int) Option {
	return func(c *config) { c.maxSweeps = n }
}

// WithTerminate installs a stop predicate.
func WithTerminate(f TerminateFunc) Option {
	return func(c *config) { c.terminate = f }
}

func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithRand sets the source for random initial weights.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rand = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Train learns the weights of a perceptron that separates
// the negative examples from the positive examples.
// The examples must not include the bias component;
// it is appended before training.
// All vectors must have the same dimension and neither set may be empty.
//
// Training alternates evaluation and sweeps until there are no mistakes,
// the TerminateFunc returns true or the sweep limit is reached.
// Not converging is reported through Result.Status, not as an error.
func Train(neg, pos Set, opts ...Option) (*Result, error) {
	c := config{maxSweeps: DefaultMaxSweeps}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.maxSweeps <= 0 {
		return nil, fmt.Errorf("%w: max sweeps must be positive, found %d", ErrInvalidInput, c.maxSweeps)
	}
	// Get the dimension of the vectors.
	m, err := Dimension(neg, pos)
	if err != nil {
		return nil, err
	}
	if len(c.feasible) > 0 {
		if err := CheckWeights("feasible", c.feasible, m+1); err != nil {
			return nil, err
		}
	}

	var w []float64
	if len(c.init) > 0 {
		if err := CheckWeights("initial", c.init, m+1); err != nil {
			return nil, err
		}
		w = append([]float64(nil), c.init...)
	} else {
		if c.rand == nil {
			c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		w = make([]float64, m+1)
		for i := range w {
			w[i] = c.rand.Float64()
		}
	}

	var (
		log  = c.logger
		xneg = Augment(neg)
		xpos = Augment(pos)
		res  = &Result{ErrHistory: []int{}, DistHistory: []float64{}}
	)
	log.Debug("training", zap.Int("neg", len(xneg)), zap.Int("pos", len(xpos)), zap.Int("dim", m), zap.Float64s("w", w))

	for sweep := 0; ; sweep++ {
		mistakes := Evaluate(xneg, xpos, w)
		res.ErrHistory = append(res.ErrHistory, mistakes.Len())
		if len(c.feasible) > 0 {
			res.DistHistory = append(res.DistHistory, floats.Distance(w, c.feasible, 2))
		}
		res.W, res.Sweeps, res.Mistakes = w, sweep, mistakes
		log.Debug("evaluated", zap.Int("sweep", sweep), zap.Int("mistakes", mistakes.Len()), zap.Float64s("w", w))

		if c.observer != nil {
			err := c.observer.Observe(Snapshot{
				Sweep:       sweep,
				Neg:         xneg,
				Pos:         xpos,
				Mistakes:    mistakes,
				ErrHistory:  res.ErrHistory,
				W:           append([]float64(nil), w...),
				DistHistory: res.DistHistory,
			})
			if err != nil {
				log.Warn("observer failed", zap.Int("sweep", sweep), zap.Error(err))
			}
		}

		if mistakes.Len() == 0 {
			res.Status = Converged
			break
		}
		if sweep >= c.maxSweeps {
			res.Status = Exhausted
			break
		}
		if c.terminate != nil {
			stop, err := c.terminate(sweep, mistakes, append([]float64(nil), w...))
			if err != nil {
				return nil, err
			}
			if stop {
				res.Status = Stopped
				break
			}
		}
		w = Sweep(xneg, xpos, w)
	}

	log.Info("training finished",
		zap.Stringer("status", res.Status),
		zap.Int("sweeps", res.Sweeps),
		zap.Int("mistakes", res.Mistakes.Len()),
		zap.Float64s("w", res.W),
	)
	return res, nil
}
