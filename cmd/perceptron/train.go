package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/jvlmdr/go-perceptron/dataset"
	"github.com/jvlmdr/go-perceptron/perceptron"
)

var errNotConverged = errors.New("perceptron did not converge")

var (
	trainData        string
	trainMaxSweeps   int
	trainSeed        int64
	trainInteractive bool
	trainQuiet       bool
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Learn perceptron weights for a dataset",
		Long: "Learn perceptron weights for a TOML dataset with keys neg, pos " +
			"and optional w_init and w_gen_feas. Exits with status 1 if the " +
			"examples are not all classified correctly.",
		Args: cobra.NoArgs,
		RunE: runTrainCmd,
	}
	cmd.Flags().StringVarP(&trainData, "data", "d", "", "dataset path")
	cmd.Flags().IntVar(&trainMaxSweeps, "max-sweeps", perceptron.DefaultMaxSweeps, "maximum number of sweeps")
	cmd.Flags().Int64Var(&trainSeed, "seed", 0, "seed for random initial weights (0: time based)")
	cmd.Flags().BoolVarP(&trainInteractive, "interactive", "i", false, "prompt before each sweep when stdin is a terminal")
	cmd.Flags().BoolVarP(&trainQuiet, "quiet", "q", false, "only print the final weights")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func runTrainCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyConfig(cmd, "max-sweeps", &trainMaxSweeps, fileCfg.Train.MaxSweeps)
	applyConfig(cmd, "seed", &trainSeed, fileCfg.Train.Seed)
	applyConfig(cmd, "interactive", &trainInteractive, fileCfg.Train.Interactive)

	log, err := newLogger(logLevel, zapcore.Lock(os.Stderr))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	defer log.Sync()

	d, err := dataset.Load(trainData)
	if err != nil {
		return err
	}
	interactive := trainInteractive && term.IsTerminal(int(os.Stdin.Fd()))
	if trainInteractive && !interactive {
		log.Warn("stdin is not a terminal, training headless")
	}

	out := cmd.OutOrStdout()
	var obs perceptron.Observer
	if !trainQuiet {
		obs = &reporter{w: out}
	}
	var stop perceptron.TerminateFunc
	if interactive {
		stop = prompt(os.Stdin, out)
	}
	res, err := train(d, trainMaxSweeps, trainSeed, obs, stop, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s after %d sweeps with %d mistakes\n", res.Status, res.Sweeps, res.Mistakes.Len())
	fmt.Fprintf(out, "weights:\t%s\n", formatVec(res.W))
	if !res.Converged() {
		return errNotConverged
	}
	return nil
}

func train(d *dataset.Dataset, maxSweeps int, seed int64, obs perceptron.Observer, stop perceptron.TerminateFunc, log *zap.Logger) (*perceptron.Result, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []perceptron.Option{
		perceptron.WithMaxSweeps(maxSweeps),
		perceptron.WithRand(rand.New(rand.NewSource(seed))),
		perceptron.WithLogger(log),
	}
	if len(d.Init) > 0 {
		opts = append(opts, perceptron.WithInitialWeights(d.Init))
	}
	if len(d.Feasible) > 0 {
		opts = append(opts, perceptron.WithFeasible(d.Feasible))
	}
	if obs != nil {
		opts = append(opts, perceptron.WithObserver(obs))
	}
	if stop != nil {
		opts = append(opts, perceptron.WithTerminate(stop))
	}
	neg, pos := d.Sets()
	log.Debug("loaded dataset", zap.Int("neg", len(d.Neg)), zap.Int("pos", len(d.Pos)), zap.Int64("seed", seed))
	return perceptron.Train(neg, pos, opts...)
}

