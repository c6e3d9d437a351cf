// Package estimate orchestrates the two estimation strategies over a
// fixed synthetic observation set: exhaustive evaluation of the posterior
// on a uniform grid, and Metropolis-Hastings sampling.
package estimate

import (
	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/statlab/ecalc/posterior"
	"github.com/statlab/ecalc/rnd"
	"github.com/statlab/ecalc/sample"
)

var log = logging.MustGetLogger("estimate")

// Default construction parameters.
const (
	DefaultSamples = 100
	DefaultTrials  = 1000
)

// DataSource supplies independent identically distributed draws for the
// observation set.
type DataSource interface {
	Generate(n int) []float64
}

// Plotter renders estimation artifacts. The estimator never depends on
// how or where the figures are produced.
type Plotter interface {
	Grid(candidates, posteriors []float64) error
	Chain(chain []float64) error
}

// Mode selects which artifact Visualize renders.
type Mode int

const (
	ModeGrid Mode = iota
	ModeChain
)

// ErrNoArtifact is returned by Visualize and Summary when the requested
// result has not been produced yet.
var ErrNoArtifact = errors.New("artifact not available")

// Estimator owns the observation set, the grid result and the chain. The
// chain carries the sampler state between RunMCMC calls; RestartChain
// discards it. A single Estimator must not be used concurrently.
type Estimator struct {
	model  *posterior.Model
	mh     *sample.MH
	trials int

	data       []float64
	candidates []float64
	posteriors []float64
	chain      sample.Chain
}

// New draws samples observations from src and prepares both strategies.
// Passing zero for samples or trials selects the defaults.
func New(src DataSource, random rnd.Source, samples, trials int) (*Estimator, error) {
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 0 {
		return nil, errors.Newf("sample count must be a positive integer, got %d", samples)
	}
	if trials == 0 {
		trials = DefaultTrials
	}
	if err := sample.CheckTrials(trials); err != nil {
		return nil, err
	}
	data := src.Generate(samples)
	model, err := posterior.New(data)
	if err != nil {
		return nil, err
	}
	log.Infof("Generated %d observations", len(data))
	return &Estimator{
		model:  model,
		mh:     sample.NewMH(model, random),
		trials: trials,
		data:   data,
	}, nil
}

// Data returns the observation set. Callers must not modify it.
func (e *Estimator) Data() []float64 {
	return e.data
}

// resolveTrials applies the stored default for a zero count and records
// an explicit count as the new default.
func (e *Estimator) resolveTrials(trials int) (int, error) {
	if trials == 0 {
		trials = e.trials
	}
	if err := sample.CheckTrials(trials); err != nil {
		return 0, err
	}
	e.trials = trials
	return trials, nil
}

// UniformSample evaluates the posterior over a uniform grid of points
// candidates spanning [aMin, aMax] and stores the result, replacing any
// previous grid result. A zero points count uses the stored default.
func (e *Estimator) UniformSample(aMin, aMax float64, points int) error {
	if err := sample.CheckRange(aMin, aMax); err != nil {
		return err
	}
	points, err := e.resolveTrials(points)
	if err != nil {
		return err
	}
	candidates, posteriors, err := sample.Grid(e.model, aMin, aMax, points)
	if err != nil {
		return err
	}
	e.candidates, e.posteriors = candidates, posteriors
	log.Infof("Evaluated posterior at %d grid points over [%v, %v]", points, aMin, aMax)
	return nil
}

// RunMCMC performs trials Metropolis-Hastings steps, extending the
// current chain, or seeding a fresh one from [aMin, aMax] after a restart
// or on the first call. A zero trials count uses the stored default. On a
// degenerate likelihood the trials completed so far are kept.
func (e *Estimator) RunMCMC(aMin, aMax float64, trials int) error {
	if err := sample.CheckRange(aMin, aMax); err != nil {
		return err
	}
	trials, err := e.resolveTrials(trials)
	if err != nil {
		return err
	}
	chain, err := e.mh.Run(trials, aMin, aMax, e.chain)
	e.chain = chain
	if err != nil {
		return err
	}
	log.Infof("Chain length is now %d", len(e.chain))
	return nil
}

// RestartChain discards the chain so that the next RunMCMC call draws a
// fresh seed.
func (e *Estimator) RestartChain() {
	e.chain = nil
}

// Grid returns the stored grid result, or nil slices if UniformSample has
// not run yet.
func (e *Estimator) Grid() (candidates, posteriors []float64) {
	return e.candidates, e.posteriors
}

// Chain returns the stored chain, or nil if no sampling run happened
// since construction or the last restart.
func (e *Estimator) Chain() sample.Chain {
	return e.chain
}

// Visualize renders the requested artifact with pl.
func (e *Estimator) Visualize(pl Plotter, mode Mode) error {
	switch mode {
	case ModeGrid:
		if e.candidates == nil {
			return errors.Wrap(ErrNoArtifact, "no grid result, call UniformSample first")
		}
		return pl.Grid(e.candidates, e.posteriors)
	case ModeChain:
		if e.chain == nil {
			return errors.Wrap(ErrNoArtifact, "no chain, call RunMCMC first")
		}
		return pl.Chain(e.chain)
	}
	return errors.Newf("unknown visualization mode %d", mode)
}
