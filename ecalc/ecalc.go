/*

Ecalc estimates the base of natural logarithms from synthetic
standard-normal data by Bayesian inference. Two strategies are
implemented: brute-force evaluation of the posterior over a uniform grid,
and a Metropolis-Hastings MCMC sampler.

Evaluate the posterior over a grid and plot it:

	ecalc --plot=grid.png grid

Run the sampler and write a JSON summary:

	ecalc --json=run.json mcmc --trials=10000

To see all the options run:

	ecalc --help

*/
package main

import (
	"encoding/json"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"gonum.org/v1/gonum/floats"

	"github.com/statlab/ecalc/dist"
	"github.com/statlab/ecalc/estimate"
	"github.com/statlab/ecalc/plot"
	"github.com/statlab/ecalc/rnd"
)

// These variables are set during the compilation.
var githash = ""
var buildstamp = ""

// Logger settings.
var log = logging.MustGetLogger("ecalc")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	app = kingpin.New("ecalc", "Bayesian estimator for the base of natural logarithms")

	logLevel = app.Flag("log-level", "set logging level "+
		"(CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG)").Default("NOTICE").String()
	seed    = app.Flag("seed", "random generator seed, default time based").Default("-1").Int64()
	samples = app.Flag("samples", "number of synthetic observations").Default("100").Int()
	aMin    = app.Flag("min", "minimum value of a, must be > 1").Default("1.01").Float64()
	aMax    = app.Flag("max", "maximum value of a").Default("10").Float64()
	plotF   = app.Flag("plot", "write a PNG figure to this file").String()
	jsonF   = app.Flag("json", "write summary in JSON format to this file").String()

	gridCmd    = app.Command("grid", "evaluate the posterior over a uniform grid")
	gridPoints = gridCmd.Flag("points", "number of grid points").Default("1000").Int()

	mcmcCmd = app.Command("mcmc", "run the Metropolis-Hastings sampler")
	trials  = mcmcCmd.Flag("trials", "number of trials").Default("1000").Int()
)

// RunSummary stores run summary information.
type RunSummary struct {
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Seed is the seed used for random number generation initialization.
	Seed int64 `json:"seed"`
	// TotalTime is the computations time in seconds.
	TotalTime float64 `json:"time"`
	// Grid is the grid strategy result, if the grid command was run.
	Grid *GridSummary `json:"grid,omitempty"`
	// MCMC is the chain summary, if the mcmc command was run.
	MCMC *estimate.Summary `json:"mcmc,omitempty"`
}

// GridSummary stores the maximum of the grid-evaluated posterior.
type GridSummary struct {
	// Best is the candidate with the highest posterior value.
	Best float64 `json:"best"`
	// Posterior is the (unnormalized) posterior value at Best.
	Posterior float64 `json:"posterior"`
	// Points is the number of grid points evaluated.
	Points int `json:"points"`
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "ecalc")
	logging.SetLevel(level, "estimate")
	logging.SetLevel(level, "sample")

	if githash != "" {
		log.Infof("ecalc revision: %s, build time: %s", githash, buildstamp)
	}
	log.Info("Command line:", os.Args)

	if *seed == -1 {
		*seed = time.Now().UnixNano()
		log.Debug("Random seed from time")
	}
	log.Infof("Random seed=%v", *seed)

	random := rnd.New(uint64(*seed))
	source := dist.NewNormal(random.Src())

	start := time.Now()

	est, err := estimate.New(source, random, *samples, 0)
	if err != nil {
		log.Fatal(err)
	}

	summary := RunSummary{
		CommandLine: os.Args,
		Seed:        *seed,
	}

	pl := plot.PNG{GridFile: *plotF, ChainFile: *plotF}

	switch cmd {
	case gridCmd.FullCommand():
		if err := est.UniformSample(*aMin, *aMax, *gridPoints); err != nil {
			log.Fatal(err)
		}
		candidates, posteriors := est.Grid()
		best := floats.MaxIdx(posteriors)
		summary.Grid = &GridSummary{
			Best:      candidates[best],
			Posterior: posteriors[best],
			Points:    len(candidates),
		}
		log.Noticef("Best a=%v (posterior %v)", candidates[best], posteriors[best])
		if *plotF != "" {
			if err := est.Visualize(&pl, estimate.ModeGrid); err != nil {
				log.Fatal(err)
			}
		}
	case mcmcCmd.FullCommand():
		if err := est.RunMCMC(*aMin, *aMax, *trials); err != nil {
			log.Fatal(err)
		}
		s, err := est.Summarize()
		if err != nil {
			log.Fatal(err)
		}
		summary.MCMC = s
		log.Noticef("Chain mean a=%v (sd %v)", s.Estimate, s.SD)
		if *plotF != "" {
			if err := est.Visualize(&pl, estimate.ModeChain); err != nil {
				log.Fatal(err)
			}
		}
	}

	summary.TotalTime = time.Since(start).Seconds()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
