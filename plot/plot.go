// Package plot renders the estimation artifacts as PNG figures. Both
// figures mark the known true value (e) with a reference line.
package plot

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PNG writes figures to the configured files.
type PNG struct {
	GridFile  string
	ChainFile string
}

// Grid plots the posterior density against the candidate values, with a
// vertical reference line at e.
func (p *PNG) Grid(candidates, posteriors []float64) error {
	pl, err := plot.New()
	if err != nil {
		return err
	}
	pl.Title.Text = "Posterior over a uniformly sampled parameter space"
	pl.X.Label.Text = "parameter a"
	pl.Y.Label.Text = "P(a|x)"

	pts := make(plotter.XYs, len(candidates))
	for i := range candidates {
		pts[i].X = candidates[i]
		pts[i].Y = posteriors[i]
	}
	truth := plotter.XYs{
		{X: math.E, Y: floats.Min(posteriors)},
		{X: math.E, Y: floats.Max(posteriors)},
	}
	err = plotutil.AddLines(pl, "posterior", pts, "true value", truth)
	if err != nil {
		return err
	}
	return pl.Save(6*vg.Inch, 4*vg.Inch, p.GridFile)
}

// Chain plots the chain against the trial number, with a horizontal
// reference line at e.
func (p *PNG) Chain(chain []float64) error {
	pl, err := plot.New()
	if err != nil {
		return err
	}
	pl.Title.Text = "Values of a using Metropolis-Hastings"
	pl.X.Label.Text = "trial number"
	pl.Y.Label.Text = "a"

	pts := make(plotter.XYs, len(chain))
	for i := range chain {
		pts[i].X = float64(i + 1)
		pts[i].Y = chain[i]
	}
	truth := plotter.XYs{
		{X: 1, Y: math.E},
		{X: float64(len(chain)), Y: math.E},
	}
	err = plotutil.AddLines(pl, "chain", pts, "true value", truth)
	if err != nil {
		return err
	}
	return pl.Save(6*vg.Inch, 4*vg.Inch, p.ChainFile)
}
