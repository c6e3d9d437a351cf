package estimate

import (
	"sort"

	"github.com/cockroachdb/errors"

	"gonum.org/v1/gonum/stat"
)

// Summary reports location and spread of the sampled chain.
type Summary struct {
	// Estimate is the chain mean, the point estimate for a.
	Estimate float64 `json:"estimate"`
	// Median is the empirical 0.5 quantile of the chain.
	Median float64 `json:"median"`
	// SD is the chain standard deviation.
	SD float64 `json:"sd"`
	// ChainLength includes the seed entry.
	ChainLength int `json:"chainLength"`
}

// Summarize computes chain statistics. It fails if no chain exists.
func (e *Estimator) Summarize() (*Summary, error) {
	if e.chain == nil {
		return nil, errors.Wrap(ErrNoArtifact, "no chain, call RunMCMC first")
	}
	mean, sd := stat.MeanStdDev(e.chain, nil)
	sorted := append([]float64(nil), e.chain...)
	sort.Float64s(sorted)
	return &Summary{
		Estimate:    mean,
		Median:      stat.Quantile(0.5, stat.Empirical, sorted, nil),
		SD:          sd,
		ChainLength: len(e.chain),
	}, nil
}
