package sample

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/statlab/ecalc/rnd"
)

var log = logging.MustGetLogger("sample")

// Proposal window for the sampler. The window is fixed and independent of
// the seeding range passed to Run; [aMin, aMax] only draws the initial
// state of a fresh chain.
const (
	ProposalMin = 1
	ProposalMax = 10
)

// Chain is the ordered sequence of parameter values produced by
// successive trials, including repeated entries from rejected proposals.
// A fresh chain additionally starts with its seed entry.
type Chain []float64

// Last returns the most recent value of the chain.
func (c Chain) Last() float64 {
	return c[len(c)-1]
}

// MH is a Metropolis-Hastings sampler over a scalar target density.
type MH struct {
	target Target
	rnd    rnd.Source

	// AccPeriod is the number of trials between acceptance rate reports.
	AccPeriod int
	Quiet     bool
}

// NewMH creates a sampler for target drawing randomness from src.
func NewMH(target Target, src rnd.Source) *MH {
	return &MH{
		target:    target,
		rnd:       src,
		AccPeriod: 100,
	}
}

// Run performs trials Metropolis-Hastings steps and returns the extended
// chain. With an empty chain the seed is drawn uniformly from
// [aMin, aMax] and stored as the first entry, so the result has
// trials+1 entries; otherwise sampling resumes from the last entry and
// the chain grows by exactly trials.
//
// A zero posterior at the current state makes the acceptance ratio
// undefined; Run then fails with ErrDegenerate. The returned chain keeps
// the completed trials; a failure at the seed stores nothing.
func (m *MH) Run(trials int, aMin, aMax float64, chain Chain) (Chain, error) {
	if err := CheckRange(aMin, aMax); err != nil {
		return chain, err
	}
	if err := CheckTrials(trials); err != nil {
		return chain, err
	}

	var current, pCurrent float64
	if len(chain) == 0 {
		current = m.rnd.Uniform(aMin, aMax)
		p, err := m.target.Posterior(current)
		if err != nil {
			return chain, err
		}
		if p == 0 {
			return chain, errors.Wrapf(ErrDegenerate, "posterior is zero at seed a=%v", current)
		}
		pCurrent = p
		chain = append(chain, current)
		log.Debugf("Seeded chain at a=%v", current)
	} else {
		current = chain.Last()
		p, err := m.target.Posterior(current)
		if err != nil {
			return chain, err
		}
		pCurrent = p
		log.Debugf("Resuming chain of length %d from a=%v", len(chain), current)
	}

	accepted := 0
	for i := 0; i < trials; i++ {
		if !m.Quiet && i > 0 && i%m.AccPeriod == 0 {
			log.Infof("Acceptance rate %.2f%%", 100*float64(accepted)/float64(m.AccPeriod))
			accepted = 0
		}
		if pCurrent == 0 {
			return chain, errors.Wrapf(ErrDegenerate, "posterior is zero at a=%v after %d trials", current, i)
		}
		trial := m.rnd.Uniform(ProposalMin, ProposalMax)
		pTrial := m.score(trial)
		r := math.Min(1, pTrial/pCurrent)
		u := m.rnd.Uniform(0, 1)
		if r > 0 && u <= r {
			current, pCurrent = trial, pTrial
			accepted++
		}
		chain = append(chain, current)
	}
	return chain, nil
}

// score evaluates the target at a proposed value. The proposal window is
// closed at a=1 where the density limit is zero, so a domain error maps
// to certain rejection instead of a failure.
func (m *MH) score(a float64) float64 {
	p, err := m.target.Posterior(a)
	if err != nil {
		return 0
	}
	return p
}
