package sample

import (
	"github.com/cockroachdb/errors"
)

// Error taxonomy shared by both sampling strategies. Match with
// errors.Is; messages carry the offending values.
var (
	// ErrParameterRange indicates an invalid [aMin, aMax] window.
	ErrParameterRange = errors.New("invalid parameter range")
	// ErrTrialCount indicates a non-positive trial or point count.
	ErrTrialCount = errors.New("invalid trial count")
	// ErrDegenerate indicates a posterior value of exactly zero for the
	// current chain state, which makes the acceptance ratio undefined.
	ErrDegenerate = errors.New("degenerate likelihood")
)

// CheckRange validates a sampling window. aMin must be greater than 1 for
// the posterior normalization to be real and positive.
func CheckRange(aMin, aMax float64) error {
	if aMin <= 1 {
		return errors.Wrapf(ErrParameterRange, "aMin must be > 1 due to posterior normalization, got %v", aMin)
	}
	if aMin >= aMax {
		return errors.Wrapf(ErrParameterRange, "aMin must be < aMax, got [%v, %v]", aMin, aMax)
	}
	return nil
}

// CheckTrials validates a trial or grid point count.
func CheckTrials(n int) error {
	if n <= 0 {
		return errors.Wrapf(ErrTrialCount, "trial count must be a positive integer, got %d", n)
	}
	return nil
}
