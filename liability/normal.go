// Package liability converts polygenic risk score Z-scores into absolute
// disease risks under the liability threshold model. A population is
// characterized by its disease prevalence, which fixes a threshold on an
// unobserved standard-normal liability scale; an individual's standardized
// PRS shifts their expected liability by the square root of the variance the
// score explains (R²), and their absolute risk is the probability of landing
// beyond the threshold.
package liability

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// CDF is the standard normal cumulative distribution function. It saturates
// cleanly to 0 or 1 in the extreme tails rather than overflowing.
func CDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// Quantile is the standard normal quantile (inverse CDF) for p strictly
// within (0,1). The boundaries are rejected rather than mapped to ±Inf,
// because a prevalence of exactly 0 or 1 is a configuration mistake that
// should not propagate as an infinite threshold.
func Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, fmt.Errorf("%w: normal quantile is undefined at p=%v; p must be strictly within (0,1)", ErrDomain, p)
	}

	return distuv.UnitNormal.Quantile(p), nil
}

// Density is the standard normal probability density function.
func Density(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
