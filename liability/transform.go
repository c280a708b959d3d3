package liability

import (
	"fmt"
	"math"
)

// Transform maps a raw PRS Z-score onto the liability scale and returns the
// adjusted score together with the absolute risk of disease. The adjustment
// shrinks the raw score by √R², reflecting that the PRS only explains part
// of the liability variance; the absolute risk is the probability that
// liability exceeds the population threshold at that adjusted position.
//
// A raw Z-score of 0 always reproduces the population prevalence, because
// 1-Φ(T) is by construction the prevalence. Extreme Z-scores are legitimate
// inputs that saturate toward 0 or 1.
//
// R² of 1 (or beyond, should an upstream conversion misbehave) would mean
// the score predicts liability perfectly, which the model cannot represent;
// it is rejected as a degenerate predictor.
func Transform(rawZ float64, pop PopulationModel, power PredictivePower) (adjustedZ, absoluteRisk float64, err error) {
	if power.Value() >= 1 {
		return 0, 0, fmt.Errorf("%w: R² of %v leaves no residual liability variance", ErrDegeneratePredictor, power.Value())
	}

	adjustedZ = rawZ * math.Sqrt(power.Value())

	return adjustedZ, riskAtAdjusted(adjustedZ, pop), nil
}

// riskAtAdjusted is the probability that liability exceeds the population
// threshold for an individual at the given adjusted score. Monotonic
// increasing in adjZ, which the confidence interval relies on.
func riskAtAdjusted(adjZ float64, pop PopulationModel) float64 {
	return 1 - CDF(pop.Threshold()-adjZ)
}

// ConfidenceInterval propagates the unit standard error of a raw Z-score
// through the risk transform. The adjusted score's standard error is √R²
// (the raw score's SE is 1 by definition), so the bounds are the risks at
// adjustedZ ± z_crit·√R², using the same threshold and R² as the point
// estimate. Estimation uncertainty in R² itself is deliberately not modeled.
//
// The transform is monotonic, so lower ≤ risk ≤ upper holds by construction;
// the bounds are still reordered defensively so callers never see an
// inverted interval.
func ConfidenceInterval(adjustedZ float64, pop PopulationModel, power PredictivePower, confidenceLevel float64) (lower, upper float64, err error) {
	if math.IsNaN(confidenceLevel) || !(confidenceLevel > 0 && confidenceLevel < 1) {
		return 0, 0, fmt.Errorf("%w: confidence level must be strictly within (0,1), got %v", ErrConfiguration, confidenceLevel)
	}

	zCrit, err := Quantile(1 - confidenceLevel/2)
	if err != nil {
		return 0, 0, err
	}

	se := math.Sqrt(power.Value())
	lower = riskAtAdjusted(adjustedZ-zCrit*se, pop)
	upper = riskAtAdjusted(adjustedZ+zCrit*se, pop)

	if lower > upper {
		lower, upper = upper, lower
	}

	return lower, upper, nil
}

// Summarize derives the relative risk and odds ratio of an absolute risk
// against the population baseline. An absolute risk of exactly 1 has
// infinite odds and is rejected; risks merely close to 1 pass through.
func Summarize(absoluteRisk float64, pop PopulationModel) (relativeRisk, oddsRatio float64, err error) {
	if absoluteRisk == 1 {
		return 0, 0, fmt.Errorf("%w: absolute risk of exactly 1 has undefined odds", ErrDegeneratePredictor)
	}

	k := pop.Prevalence()
	relativeRisk = absoluteRisk / k
	oddsRatio = (absoluteRisk / (1 - absoluteRisk)) / (k / (1 - k))

	return relativeRisk, oddsRatio, nil
}
