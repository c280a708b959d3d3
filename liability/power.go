package liability

import (
	"fmt"
	"math"
)

// PowerSource identifies which of the three mutually exclusive inputs the
// predictive power was derived from.
type PowerSource int

const (
	SourceDirect PowerSource = iota
	SourceAUC
	SourceTheoretical
)

func (s PowerSource) String() string {
	switch s {
	case SourceDirect:
		return "direct_r2"
	case SourceAUC:
		return "converted_auc"
	case SourceTheoretical:
		return "theoretical"
	}

	return "unknown"
}

// VariantWeight is one row of a polygenic score: a variant identifier, its
// effect size (log odds ratio), and its effect allele frequency. Duplicate
// identifiers are permitted; their variance contributions simply add.
type VariantWeight struct {
	ID              string
	Beta            float64
	AlleleFrequency float64
}

// PredictivePower is the liability-scale variance explained by the score
// (R²), tagged with how it was obtained. It is resolved once at
// configuration time and is immutable afterwards.
type PredictivePower struct {
	value  float64
	source PowerSource
}

// Value is the liability-scale R², in [0,1].
func (p PredictivePower) Value() float64 {
	return p.value
}

// Source reports which input the R² was derived from.
func (p PredictivePower) Source() PowerSource {
	return p.source
}

// ImpliedAUC converts the effective R² back to the AUC that would produce it
// under the same liability-scale identity used by PowerFromAUC, so the two
// functions round-trip. Useful for reporting when the power was supplied as
// an R² or computed from weights.
func (p PredictivePower) ImpliedAUC() float64 {
	return CDF(math.Sqrt(math.Pi * p.value / (2 - p.value)))
}

// DirectPower accepts a liability-scale R² from a validation study. The
// boundary values 0 and 1 are accepted here; an R² of exactly 1 is only
// rejected later, at transform time, where it becomes degenerate.
func DirectPower(rsquared float64) (PredictivePower, error) {
	if math.IsNaN(rsquared) || rsquared < 0 || rsquared > 1 {
		return PredictivePower{}, fmt.Errorf("%w: R² must be within [0,1], got %v", ErrValidation, rsquared)
	}

	return PredictivePower{value: rsquared, source: SourceDirect}, nil
}

// PowerFromAUC converts an AUC from a validation study into a
// liability-scale R² via R² = 2z²/(π+z²) with z = Φ⁻¹(AUC). The conversion
// tends to 0 as AUC approaches 0.5, but reaches 1 already at AUC = Φ(√π)
// ≈ 0.9618 and keeps growing toward 2 beyond that, so the identity is only
// usable below that point.
//
// AUC at or below 0.5 means the score discriminates no better than chance,
// which in practice indicates a mis-specified input, so it is rejected
// rather than clamped to R²=0. AUC at or above Φ(√π) implies an R² of 1 or
// more, which the liability model cannot represent, and is rejected for the
// same reason.
func PowerFromAUC(auc float64) (PredictivePower, error) {
	if math.IsNaN(auc) || !(auc > 0.5 && auc < 1) {
		return PredictivePower{}, fmt.Errorf("%w: AUC must be strictly within (0.5,1), got %v", ErrValidation, auc)
	}

	z, err := Quantile(auc)
	if err != nil {
		return PredictivePower{}, err
	}

	rsquared := 2 * z * z / (math.Pi + z*z)
	if rsquared >= 1 {
		return PredictivePower{}, fmt.Errorf("%w: AUC %v implies a liability-scale R² of %v; the AUC→R² identity requires AUC below Φ(√π) ≈ 0.9618", ErrValidation, auc, rsquared)
	}

	return PredictivePower{value: rsquared, source: SourceAUC}, nil
}

// theoreticalOvershoot is how far above 1 a computed liability-scale R² may
// land before it is treated as malformed input instead of numerical noise.
const theoreticalOvershoot = 1.2

// TheoreticalPower computes the liability-scale R² implied by a set of
// variant weights. Each variant with effect size β and allele frequency p
// contributes β²·2p(1-p) to the observed-scale variance (2p(1-p) being the
// expected heterozygosity of a biallelic site). The observed-scale total is
// mapped to the liability scale with the prevalence correction
// k(1-k)/φ(T)², where T is the population's liability threshold.
//
// The result is never negative (every contribution is a square times an
// expected heterozygosity in [0,0.5], and the prevalence correction is
// positive). Small overshoots above 1 are clamped to the boundary; results
// far above 1 mean the weights themselves are wrong (for example, betas on
// the wrong scale) and fail validation.
func TheoreticalPower(weights []VariantWeight, pop PopulationModel) (PredictivePower, error) {
	var observed float64
	for _, w := range weights {
		if math.IsNaN(w.AlleleFrequency) || w.AlleleFrequency < 0 || w.AlleleFrequency > 1 {
			return PredictivePower{}, fmt.Errorf("%w: allele frequency for variant %q must be within [0,1], got %v", ErrValidation, w.ID, w.AlleleFrequency)
		}

		observed += w.Beta * w.Beta * 2 * w.AlleleFrequency * (1 - w.AlleleFrequency)
	}

	k := pop.Prevalence()
	height := Density(pop.Threshold())
	rsquared := observed * k * (1 - k) / (height * height)

	if rsquared > theoreticalOvershoot {
		return PredictivePower{}, fmt.Errorf("%w: theoretical R² of %v is far outside [0,1]; the weight input looks malformed", ErrValidation, rsquared)
	}
	if rsquared > 1 {
		rsquared = 1
	}

	return PredictivePower{value: rsquared, source: SourceTheoretical}, nil
}
