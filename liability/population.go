package liability

import (
	"fmt"
	"math"
)

// PopulationModel fixes the liability threshold for a disease from its
// population prevalence. The threshold is derived, never set directly, so
// the two fields can never disagree. The zero value is not usable; construct
// with NewPopulationModel.
type PopulationModel struct {
	prevalence float64
	threshold  float64
}

// NewPopulationModel validates the prevalence and derives the liability
// threshold Φ⁻¹(1-prevalence). Prevalence must be strictly within (0,1):
// a disease that nobody or everybody has admits no threshold.
func NewPopulationModel(prevalence float64) (PopulationModel, error) {
	if math.IsNaN(prevalence) || !(prevalence > 0 && prevalence < 1) {
		return PopulationModel{}, fmt.Errorf("%w: prevalence must be strictly within (0,1), got %v", ErrConfiguration, prevalence)
	}

	threshold, err := Quantile(1 - prevalence)
	if err != nil {
		return PopulationModel{}, err
	}

	return PopulationModel{prevalence: prevalence, threshold: threshold}, nil
}

// Prevalence is the population disease prevalence this model was built from.
func (p PopulationModel) Prevalence() float64 {
	return p.prevalence
}

// Threshold is the liability threshold: the point on the standard-normal
// liability scale beyond which disease manifests. It is cached at
// construction because it is reused for every individual in a batch.
func (p PopulationModel) Threshold() float64 {
	return p.threshold
}
