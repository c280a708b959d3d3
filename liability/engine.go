package liability

import (
	"fmt"
	"runtime"
	"sync"
)

// DefaultConfidenceLevel is the alpha used when a Config leaves
// ConfidenceLevel at zero, yielding a 95% interval.
const DefaultConfidenceLevel = 0.05

// Config collects everything needed to build an Engine. Exactly one of
// RSquared, AUC, or Weights must be set; supplying none or several is a
// configuration error. A non-nil but empty Weights slice counts as the
// theoretical source (and yields R²=0).
type Config struct {
	Prevalence float64

	RSquared *float64
	AUC      *float64
	Weights  []VariantWeight

	// ConfidenceLevel is the alpha for risk confidence intervals. Zero means
	// DefaultConfidenceLevel.
	ConfidenceLevel float64
}

// RiskEstimate is the per-individual output record. Fields mirror the
// tabular output order of the calculator.
type RiskEstimate struct {
	RawZ         float64
	AdjustedZ    float64
	AbsoluteRisk float64
	CILower      float64
	CIUpper      float64
	RelativeRisk float64
	OddsRatio    float64
}

// ModelInfo is the read-only diagnostic view of an engine's effective
// parameters.
type ModelInfo struct {
	Prevalence float64 `json:"prevalence"`
	Threshold  float64 `json:"threshold"`
	RSquared   float64 `json:"r_squared"`
	AUC        float64 `json:"auc"`
	Source     string  `json:"source"`
}

// Engine holds a validated, immutable configuration and computes risk
// estimates from raw Z-scores. All validation happens in NewEngine, before
// any batch runs; a configured engine cannot be reconfigured, and it is safe
// for concurrent use because nothing in it mutates after construction.
type Engine struct {
	pop        PopulationModel
	power      PredictivePower
	confidence float64
}

// NewEngine validates the configuration and resolves the predictive-power
// source once, up front. Bad prevalence or confidence levels and
// zero/multiple power sources fail here rather than during computation.
func NewEngine(cfg Config) (*Engine, error) {
	pop, err := NewPopulationModel(cfg.Prevalence)
	if err != nil {
		return nil, err
	}

	sources := 0
	if cfg.RSquared != nil {
		sources++
	}
	if cfg.AUC != nil {
		sources++
	}
	if cfg.Weights != nil {
		sources++
	}
	if sources != 1 {
		return nil, fmt.Errorf("%w: exactly one predictive-power source is required (RSquared, AUC, or Weights), got %d", ErrConfiguration, sources)
	}

	var power PredictivePower
	switch {
	case cfg.RSquared != nil:
		power, err = DirectPower(*cfg.RSquared)
	case cfg.AUC != nil:
		power, err = PowerFromAUC(*cfg.AUC)
	default:
		power, err = TheoreticalPower(cfg.Weights, pop)
	}
	if err != nil {
		return nil, err
	}

	confidence := cfg.ConfidenceLevel
	if confidence == 0 {
		confidence = DefaultConfidenceLevel
	}
	if !(confidence > 0 && confidence < 1) {
		return nil, fmt.Errorf("%w: confidence level must be strictly within (0,1), got %v", ErrConfiguration, confidence)
	}

	return &Engine{pop: pop, power: power, confidence: confidence}, nil
}

// ComputeOne produces the full risk estimate for a single raw Z-score.
func (e *Engine) ComputeOne(rawZ float64) (RiskEstimate, error) {
	adjustedZ, absoluteRisk, err := Transform(rawZ, e.pop, e.power)
	if err != nil {
		return RiskEstimate{}, err
	}

	lower, upper, err := ConfidenceInterval(adjustedZ, e.pop, e.power, e.confidence)
	if err != nil {
		return RiskEstimate{}, err
	}

	relativeRisk, oddsRatio, err := Summarize(absoluteRisk, e.pop)
	if err != nil {
		return RiskEstimate{}, err
	}

	return RiskEstimate{
		RawZ:         rawZ,
		AdjustedZ:    adjustedZ,
		AbsoluteRisk: absoluteRisk,
		CILower:      lower,
		CIUpper:      upper,
		RelativeRisk: relativeRisk,
		OddsRatio:    oddsRatio,
	}, nil
}

// Compute produces one estimate per input Z-score, in input order. Elements
// are independent, so the work is fanned out across a bounded number of
// goroutines; results land at their input index. If any element fails, the
// whole batch fails and no partial results are returned.
func (e *Engine) Compute(rawZ []float64) ([]RiskEstimate, error) {
	results := make([]RiskEstimate, len(rawZ))
	errs := make([]error, len(rawZ))

	concurrency := runtime.NumCPU()
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	wg.Add(len(rawZ))
	for i, z := range rawZ {
		sem <- struct{}{}

		go func(i int, z float64) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i], errs[i] = e.ComputeOne(z)
		}(i, z)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// ModelInfo reports the engine's effective parameters for diagnostics. It
// has no side effects.
func (e *Engine) ModelInfo() ModelInfo {
	return ModelInfo{
		Prevalence: e.pop.Prevalence(),
		Threshold:  e.pop.Threshold(),
		RSquared:   e.power.Value(),
		AUC:        e.power.ImpliedAUC(),
		Source:     e.power.Source().String(),
	}
}
