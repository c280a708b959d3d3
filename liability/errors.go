package liability

import "errors"

// The engine fails fast: configuration and validation problems surface when
// the engine is constructed, never per Z-score. Callers can distinguish the
// failure classes with errors.Is.
var (
	// ErrConfiguration covers structural misconfiguration: prevalence or
	// confidence level out of range, or zero/multiple predictive-power
	// sources.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation covers bad values for an otherwise well-formed
	// configuration, such as an R² outside [0,1] or a malformed weights file.
	ErrValidation = errors.New("validation error")

	// ErrDegeneratePredictor is returned when R² is exactly 1 (no residual
	// liability variance) or when an absolute risk of exactly 1 makes the
	// odds ratio undefined.
	ErrDegeneratePredictor = errors.New("degenerate predictor")

	// ErrDomain is returned by the normal-distribution primitives for inputs
	// outside their mathematical domain, such as a quantile at p=0 or p=1.
	ErrDomain = errors.New("domain error")
)
