package liability

import (
	"errors"
	"math"
	"testing"
)

// Truth values calculated with scipy.stats.norm to full float64 precision.
func TestQuantile(t *testing.T) {
	for _, v := range []struct {
		P        float64
		Expected float64
	}{
		{0.025, -1.9599639845400545},
		{0.5, 0},
		{0.65, 0.38532046640756756},
		{0.95, 1.6448536269514715},
		{0.975, 1.9599639845400536},
		{0.999, 3.090232306167805},
	} {
		q, err := Quantile(v.P)
		if err != nil {
			t.Fatalf("Quantile(%v): unexpected error %v", v.P, err)
		}
		if math.Abs(q-v.Expected) > 1e-9 {
			t.Errorf("Quantile(%v) = %.15f, expected %.15f", v.P, q, v.Expected)
		}
	}
}

func TestQuantileDomain(t *testing.T) {
	for _, p := range []float64{0, 1, -0.1, 1.1, math.NaN()} {
		if _, err := Quantile(p); !errors.Is(err, ErrDomain) {
			t.Errorf("Quantile(%v): expected a domain error, got %v", p, err)
		}
	}
}

// Quantile must stay finite for p strictly inside (0,1), even deep in the
// tails.
func TestQuantileTailStability(t *testing.T) {
	for _, p := range []float64{1e-12, 1e-9, 1 - 1e-9, 1 - 1e-12} {
		q, err := Quantile(p)
		if err != nil {
			t.Fatalf("Quantile(%v): unexpected error %v", p, err)
		}
		if math.IsNaN(q) || math.IsInf(q, 0) {
			t.Errorf("Quantile(%v) = %v, expected a finite value", p, q)
		}
	}
}

func TestCDF(t *testing.T) {
	for _, v := range []struct {
		X        float64
		Expected float64
	}{
		{-3, 0.0013498980316301035},
		{0, 0.5},
		{1, 0.8413447460685429},
		{8.5, 1.0},
	} {
		if c := CDF(v.X); math.Abs(c-v.Expected) > 1e-12 {
			t.Errorf("CDF(%v) = %.15f, expected %.15f", v.X, c, v.Expected)
		}
	}

	// The extreme tails saturate rather than overflowing.
	if c := CDF(-40); c != 0 {
		t.Errorf("CDF(-40) = %v, expected exact saturation to 0", c)
	}
	if c := CDF(40); c != 1 {
		t.Errorf("CDF(40) = %v, expected exact saturation to 1", c)
	}
}

func TestDensity(t *testing.T) {
	for _, v := range []struct {
		X        float64
		Expected float64
	}{
		{0, 0.3989422804014327},
		{1, 0.24197072451914337},
		{1.6448536269514722, 0.10313564037537139},
	} {
		if d := Density(v.X); math.Abs(d-v.Expected) > 1e-12 {
			t.Errorf("Density(%v) = %.15f, expected %.15f", v.X, d, v.Expected)
		}
	}
}
