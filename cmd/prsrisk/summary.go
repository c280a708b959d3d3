package main

import (
	"log"

	"github.com/carbocation/prsrisk/liability"
	"github.com/montanaflynn/stats"
)

// logRiskSummary gives a quick sense of the batch's risk distribution on
// stderr without polluting the tabular stdout output.
func logRiskSummary(estimates []liability.RiskEstimate) {
	if len(estimates) == 0 {
		return
	}

	risks := make([]float64, 0, len(estimates))
	for _, est := range estimates {
		risks = append(risks, est.AbsoluteRisk)
	}

	min, err := stats.Min(risks)
	if err != nil {
		log.Println("Risk summary unavailable:", err)
		return
	}
	median, _ := stats.Median(risks)
	mean, _ := stats.Mean(risks)
	max, _ := stats.Max(risks)

	log.Printf("Absolute risk across %d individuals: min=%.6f median=%.6f mean=%.6f max=%.6f\n",
		len(risks), min, median, mean, max)
}
