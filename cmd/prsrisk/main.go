// prsrisk converts polygenic risk score Z-scores into absolute disease risks
// under the liability threshold model. It is configured with the disease
// prevalence and exactly one source of the score's predictive power (a
// validated R², an AUC, or a variant-weights file), then emits one
// tab-separated row per input Z-score.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carbocation/prsrisk/compileinfo"
	"github.com/carbocation/prsrisk/liability"
	"github.com/carbocation/prsrisk/weights"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

var outputColumns = []string{"raw_z", "adjusted_z", "absolute_risk", "ci_lower", "ci_upper", "relative_risk", "odds_ratio"}

func main() {
	defer STDOUT.Flush()

	compileinfo.LogToStderr()

	var (
		prevalence   float64
		rsquared     float64
		auc          float64
		weightsPath  string
		confidence   float64
		zList        string
		zFile        string
		modelInfoOut string
	)
	flag.Float64Var(&prevalence, "prevalence", -1, "Disease prevalence in the population, strictly between 0 and 1")
	flag.Float64Var(&rsquared, "r2", -1, "Liability-scale R² from a validation study, between 0 and 1. Provide exactly one of -r2, -auc, or -weights.")
	flag.Float64Var(&auc, "auc", -1, "AUC from a validation study, strictly between 0.5 and 1")
	flag.StringVar(&weightsPath, "weights", "", "Path to a variant-weights file with VARIANT, BETA, and AF columns (may be gzip/zip/xz/bzip2 compressed)")
	flag.Float64Var(&confidence, "confidence", liability.DefaultConfidenceLevel, "Alpha for the risk confidence interval (0.05 yields a 95% CI)")
	flag.StringVar(&zList, "z", "", "Comma-separated PRS Z-scores, e.g. -2,-1,0,1,2")
	flag.StringVar(&zFile, "zfile", "", "Path to a file with one PRS Z-score per line; '#' comments and blank lines are skipped (may be compressed)")
	flag.StringVar(&modelInfoOut, "model-info-out", "", "Optional path to write the effective model parameters as JSON")
	flag.Parse()

	if prevalence < 0 {
		flag.PrintDefaults()
		log.Fatalln("Please provide -prevalence")
	}

	cfg := liability.Config{Prevalence: prevalence, ConfidenceLevel: confidence}
	if rsquared >= 0 {
		cfg.RSquared = &rsquared
	}
	if auc >= 0 {
		cfg.AUC = &auc
	}
	if weightsPath != "" {
		loaded, err := weights.Load(weightsPath)
		if err != nil {
			log.Fatalln(err)
		}
		log.Println("Loaded", len(loaded), "variant weights from", weightsPath)
		cfg.Weights = loaded
	}

	// The engine enforces the exactly-one-source rule and all range checks.
	engine, err := liability.NewEngine(cfg)
	if err != nil {
		flag.PrintDefaults()
		log.Fatalln(err)
	}

	zScores, err := readZScores(zList, zFile)
	if err != nil {
		flag.PrintDefaults()
		log.Fatalln(err)
	}

	info := engine.ModelInfo()
	log.Printf("Model: prevalence=%g threshold=%.6f r_squared=%.6f auc=%.6f source=%s\n",
		info.Prevalence, info.Threshold, info.RSquared, info.AUC, info.Source)

	if modelInfoOut != "" {
		if err := writeModelInfo(modelInfoOut, info); err != nil {
			log.Fatalln(err)
		}
		log.Println("Wrote model info to", modelInfoOut)
	}

	estimates, err := engine.Compute(zScores)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Fprintln(STDOUT, strings.Join(outputColumns, "\t"))
	for _, est := range estimates {
		fmt.Fprintf(STDOUT, "%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			est.RawZ, est.AdjustedZ, est.AbsoluteRisk, est.CILower, est.CIUpper, est.RelativeRisk, est.OddsRatio)
	}

	logRiskSummary(estimates)
}
