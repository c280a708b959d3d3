package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/prsrisk"
	"github.com/carbocation/prsrisk/liability"
)

// readZScores accepts Z-scores either inline (comma separated) or from a
// file with one score per line. Exactly one of the two must be provided.
func readZScores(zList, zFile string) ([]float64, error) {
	if zList != "" && zFile != "" {
		return nil, fmt.Errorf("provide -z or -zfile, not both")
	}

	if zList != "" {
		fields := strings.Split(zList, ",")
		out := make([]float64, 0, len(fields))
		for _, field := range fields {
			z, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse Z-score %q: %v", field, err)
			}
			out = append(out, z)
		}
		return out, nil
	}

	if zFile == "" {
		return nil, fmt.Errorf("please provide Z-scores via -z or -zfile")
	}

	r, err := prsrisk.Open(zFile)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	var out []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		z, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse Z-score %q in %s: %v", line, zFile, err)
		}
		out = append(out, z)
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no Z-scores found in %s", zFile)
	}

	return out, nil
}

func writeModelInfo(path string, info liability.ModelInfo) error {
	contents, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return pfx.Err(err)
	}

	if err := os.WriteFile(path, append(contents, '\n'), 0o644); err != nil {
		return pfx.Err(err)
	}

	return nil
}
