// Package weights loads variant-weight tables for the theoretical
// predictive-power calculation. The expected format is the one produced by
// most PRS distribution sites: a delimited text file with a header carrying
// at least the VARIANT, BETA, and AF columns. Extra columns are ignored,
// comment lines start with '#', the delimiter is sniffed (tab by default),
// and the file may be compressed.
package weights

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/prsrisk"
	"github.com/carbocation/prsrisk/liability"
	"github.com/gocarina/gocsv"
)

// row mirrors the required file columns.
type row struct {
	Variant string  `csv:"VARIANT"`
	Beta    float64 `csv:"BETA"`
	AF      float64 `csv:"AF"`
}

var requiredColumns = []string{"VARIANT", "BETA", "AF"}

// Load reads a variant-weights file (optionally compressed) into records
// suitable for liability.TheoreticalPower. Allele-frequency range checking
// is left to the power calculation so that all weight validation reports
// through one error taxonomy.
func Load(path string) ([]liability.VariantWeight, error) {
	r, err := prsrisk.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return Parse(contents)
}

// Parse decodes an in-memory weights table.
func Parse(contents []byte) ([]liability.VariantWeight, error) {
	delimiter := prsrisk.DetectDelimiter(bytes.NewReader(delimiterSample(contents)), '\t')

	if err := checkHeader(contents, delimiter); err != nil {
		return nil, err
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delimiter
		r.Comment = '#'
		r.LazyQuotes = true
		return r
	})

	records := []*row{}
	if err := gocsv.UnmarshalBytes(contents, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]liability.VariantWeight, 0, len(records))
	for _, rec := range records {
		out = append(out, liability.VariantWeight{
			ID:              rec.Variant,
			Beta:            rec.Beta,
			AlleleFrequency: rec.AF,
		})
	}

	return out, nil
}

// delimiterSample drops comment and blank lines before delimiter detection:
// they carry no delimiters, and a single such line is enough to make the
// detector inconclusive for otherwise well-formed comma-delimited input.
func delimiterSample(contents []byte) []byte {
	lines := bytes.Split(contents, []byte{'\n'})

	kept := make([][]byte, 0, len(lines))
	for _, line := range lines {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}
		kept = append(kept, line)
	}

	return bytes.Join(kept, []byte{'\n'})
}

// checkHeader verifies the required columns up front, because gocsv would
// otherwise silently zero-fill fields whose column is absent.
func checkHeader(contents []byte, delimiter rune) error {
	r := csv.NewReader(bytes.NewReader(contents))
	r.Comma = delimiter
	r.Comment = '#'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return pfx.Err(err)
	}

	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[strings.TrimSpace(col)] = true
	}

	for _, col := range requiredColumns {
		if !seen[col] {
			return fmt.Errorf("weights file must contain the columns %s; missing %s", strings.Join(requiredColumns, ", "), col)
		}
	}

	return nil
}
