package mlexplore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Dataset is a fixed sample-by-feature table with optional ground-truth
// labels and human-readable feature names. It is loaded once at startup and
// treated as read-only thereafter.
type Dataset struct {
	// Features holds one row per sample; all rows have the same length.
	Features [][]float64

	// Labels holds the ground-truth class of each sample, if the source
	// had a label column. Empty otherwise.
	Labels []string

	// FeatureNames names the feature columns, if the source had a header
	// row. Empty otherwise.
	FeatureNames []string
}

// NumSamples returns the number of rows in the dataset.
func (d *Dataset) NumSamples() int { return len(d.Features) }

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int {
	if len(d.Features) == 0 {
		return 0
	}
	return len(d.Features[0])
}

// Classes returns the distinct ground-truth labels in first-seen order.
func (d *Dataset) Classes() []string {
	seen := make(map[string]bool)
	var classes []string
	for _, l := range d.Labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	return classes
}

// CSVConfig controls LoadCSV. The zero value expects a header row and
// treats the last column as the ground-truth label.
type CSVConfig struct {
	// NoHeader indicates the first row is data, not column names.
	NoHeader bool

	// NoLabel treats every column as a numeric feature instead of
	// reserving the last one for the label.
	NoLabel bool
}

// LoadCSV reads a dataset from CSV. All feature columns must parse as
// floats; the reader rejects rows with inconsistent column counts.
func LoadCSV(r io.Reader, cfg CSVConfig) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("mlexplore: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("mlexplore: empty csv")
	}

	ds := &Dataset{}

	if !cfg.NoHeader {
		header := records[0]
		records = records[1:]
		if cfg.NoLabel {
			ds.FeatureNames = header
		} else {
			ds.FeatureNames = header[:len(header)-1]
		}
		if len(records) == 0 {
			return nil, errors.New("mlexplore: csv has a header but no data rows")
		}
	}

	cols := len(records[0])
	featureCols := cols
	if !cfg.NoLabel {
		if cols < 2 {
			return nil, fmt.Errorf("mlexplore: csv needs at least one feature column and a label column, got %d columns", cols)
		}
		featureCols = cols - 1
	}

	ds.Features = make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, featureCols)
		for j := 0; j < featureCols; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("mlexplore: row %d column %d: cannot parse %q as float", i+1, j+1, rec[j])
			}
			row[j] = v
		}
		ds.Features[i] = row
		if !cfg.NoLabel {
			ds.Labels = append(ds.Labels, rec[cols-1])
		}
	}
	return ds, nil
}
