package mlexplore

import (
	"errors"
	"fmt"
	"sort"
)

// Vectorizer turns heterogeneous records into dense feature vectors.
// Numeric values pass through unchanged; string values expand into one 0/1
// column per (key, value) pair observed during Fit, named "key=value".
// Columns are ordered by sorted feature name, so encodings are stable
// across runs of the same data.
//
// Records are map[string]any with float64, int, or string values. Values
// for categories unseen during Fit encode as zeros in every category
// column of that key.
type Vectorizer struct {
	names []string
	index map[string]int
}

// Fit scans records and builds the output feature vocabulary.
func (v *Vectorizer) Fit(records []map[string]any) error {
	if len(records) == 0 {
		return errors.New("mlexplore: cannot fit a vectorizer on zero records")
	}

	seen := make(map[string]bool)
	for i, rec := range records {
		for key, val := range rec {
			name, err := featureName(key, val)
			if err != nil {
				return fmt.Errorf("mlexplore: record %d: %w", i, err)
			}
			seen[name] = true
		}
	}

	v.names = make([]string, 0, len(seen))
	for name := range seen {
		v.names = append(v.names, name)
	}
	sort.Strings(v.names)

	v.index = make(map[string]int, len(v.names))
	for i, name := range v.names {
		v.index[name] = i
	}
	return nil
}

// Transform encodes records against the fitted vocabulary, returning one
// dense row per record.
func (v *Vectorizer) Transform(records []map[string]any) ([][]float64, error) {
	if v.index == nil {
		return nil, errors.New("mlexplore: vectorizer must be fitted before Transform")
	}

	out := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(v.names))
		for key, val := range rec {
			switch x := val.(type) {
			case float64:
				if col, ok := v.index[key]; ok {
					row[col] = x
				}
			case int:
				if col, ok := v.index[key]; ok {
					row[col] = float64(x)
				}
			case string:
				// Unknown categories simply stay zero.
				if col, ok := v.index[key+"="+x]; ok {
					row[col] = 1
				}
			default:
				return nil, fmt.Errorf("mlexplore: record %d: unsupported feature type %T for %q", i, val, key)
			}
		}
		out[i] = row
	}
	return out, nil
}

// FitTransform fits the vocabulary on records and encodes them in one step.
func (v *Vectorizer) FitTransform(records []map[string]any) ([][]float64, error) {
	if err := v.Fit(records); err != nil {
		return nil, err
	}
	return v.Transform(records)
}

// FeatureNames returns the output column names in encoding order.
func (v *Vectorizer) FeatureNames() []string {
	names := make([]string, len(v.names))
	copy(names, v.names)
	return names
}

func featureName(key string, val any) (string, error) {
	switch x := val.(type) {
	case float64, int:
		return key, nil
	case string:
		return key + "=" + x, nil
	default:
		return "", fmt.Errorf("unsupported feature type %T for %q", val, key)
	}
}
