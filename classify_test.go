package mlexplore

import (
	"testing"
)

func TestTrainForestIris(t *testing.T) {
	res, err := TrainForest("data/iris.csv", ForestConfig{})
	if err != nil {
		t.Fatalf("TrainForest error: %v", err)
	}
	if res.Model == nil {
		t.Fatal("no model returned")
	}
	// Iris is nearly separable; anything below this means the pipeline is
	// broken, not that the forest had a bad day.
	if res.Accuracy < 0.8 || res.Accuracy > 1.0 {
		t.Errorf("Accuracy = %f, want within [0.8, 1.0]", res.Accuracy)
	}
	if res.Summary == "" {
		t.Error("empty confusion matrix summary")
	}
}

func TestTrainForestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  ForestConfig
	}{
		{"negative trees", ForestConfig{Trees: -1}},
		{"negative features", ForestConfig{Features: -1}},
		{"ratio too large", ForestConfig{TrainRatio: 1.5}},
		{"ratio negative", ForestConfig{TrainRatio: -0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TrainForest("data/iris.csv", tt.cfg); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestTrainForestMissingFile(t *testing.T) {
	if _, err := TrainForest("data/no-such-file.csv", ForestConfig{}); err == nil {
		t.Error("expected error for missing file")
	}
}
