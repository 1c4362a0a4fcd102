package mlexplore

import (
	"fmt"
	"math/rand"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/filters"
)

// ForestConfig controls TrainForest.
// Start with [DefaultForestConfig] and override the fields you need.
type ForestConfig struct {
	// Trees is the number of trees in the forest. Default: 100.
	Trees int

	// Features is the number of candidate features per split. Default: 3.
	Features int

	// TrainRatio is the fraction of samples used for training; the rest
	// are held out for evaluation. Default: 0.6.
	TrainRatio float64

	// Seed reseeds the shared math/rand source before training so the
	// split and the forest are reproducible. Default: 44111342.
	Seed int64

	// Significance is the Chi-Merge discretization threshold applied to
	// the float attributes before training. Default: 0.999.
	Significance float64

	// NoHeader indicates the CSV's first row is data, not column names.
	// The default expects a header, matching the bundled iris file.
	NoHeader bool
}

// DefaultForestConfig returns a ForestConfig with reasonable defaults.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:        100,
		Features:     3,
		TrainRatio:   0.6,
		Seed:         44111342,
		Significance: 0.999,
	}
}

// ForestResult is the outcome of a supervised classification pass.
type ForestResult struct {
	// Model is the trained forest, ready for Predict on compatible data.
	Model base.Classifier

	// Accuracy is the held-out classification accuracy in [0, 1].
	Accuracy float64

	// Summary is a human-readable confusion matrix report.
	Summary string
}

// TrainForest runs the supervised half of the walkthrough: load a labeled
// CSV (last column is the class), discretize the float attributes with
// Chi-Merge, split train/test, fit a random forest, and score it on the
// held-out split. Everything model-related is delegated to golearn.
func TrainForest(csvPath string, cfg ForestConfig) (*ForestResult, error) {
	applyForestDefaults(&cfg)
	if err := validateForestConfig(&cfg); err != nil {
		return nil, err
	}

	rand.Seed(cfg.Seed)

	insts, err := base.ParseCSVToInstances(csvPath, !cfg.NoHeader)
	if err != nil {
		return nil, fmt.Errorf("mlexplore: parse %s: %w", csvPath, err)
	}

	filt := filters.NewChiMergeFilter(insts, cfg.Significance)
	for _, a := range base.NonClassFloatAttributes(insts) {
		filt.AddAttribute(a)
	}
	if err := filt.Train(); err != nil {
		return nil, fmt.Errorf("mlexplore: discretize: %w", err)
	}
	filtered := base.NewLazilyFilteredInstances(insts, filt)

	trainData, testData := base.InstancesTrainTestSplit(filtered, cfg.TrainRatio)

	forest := ensemble.NewRandomForest(cfg.Trees, cfg.Features)
	if err := forest.Fit(trainData); err != nil {
		return nil, fmt.Errorf("mlexplore: fit forest: %w", err)
	}

	predictions, err := forest.Predict(testData)
	if err != nil {
		return nil, fmt.Errorf("mlexplore: predict: %w", err)
	}

	cf, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		return nil, fmt.Errorf("mlexplore: confusion matrix: %w", err)
	}

	return &ForestResult{
		Model:    forest,
		Accuracy: evaluation.GetAccuracy(cf),
		Summary:  evaluation.GetSummary(cf),
	}, nil
}

func applyForestDefaults(cfg *ForestConfig) {
	def := DefaultForestConfig()
	if cfg.Trees == 0 {
		cfg.Trees = def.Trees
	}
	if cfg.Features == 0 {
		cfg.Features = def.Features
	}
	if cfg.TrainRatio == 0 {
		cfg.TrainRatio = def.TrainRatio
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.Significance == 0 {
		cfg.Significance = def.Significance
	}
}

func validateForestConfig(cfg *ForestConfig) error {
	if cfg.Trees < 1 {
		return fmt.Errorf("mlexplore: Trees must be >= 1, got %d", cfg.Trees)
	}
	if cfg.Features < 1 {
		return fmt.Errorf("mlexplore: Features must be >= 1, got %d", cfg.Features)
	}
	if cfg.TrainRatio <= 0 || cfg.TrainRatio >= 1 {
		return fmt.Errorf("mlexplore: TrainRatio must be in (0, 1), got %f", cfg.TrainRatio)
	}
	return nil
}
