package mlexplore

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mpraski/clusters"
)

// Clusterer is the external clustering contract consumed by the Explorer:
// assign each feature row to one of k clusters and return 0-based labels,
// one per row.
type Clusterer interface {
	Partition(features [][]float64, k int) ([]int, error)
}

// KMeansConfig controls the KMeans clusterer.
// Start with [DefaultKMeansConfig] and override the fields you need.
type KMeansConfig struct {
	// Iterations bounds the number of k-means iterations per run.
	// Must be >= 1. Default: 1000.
	Iterations int

	// Seed reseeds the shared math/rand source before every run, so
	// repeated partitions of the same data with the same k are
	// reproducible. Default: 44111342.
	Seed int64

	// Metric is the distance used between samples and centroids.
	// Default: EuclideanMetric.
	Metric DistanceMetric
}

// DefaultKMeansConfig returns a KMeansConfig with reasonable defaults.
func DefaultKMeansConfig() KMeansConfig {
	return KMeansConfig{
		Iterations: 1000,
		Seed:       44111342,
		Metric:     EuclideanMetric{},
	}
}

// KMeans partitions samples with Lloyd's k-means, delegating to
// github.com/mpraski/clusters. Every Partition call is a full recompute;
// there is no warm start between different cluster counts.
type KMeans struct {
	cfg KMeansConfig
}

// NewKMeans returns a KMeans clusterer. Zero-valued config fields take
// their defaults.
func NewKMeans(cfg KMeansConfig) *KMeans {
	def := DefaultKMeansConfig()
	if cfg.Iterations == 0 {
		cfg.Iterations = def.Iterations
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.Metric == nil {
		cfg.Metric = def.Metric
	}
	return &KMeans{cfg: cfg}
}

// Partition clusters the feature rows into k groups and returns one 0-based
// label per row.
func (km *KMeans) Partition(features [][]float64, k int) ([]int, error) {
	n := len(features)
	if n == 0 {
		return nil, errors.New("mlexplore: cannot partition an empty feature matrix")
	}
	if k < 1 {
		return nil, fmt.Errorf("mlexplore: cluster count must be >= 1, got %d", k)
	}
	if km.cfg.Iterations < 1 {
		return nil, fmt.Errorf("mlexplore: Iterations must be >= 1, got %d", km.cfg.Iterations)
	}

	// A single cluster is trivial; the underlying library needs k >= 2.
	if k == 1 {
		return make([]int, n), nil
	}

	c, err := clusters.KMeans(km.cfg.Iterations, k, km.cfg.Metric.Distance)
	if err != nil {
		return nil, fmt.Errorf("mlexplore: k-means setup for k=%d: %w", k, err)
	}

	rand.Seed(km.cfg.Seed)
	if err := c.Learn(features); err != nil {
		return nil, fmt.Errorf("mlexplore: k-means for k=%d: %w", k, err)
	}

	guesses := c.Guesses()
	if len(guesses) != n {
		return nil, fmt.Errorf("mlexplore: k-means returned %d labels for %d samples", len(guesses), n)
	}

	// The library numbers clusters from 1; labels are 0-based here.
	labels := make([]int, n)
	for i, g := range guesses {
		label := g - 1
		if label < 0 || label >= k {
			return nil, fmt.Errorf("mlexplore: k-means produced label %d for sample %d, outside [0, %d)", label, i, k)
		}
		labels[i] = label
	}
	return labels, nil
}
