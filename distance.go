package mlexplore

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// DistanceMetric measures dissimilarity between two feature vectors of equal
// length.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	return 1.0 - dot/math.Sqrt(normA*normB)
}

// PairwiseDistances computes the full n×n symmetric distance matrix over the
// rows of features. workers controls the number of goroutines; rows are split
// into contiguous ranges so no two goroutines write the same entry. workers
// <= 1 computes sequentially.
func PairwiseDistances(features [][]float64, metric DistanceMetric, workers int) *mat.SymDense {
	n := len(features)
	result := mat.NewSymDense(n, nil)
	if n <= 1 {
		return result
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				result.SetSym(i, j, metric.Distance(features[i], features[j]))
			}
		}
		return result
	}

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					result.SetSym(i, j, metric.Distance(features[i], features[j]))
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return result
}
