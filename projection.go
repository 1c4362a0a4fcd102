package mlexplore

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Point2 is a 2D coordinate in a projected layout.
type Point2 struct {
	X, Y float64
}

// Projection maps a sample-by-feature matrix to one 2D coordinate per sample.
// Projections are one-shot and stateless: the resulting layout is computed
// once and treated as immutable by everything downstream.
type Projection interface {
	Project(features [][]float64) ([]Point2, error)
}

// PCA projects samples onto their first two principal components
// (mean-centered, via singular value decomposition).
type PCA struct{}

func (PCA) Project(features [][]float64) ([]Point2, error) {
	n, dims, err := checkRectangular(features)
	if err != nil {
		return nil, err
	}
	if dims < 2 {
		return nil, fmt.Errorf("mlexplore: PCA needs at least 2 features, got %d", dims)
	}

	// Center columns so the projection matches the usual PCA transform.
	means := make([]float64, dims)
	for _, row := range features {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	centered := mat.NewDense(n, dims, nil)
	for i, row := range features {
		for j, v := range row {
			centered.Set(i, j, v-means[j])
		}
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(centered, nil); !ok {
		return nil, errors.New("mlexplore: PCA decomposition failed")
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	var projected mat.Dense
	projected.Mul(centered, vecs.Slice(0, dims, 0, 2))

	layout := make([]Point2, n)
	for i := range layout {
		layout[i] = Point2{X: projected.At(i, 0), Y: projected.At(i, 1)}
	}
	return layout, nil
}

// MDS projects samples with classical (Torgerson) multidimensional scaling:
// double-center the squared pairwise distance matrix and embed along its two
// leading eigenvectors. For Euclidean distances the embedding reproduces the
// pairwise distances exactly up to rotation.
type MDS struct {
	// Metric is the pairwise distance used between samples.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used for the pairwise
	// distance matrix. 0 means runtime.NumCPU().
	Workers int
}

func (m MDS) Project(features [][]float64) ([]Point2, error) {
	n, _, err := checkRectangular(features)
	if err != nil {
		return nil, err
	}
	metric := m.Metric
	if metric == nil {
		metric = EuclideanMetric{}
	}
	workers := m.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	if n == 1 {
		return []Point2{{}}, nil
	}

	dist := PairwiseDistances(features, metric, workers)

	// Squared distances, their row means, and the grand mean feed the
	// double-centering: B = -1/2 * J D² J.
	sq := make([]float64, n*n)
	rowMean := make([]float64, n)
	var grandMean float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := dist.At(i, j)
			sq[i*n+j] = d * d
			rowMean[i] += sq[i*n+j]
		}
		rowMean[i] /= float64(n)
		grandMean += rowMean[i]
	}
	grandMean /= float64(n)

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b.SetSym(i, j, -0.5*(sq[i*n+j]-rowMean[i]-rowMean[j]+grandMean))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(b, true); !ok {
		return nil, errors.New("mlexplore: MDS eigendecomposition failed")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues come back in ascending order; the two largest carry the
	// embedding. Small negative values (non-Euclidean metrics, rounding)
	// clamp to zero.
	first, second := n-1, n-2
	scaleX := math.Sqrt(math.Max(vals[first], 0))
	scaleY := math.Sqrt(math.Max(vals[second], 0))

	layout := make([]Point2, n)
	for i := range layout {
		layout[i] = Point2{
			X: vecs.At(i, first) * scaleX,
			Y: vecs.At(i, second) * scaleY,
		}
	}
	return layout, nil
}

// checkRectangular validates that features is a non-empty rectangular matrix
// and returns its dimensions.
func checkRectangular(features [][]float64) (n, dims int, err error) {
	n = len(features)
	if n == 0 {
		return 0, 0, errors.New("mlexplore: cannot project an empty feature matrix")
	}
	dims = len(features[0])
	for i, row := range features {
		if len(row) != dims {
			return 0, 0, fmt.Errorf("mlexplore: ragged feature matrix: row %d has %d features, want %d", i, len(row), dims)
		}
	}
	if dims == 0 {
		return 0, 0, errors.New("mlexplore: feature matrix has no columns")
	}
	return n, dims, nil
}
