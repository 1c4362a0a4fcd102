package mlexplore

import (
	"math"
	"testing"
)

func TestEuclideanMetric(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"unit apart", []float64{0, 0}, []float64{1, 0}, 1},
		{"3-4-5 triangle", []float64{0, 0}, []float64{3, 4}, 5},
		{"negative coords", []float64{-1, -1}, []float64{2, 3}, 5},
	}
	m := EuclideanMetric{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestManhattanMetric(t *testing.T) {
	m := ManhattanMetric{}
	if got := m.Distance([]float64{0, 0}, []float64{3, 4}); got != 7 {
		t.Errorf("Distance = %f, want 7", got)
	}
	if got := m.Distance([]float64{-1, 2}, []float64{1, -2}); got != 6 {
		t.Errorf("Distance = %f, want 6", got)
	}
}

func TestCosineMetric(t *testing.T) {
	m := CosineMetric{}
	if got := m.Distance([]float64{1, 0}, []float64{2, 0}); math.Abs(got) > 1e-12 {
		t.Errorf("parallel vectors: got %f, want 0", got)
	}
	if got := m.Distance([]float64{1, 0}, []float64{0, 1}); math.Abs(got-1) > 1e-12 {
		t.Errorf("orthogonal vectors: got %f, want 1", got)
	}
	if got := m.Distance([]float64{1, 0}, []float64{-1, 0}); math.Abs(got-2) > 1e-12 {
		t.Errorf("opposite vectors: got %f, want 2", got)
	}
}

func TestDistanceFuncAdapter(t *testing.T) {
	f := DistanceFunc(func(a, b []float64) float64 { return 42 })
	if got := f.Distance(nil, nil); got != 42 {
		t.Errorf("DistanceFunc.Distance = %f, want 42", got)
	}
}

func TestPairwiseDistances(t *testing.T) {
	features := [][]float64{
		{0, 0}, {3, 4}, {6, 8},
	}
	d := PairwiseDistances(features, EuclideanMetric{}, 1)

	if got := d.SymmetricDim(); got != 3 {
		t.Fatalf("dim = %d, want 3", got)
	}
	want := [][]float64{
		{0, 5, 10},
		{5, 0, 5},
		{10, 5, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := d.At(i, j); math.Abs(got-want[i][j]) > 1e-12 {
				t.Errorf("d[%d,%d] = %f, want %f", i, j, got, want[i][j])
			}
		}
	}
}

// TestPairwiseDistancesParallelMatchesSerial verifies the worker-partitioned
// computation is bitwise identical to the sequential one.
func TestPairwiseDistancesParallelMatchesSerial(t *testing.T) {
	rng := newTestRNG(7)
	features := make([][]float64, 53)
	for i := range features {
		features[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}

	serial := PairwiseDistances(features, EuclideanMetric{}, 1)
	for _, workers := range []int{2, 4, 16, 100} {
		parallel := PairwiseDistances(features, EuclideanMetric{}, workers)
		for i := 0; i < len(features); i++ {
			for j := 0; j < len(features); j++ {
				if serial.At(i, j) != parallel.At(i, j) {
					t.Fatalf("workers=%d: d[%d,%d] = %g, want %g",
						workers, i, j, parallel.At(i, j), serial.At(i, j))
				}
			}
		}
	}
}

func TestPairwiseDistancesSmall(t *testing.T) {
	if got := PairwiseDistances(nil, EuclideanMetric{}, 4).SymmetricDim(); got != 0 {
		t.Errorf("empty input: dim = %d, want 0", got)
	}
	one := PairwiseDistances([][]float64{{1, 2}}, EuclideanMetric{}, 4)
	if got := one.At(0, 0); got != 0 {
		t.Errorf("single point: d[0,0] = %f, want 0", got)
	}
}
