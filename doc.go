// Package mlexplore is a small toolkit for walking a tabular dataset through
// the classic introductory machine-learning steps: feature encoding, 2D
// projection (PCA and classical MDS), k-means clustering, and supervised
// classification. On top of those sits an interactive cluster explorer that
// recomputes and redraws a color-coded scatter plot whenever the cluster
// count changes.
//
// The numerical heavy lifting is delegated: k-means to
// github.com/mpraski/clusters, decision forests to
// github.com/sjwhitworth/golearn, matrix decompositions to gonum, and
// scatter rendering to github.com/go-echarts/go-echarts. This package owns
// the glue: loading and encoding data, composing projections, and the
// explorer's recompute-and-render cycle.
//
// Basic usage:
//
//	ds := mlexplore.Iris()
//	layout, err := mlexplore.PCA{}.Project(ds.Features)
//	// handle err
//
//	exp, err := mlexplore.NewExplorer(mlexplore.ExplorerConfig{
//		Features: ds.Features,
//		Layout:   layout,
//		Surface:  &mlexplore.ScatterHTML{W: os.Stdout},
//		Title:    "iris clusters",
//	})
//	// handle err
//	err = exp.SetClusterCount(3)
//	// exp.Assignment()[i] is the cluster label for sample i, in [0, 3)
//
// SetClusterCount accepts counts in [MinClusterCount, MaxClusterCount]. An
// out-of-range count fails with ErrClusterCountOutOfRange and leaves the
// previous assignment and rendered plot untouched. Each valid change is a
// full, synchronous recompute: there is no warm start across different
// cluster counts.
package mlexplore
