package mlexplore

// PlotPoint is one rendered sample: a 2D coordinate, its fill color, and the
// series (cluster) it belongs to.
type PlotPoint struct {
	X, Y   float64
	Color  string // RGB hex, e.g. "#1f77b4"
	Series string
}

// Plot is a complete clear-and-redraw instruction: everything previously
// drawn is replaced by these points.
type Plot struct {
	Title  string
	XLabel string
	YLabel string
	Points []PlotPoint
}

// Surface renders plots. Draw is synchronous and replaces any previously
// drawn plot entirely; there is no incremental update path.
type Surface interface {
	Draw(p Plot) error
}
