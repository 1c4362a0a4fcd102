package mlexplore

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Cluster count bounds accepted by [Explorer.SetClusterCount].
const (
	MinClusterCount = 1
	MaxClusterCount = 10
)

// ErrClusterCountOutOfRange is returned by SetClusterCount when the
// requested count falls outside [MinClusterCount, MaxClusterCount]. The
// previous assignment and rendered plot are left untouched.
var ErrClusterCountOutOfRange = errors.New("mlexplore: cluster count out of range")

// ExplorerConfig configures an Explorer.
type ExplorerConfig struct {
	// Features is the sample-by-feature source matrix the clusterer runs
	// on. Treated as read-only.
	Features [][]float64

	// Layout is the fixed 2D coordinate of each sample, usually the output
	// of a Projection over Features. Must have one entry per feature row.
	Layout []Point2

	// Clusterer recomputes the assignment for each requested cluster
	// count. Default: NewKMeans(DefaultKMeansConfig()).
	Clusterer Clusterer

	// Surface receives a full clear-and-redraw after every successful
	// recompute. Required.
	Surface Surface

	// Palette colors cluster labels. Must hold at least MaxClusterCount
	// colors. Default: DefaultPalette().
	Palette Palette

	// Title, XLabel, and YLabel are passed through to every redraw.
	Title  string
	XLabel string
	YLabel string

	// Logger records recompute cycles. Default: a no-op logger.
	Logger *zerolog.Logger
}

// Explorer binds a user-controlled cluster count to a recompute-and-render
// cycle over a fixed 2D layout. Each SetClusterCount call reclusters the
// source features, replaces the assignment wholesale, and redraws the
// scatter plot with one colored point per sample.
//
// An Explorer is synchronous and not safe for concurrent use: the intended
// interaction model is one change at a time, each completing before the
// next is issued.
type Explorer struct {
	cfg        ExplorerConfig
	log        zerolog.Logger
	k          int
	assignment []int
	listeners  []func(k int, assignment []int)
}

// NewExplorer validates cfg and returns an Explorer in its idle state with
// no assignment computed yet.
func NewExplorer(cfg ExplorerConfig) (*Explorer, error) {
	if cfg.Clusterer == nil {
		cfg.Clusterer = NewKMeans(DefaultKMeansConfig())
	}
	if cfg.Palette == nil {
		cfg.Palette = DefaultPalette()
	}

	if len(cfg.Features) == 0 {
		return nil, errors.New("mlexplore: explorer needs a non-empty feature matrix")
	}
	if len(cfg.Layout) != len(cfg.Features) {
		return nil, fmt.Errorf("mlexplore: layout has %d points for %d samples", len(cfg.Layout), len(cfg.Features))
	}
	if cfg.Surface == nil {
		return nil, errors.New("mlexplore: explorer needs a rendering surface")
	}
	if len(cfg.Palette) < MaxClusterCount {
		return nil, fmt.Errorf("mlexplore: palette has %d colors, need at least %d", len(cfg.Palette), MaxClusterCount)
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Explorer{cfg: cfg, log: log}, nil
}

// SetClusterCount recomputes the cluster assignment for k clusters and
// redraws the scatter plot. k outside [MinClusterCount, MaxClusterCount]
// fails with ErrClusterCountOutOfRange before any computation. The call is
// synchronous: it returns only after clustering and the redraw complete.
func (e *Explorer) SetClusterCount(k int) error {
	if k < MinClusterCount || k > MaxClusterCount {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrClusterCountOutOfRange, k, MinClusterCount, MaxClusterCount)
	}

	assignment, err := e.cfg.Clusterer.Partition(e.cfg.Features, k)
	if err != nil {
		return fmt.Errorf("mlexplore: recompute for k=%d: %w", k, err)
	}
	if len(assignment) != len(e.cfg.Layout) {
		return fmt.Errorf("mlexplore: clusterer returned %d labels for %d samples", len(assignment), len(e.cfg.Layout))
	}
	for i, label := range assignment {
		if label < 0 || label >= k {
			return fmt.Errorf("mlexplore: clusterer produced label %d for sample %d, outside [0, %d)", label, i, k)
		}
	}

	if err := e.redraw(assignment); err != nil {
		return fmt.Errorf("mlexplore: redraw for k=%d: %w", k, err)
	}

	e.k = k
	e.assignment = assignment
	e.log.Debug().
		Int("k", k).
		Int("samples", len(assignment)).
		Msg("cluster assignment recomputed")

	for _, fn := range e.listeners {
		fn(k, e.Assignment())
	}
	return nil
}

// OnChange registers a listener invoked after every successful recompute
// and redraw, with the new cluster count and a copy of the assignment.
func (e *Explorer) OnChange(fn func(k int, assignment []int)) {
	e.listeners = append(e.listeners, fn)
}

// ClusterCount returns the current cluster count, or 0 before the first
// successful SetClusterCount.
func (e *Explorer) ClusterCount() int { return e.k }

// Assignment returns a copy of the current cluster assignment, or nil
// before the first successful SetClusterCount.
func (e *Explorer) Assignment() []int {
	if e.assignment == nil {
		return nil
	}
	out := make([]int, len(e.assignment))
	copy(out, e.assignment)
	return out
}

// Layout returns the fixed 2D layout the explorer renders against.
func (e *Explorer) Layout() []Point2 { return e.cfg.Layout }

func (e *Explorer) redraw(assignment []int) error {
	points := make([]PlotPoint, len(assignment))
	for i, label := range assignment {
		points[i] = PlotPoint{
			X:      e.cfg.Layout[i].X,
			Y:      e.cfg.Layout[i].Y,
			Color:  e.cfg.Palette.Hex(label),
			Series: fmt.Sprintf("cluster %d", label),
		}
	}
	return e.cfg.Surface.Draw(Plot{
		Title:  e.cfg.Title,
		XLabel: e.cfg.XLabel,
		YLabel: e.cfg.YLabel,
		Points: points,
	})
}
