package mlexplore

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ScatterHTML is a Surface that renders each plot as a self-contained HTML
// page containing an Apache ECharts scatter chart, written to W. Every Draw
// emits a complete page, which makes it a natural fit for serving one
// rendered state per HTTP response.
type ScatterHTML struct {
	W io.Writer
}

func (s *ScatterHTML) Draw(p Plot) error {
	if s.W == nil {
		return fmt.Errorf("mlexplore: ScatterHTML has no writer")
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: p.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: p.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: p.YLabel}),
	)

	// One chart series per plot series, preserving first-seen order so
	// legend entries come out as cluster 0, cluster 1, ...
	seriesData := make(map[string][]opts.ScatterData)
	seriesColor := make(map[string]string)
	var order []string
	for _, pt := range p.Points {
		if _, seen := seriesData[pt.Series]; !seen {
			order = append(order, pt.Series)
			seriesColor[pt.Series] = pt.Color
		}
		seriesData[pt.Series] = append(seriesData[pt.Series], opts.ScatterData{
			Value:      []interface{}{pt.X, pt.Y},
			SymbolSize: 8,
		})
	}

	for _, name := range order {
		// Series options go on AddSeries directly: SetSeriesOptions would
		// repaint every series, not just this one.
		scatter.AddSeries(name, seriesData[name],
			charts.WithItemStyleOpts(opts.ItemStyle{Color: seriesColor[name]}),
		)
	}

	if err := scatter.Render(s.W); err != nil {
		return fmt.Errorf("mlexplore: render scatter: %w", err)
	}
	return nil
}
