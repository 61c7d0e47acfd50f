package visual

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"ChlBlast/pkg/blastHits"
)

var (
	PNGWidth  = 16 * vg.Inch
	PNGHeight = 9 * vg.Inch
)

func monthXYs(vs []float64) plotter.XYs {
	var points = make(plotter.XYs, len(vs))
	for i, v := range vs {
		points[i] = plotter.XY{X: float64(i), Y: v}
	}
	return points
}

func pairXYs(x, y []float64) plotter.XYs {
	var points = make(plotter.XYs, 0, len(x))
	for i := range x {
		if i >= len(y) {
			break
		}
		points = append(points, plotter.XY{X: x[i], Y: y[i]})
	}
	return points
}

// LinePlot is the PNG version of LineChart
func LinePlot(s blastHits.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("year %d", s.Year)
	p.X.Label.Text = "months"
	p.Y.Label.Text = "normalized chlF synthase amount"

	lineF, err := plotter.NewLine(monthXYs(s.F))
	if err != nil {
		return nil, err
	}
	lineF.Color = plotutil.Color(0)
	lineF.Width = vg.Points(2)

	lineA, err := plotter.NewLine(monthXYs(s.A))
	if err != nil {
		return nil, err
	}
	lineA.Color = plotutil.Color(1)
	lineA.Width = vg.Points(2)

	p.Add(lineF, lineA)
	p.Legend.Add("chlF synthase", lineF)
	p.Legend.Add("A synthase", lineA)
	p.NominalX(Months...)
	return p, nil
}

// RelativePlot is the PNG version of RelativeChart
func RelativePlot(s blastHits.Series, secondYear bool) (*plot.Plot, error) {
	fPercent, aPercent, err := Percent(s.F, s.A, secondYear)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "relation between amount of chlF and chlA"
	p.X.Label.Text = "month"
	p.Y.Label.Text = "Percentage"

	var width = vg.Points(20)
	barF, err := plotter.NewBarChart(plotter.Values(fPercent), width)
	if err != nil {
		return nil, err
	}
	barF.Color = plotutil.Color(2)
	barF.LineStyle.Width = 0

	barA, err := plotter.NewBarChart(plotter.Values(aPercent), width)
	if err != nil {
		return nil, err
	}
	barA.Color = plotutil.Color(4)
	barA.LineStyle.Width = 0
	barA.StackOn(barF)

	p.Add(barF, barA)
	p.Legend.Add("ChlF", barF)
	p.Legend.Add("ChlA", barA)
	p.Legend.Top = true
	p.NominalX(Months...)
	p.Y.Min = 0
	p.Y.Max = 100
	return p, nil
}

// ScatterPlot is the PNG version of ScatterChart
func ScatterPlot(first, second blastHits.Series) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "chl F sequences"
	p.Y.Label.Text = "chl A sequences"

	for i, s := range []blastHits.Series{first, second} {
		scatter, err := plotter.NewScatter(pairXYs(s.F, s.A))
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("year %d", s.Year), scatter)
	}
	return p, nil
}
