package visual

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"ChlBlast/pkg/blastHits"
)

func GenerateLineItems(vs []float64) []opts.LineData {
	var items = make([]opts.LineData, 0, len(vs))
	for _, v := range vs {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

func generateBarItems(vs []float64) []opts.BarData {
	var items = make([]opts.BarData, 0, len(vs))
	for _, v := range vs {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

func generateScatterItems(x, y []float64) []opts.ScatterData {
	var items = make([]opts.ScatterData, 0, len(x))
	for i := range x {
		if i >= len(y) {
			break
		}
		items = append(items, opts.ScatterData{Value: []interface{}{x[i], y[i]}})
	}
	return items
}

// LineChart plots normalized ChlF and ChlA of one year by month
func LineChart(s blastHits.Series) *charts.Line {
	var line = charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("year %d", s.Year),
			Subtitle: "normalized chlF synthase amount",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "months"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "normalized amount"}),
	)
	line.SetXAxis(Months).
		AddSeries("chlF synthase", GenerateLineItems(s.F)).
		AddSeries("A synthase", GenerateLineItems(s.A))
	return line
}

// RelativeChart stacks the ChlF and ChlA share of each month
func RelativeChart(s blastHits.Series, secondYear bool) (*charts.Bar, error) {
	fPercent, aPercent, err := Percent(s.F, s.A, secondYear)
	if err != nil {
		return nil, err
	}
	var bar = charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "relation between amount of chlF and chlA",
			Subtitle: fmt.Sprintf("year %d", s.Year),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Percentage", Max: 100}),
	)
	var stack = charts.WithBarChartOpts(opts.BarChart{Stack: "percent"})
	bar.SetXAxis(Months).
		AddSeries("ChlF", generateBarItems(fPercent), stack).
		AddSeries("ChlA", generateBarItems(aPercent), stack)
	return bar, nil
}

// ScatterChart compares ChlF against ChlA for both years
func ScatterChart(first, second blastHits.Series) *charts.Scatter {
	var scatter = charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: "chl F vs chl A"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "chl F sequences", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "chl A sequences", Type: "value"}),
	)
	scatter.
		AddSeries(fmt.Sprintf("year %d", first.Year), generateScatterItems(first.F, first.A)).
		AddSeries(fmt.Sprintf("year %d", second.Year), generateScatterItems(second.F, second.A))
	return scatter
}
