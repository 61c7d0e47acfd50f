package visual

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"

	"ChlBlast/pkg/blastHits"
)

type renderer interface {
	Render(w io.Writer) error
}

func saveHTML(path string, chart renderer) (err error) {
	var output = osUtil.Create(path)
	defer func() {
		if cerr := output.Close(); err == nil {
			err = cerr
		}
	}()
	return chart.Render(output)
}

func savePNG(path string, p *plot.Plot, err error) error {
	if err != nil {
		return err
	}
	return p.Save(PNGWidth, PNGHeight, path)
}

// RenderYear writes <prefix>.year<N>.line and .relative charts for one series
func RenderYear(prefix string, s blastHits.Series, secondYear bool) error {
	var name = fmt.Sprintf("%s.year%d", prefix, s.Year)

	if err := saveHTML(name+".line.html", LineChart(s)); err != nil {
		return err
	}
	p, err := LinePlot(s)
	if err := savePNG(name+".line.png", p, err); err != nil {
		return err
	}

	bar, err := RelativeChart(s, secondYear)
	if err != nil {
		return err
	}
	if err := saveHTML(name+".relative.html", bar); err != nil {
		return err
	}
	p, err = RelativePlot(s, secondYear)
	return savePNG(name+".relative.png", p, err)
}

// Render writes all charts of two sampling years, second gets the september correction
func Render(prefix string, first, second blastHits.Series) error {
	if err := RenderYear(prefix, first, false); err != nil {
		return err
	}
	if err := RenderYear(prefix, second, true); err != nil {
		return err
	}
	if err := saveHTML(prefix+".scatter.html", ScatterChart(first, second)); err != nil {
		return err
	}
	p, err := ScatterPlot(first, second)
	if err := savePNG(prefix+".scatter.png", p, err); err != nil {
		return err
	}
	slog.Info("Render Done", "prefix", prefix)
	return nil
}

// MustRender is Render for command line tools
func MustRender(prefix string, first, second blastHits.Series) {
	simpleUtil.CheckErr(Render(prefix, first, second))
}
