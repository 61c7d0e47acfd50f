package blastHits

import (
	"log/slog"

	math2 "github.com/liserjrqlxue/goUtil/math"
)

// Series holds the normalized ChlF and ChlA values of one year, index 0 is january
type Series struct {
	Year int
	F    []float64
	A    []float64
}

func NewSeries(year int) Series {
	return Series{
		Year: year,
		F:    make([]float64, len(MonthNames)),
		A:    make([]float64, len(MonthNames)),
	}
}

// SingleCopyMean returns mean and sd of the counted references
func SingleCopyMean(counts SingleCopyCounts) (mean, sd float64) {
	mean, sd = math2.MeanStdDev(counts.Values())
	return
}

// Normalize divides ChlF and ChlA counts of year by the mean single copy count of the same sample month.
// Months without samples or with a zero single copy mean are left 0.
func Normalize(results *Results, year int) Series {
	var series = NewSeries(year)
	for i := range MonthNames {
		var month = i + 1
		counts, ok := results.SingleCopy.Get(month, year)
		if !ok {
			slog.Warn("no single copy sample", "month", MonthNames[i], "year", year)
			continue
		}
		mean, _ := SingleCopyMean(counts)
		if mean == 0 {
			slog.Warn("zero single copy mean", "month", MonthNames[i], "year", year)
			continue
		}
		if f, ok := results.ChlF.Get(month, year); ok {
			series.F[i] = float64(f) / mean
		}
		if a, ok := results.ChlA.Get(month, year); ok {
			series.A[i] = float64(a) / mean
		}
	}
	return series
}
