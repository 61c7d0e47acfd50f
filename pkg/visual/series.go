// Package visual renders normalized ChlF/ChlA series as HTML (go-echarts) and PNG (gonum/plot) charts.
package visual

import (
	"fmt"

	"ChlBlast/pkg/blastHits"
)

var Months = blastHits.MonthNames

// ZeroTotalError reports a month where ChlF + ChlA is zero
type ZeroTotalError struct {
	Month int
}

func (e *ZeroTotalError) Error() string {
	return fmt.Sprintf("zero ChlF+ChlA total in %s", Months[e.Month])
}

// septemberIndex is the month of the known empty sample in the second sampling year
const septemberIndex = 8

// septemberCorrection is a data specific fix: the second sampling year has no
// september reads, both values are set to 1 so the month shows an even split.
// It returns copies and never touches other months.
func septemberCorrection(f, a []float64) ([]float64, []float64) {
	var f2 = append([]float64(nil), f...)
	var a2 = append([]float64(nil), a...)
	if len(f2) > septemberIndex && len(a2) > septemberIndex {
		f2[septemberIndex] = 1
		a2[septemberIndex] = 1
	}
	return f2, a2
}

// Percent returns the ChlF and ChlA share of each month in percent.
// secondYear applies septemberCorrection first.
func Percent(f, a []float64, secondYear bool) (fPercent, aPercent []float64, err error) {
	if len(f) != len(a) {
		return nil, nil, fmt.Errorf("series length differ: %d != %d", len(f), len(a))
	}
	if secondYear {
		f, a = septemberCorrection(f, a)
	}
	fPercent = make([]float64, len(f))
	aPercent = make([]float64, len(a))
	for i := range f {
		var total = f[i] + a[i]
		if total == 0 {
			return nil, nil, &ZeroTotalError{Month: i}
		}
		fPercent[i] = f[i] / total * 100
		aPercent[i] = a[i] / total * 100
	}
	return
}
