package blastHits

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

// DefaultTitleSummary is used when etc/title.Summary.txt is not loaded
var DefaultTitleSummary = []string{"Assay", "Month", "Year", "File", "Count", "RPS2", "RPL1", "IF-2", "SingleCopyMean"}

var normalizedTitle = []string{"Year", "Month", "ChlF", "ChlA"}

func sortedMonths[V any](m map[int]V) []int {
	var keys = make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// SummaryRows flattens results into one row per sample, keyed by summary title
func SummaryRows(results *Results) (rows []map[string]any) {
	var add = func(assay Assay, mc MonthCounts) {
		for _, month := range sortedMonths(mc) {
			for _, yc := range mc[month] {
				rows = append(rows, map[string]any{
					"Assay": assay.String(),
					"Month": MonthNames[month-1],
					"Year":  yc.Year,
					"File":  yc.File,
					"Count": yc.Count,
				})
			}
		}
	}
	add(AssayA, results.ChlA)
	add(AssayF, results.ChlF)

	for _, month := range sortedMonths(results.SingleCopy) {
		for _, yc := range results.SingleCopy[month] {
			var row = map[string]any{
				"Assay": AssaySingleCopy.String(),
				"Month": MonthNames[month-1],
				"Year":  yc.Year,
				"File":  yc.File,
			}
			var sum = 0
			for _, ref := range CountedReferences {
				row[ref.String()] = yc.Counts[ref]
				sum += yc.Counts[ref]
			}
			row["Count"] = sum
			row["SingleCopyMean"], _ = SingleCopyMean(yc.Counts)
			rows = append(rows, row)
		}
	}
	return
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', 4, 64)
	default:
		return fmt.Sprint(x)
	}
}

// WriteSummary writes rows as tab separated text in title order
func WriteSummary(w io.Writer, title []string, rows []map[string]any) {
	fmtUtil.FprintStringArray(w, title, "\t")
	for _, row := range rows {
		var cells = make([]string, len(title))
		for i, key := range title {
			cells[i] = formatCell(row[key])
		}
		fmtUtil.FprintStringArray(w, cells, "\t")
	}
}

// WriteSummaryTxt writes summary.txt
func WriteSummaryTxt(path string, title []string, results *Results) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)
	WriteSummary(out, title, SummaryRows(results))
}

// WriteNormalizedTxt writes one row per year and month
func WriteNormalizedTxt(path string, series ...Series) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	fmtUtil.FprintStringArray(out, normalizedTitle, "\t")
	for _, s := range series {
		for i, month := range MonthNames {
			fmtUtil.Fprintf(out, "%d\t%s\t%g\t%g\n", s.Year, month, s.F[i], s.A[i])
		}
	}
}

// ReadNormalizedTxt loads the table written by WriteNormalizedTxt, ordered by year
func ReadNormalizedTxt(path string) ([]Series, error) {
	var (
		byYear = make(map[int]Series)
		years  []int
	)
	for i, row := range textUtil.File2Slice(path, "\t") {
		if i == 0 || len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		if len(row) < len(normalizedTitle) {
			return nil, fmt.Errorf("%s:%d: want %d columns, got %d", path, i+1, len(normalizedTitle), len(row))
		}
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: year: %w", path, i+1, err)
		}
		month, ok := monthToNumber[row[1]]
		if !ok {
			return nil, &UnknownMonthError{Name: path, Abbrev: row[1]}
		}
		f, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: ChlF: %w", path, i+1, err)
		}
		a, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: ChlA: %w", path, i+1, err)
		}
		s, ok := byYear[year]
		if !ok {
			s = NewSeries(year)
			years = append(years, year)
		}
		s.F[month-1] = f
		s.A[month-1] = a
		byYear[year] = s
	}
	sort.Ints(years)
	var series = make([]Series, len(years))
	for i, year := range years {
		series[i] = byYear[year]
	}
	return series, nil
}
