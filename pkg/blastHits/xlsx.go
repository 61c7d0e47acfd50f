package blastHits

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

func newSheet(xlsx *excelize.File, i int, sheet string) {
	if i == 0 {
		simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))
	} else {
		simpleUtil.HandleError(xlsx.NewSheet(sheet))
	}
}

// SummaryXlsx writes one sheet per assay plus a Normalized sheet
func SummaryXlsx(path string, title []string, results *Results, series ...Series) {
	var (
		xlsx   = excelize.NewFile()
		rows   = SummaryRows(results)
		sheets = []string{AssayA.String(), AssayF.String(), AssaySingleCopy.String(), "Normalized"}
		rIdx   = make(map[string]int)
	)
	defer simpleUtil.DeferClose(xlsx)

	for i, sheet := range sheets {
		newSheet(xlsx, i, sheet)
		rIdx[sheet] = 2
	}
	for _, sheet := range sheets[:3] {
		var titleRow = make([]interface{}, len(title))
		for i, t := range title {
			titleRow[i] = t
		}
		SetRow(xlsx, sheet, 1, 1, titleRow)
	}
	for _, row := range rows {
		var (
			sheet = row["Assay"].(string)
			cells = make([]interface{}, len(title))
		)
		for i, key := range title {
			cells[i] = row[key]
		}
		SetRow(xlsx, sheet, 1, rIdx[sheet], cells)
		rIdx[sheet]++
	}

	SetRow(xlsx, "Normalized", 1, 1, []interface{}{"Year", "Month", "ChlF", "ChlA"})
	for _, s := range series {
		for i, month := range MonthNames {
			SetRow(xlsx, "Normalized", 1, rIdx["Normalized"], []interface{}{s.Year, month, s.F[i], s.A[i]})
			rIdx["Normalized"]++
		}
	}
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
