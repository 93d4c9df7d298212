package export

import (
	"fmt"

	"eodly/internal/model"

	"github.com/xuri/excelize/v2"
)

// XLSX renders the reports as a real spreadsheet with the same columns as the
// CSV export.
func XLSX(reports []model.Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	f := excelize.NewFile()
	const sheet = "Reports"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range reports {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.Date,
			r.UserName,
			orNA(r.UserMBTI),
			r.WorkHours.Start,
			r.WorkHours.End,
			breakLog(r.Breaks),
			r.Content,
			r.Blockers,
			r.PlanForTomorrow,
			linkLog(r.Links),
			fileLog(r.Files),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
