package leave

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	exportSheet   = "Leave Requests"
	exportMIME    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDateFmt = "2006-01-02 15:04"
)

var exportHeader = []any{
	"ID", "Employee", "Team", "Leave Type", "Start", "End", "Status", "Reason", "Requested", "Approver", "Notes",
}

// WriteXLSX renders one row per request under a header row, in list order.
func WriteXLSX(w io.Writer, result ListResult) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetCellStyle(exportSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	_ = f.SetColWidth(exportSheet, "B", "D", 20)
	_ = f.SetColWidth(exportSheet, "E", "F", 17)
	_ = f.SetColWidth(exportSheet, "H", "H", 40)

	for i, item := range result.Items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			item.ID,
			item.EmployeeName,
			deref(item.TeamName),
			item.LeaveTypeName,
			item.StartDateTime.Format(exportDateFmt),
			item.EndDateTime.Format(exportDateFmt),
			item.StatusName,
			deref(item.Reason),
			item.RequestedDate.Format(exportDateFmt),
			deref(item.ApproverUsername),
			deref(item.ApproverNotes),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

func exportFilename(result ListResult) string {
	return fmt.Sprintf("leave-requests_%s_%s.xlsx", result.StartDate, result.EndDate)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
