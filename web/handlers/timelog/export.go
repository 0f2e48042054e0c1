package timelog

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Shin-da/ojt-tracking-system-sub000/tracker"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

// Export writes the full log history and its rollup to an xlsx workbook.
func (ep *Endpoint) Export(c *gin.Context) {
	logs, err := ep.logs.List(nil, nil)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	summary := tracker.Aggregate(logs)

	f := excelize.NewFile()
	defer f.Close()

	const logSheet = "Time Logs"
	f.SetSheetName("Sheet1", logSheet)

	headers := []string{"Date", "Time In", "Time Out", "Hours", "Lunch Break", "Location", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(logSheet, cell, h)
	}

	for row, log := range logs {
		values := []interface{}{
			utils.FormatDate(log.Date),
			log.TimeIn,
			log.TimeOut,
			log.HoursWorked,
			utils.FormatBoolean(log.LunchBreak, "yes", "no"),
			log.Location,
			log.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(logSheet, cell, v)
		}
	}

	const summarySheet = "Summary"
	f.NewSheet(summarySheet)
	f.SetCellValue(summarySheet, "A1", "Total Hours")
	f.SetCellValue(summarySheet, "B1", summary.TotalHours)
	f.SetCellValue(summarySheet, "A2", "Total Days")
	f.SetCellValue(summarySheet, "B2", summary.TotalDays)

	row := 4
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Week")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), "Hours")
	f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), "Days")
	for _, entry := range summary.WeeklySeries() {
		row++
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), entry.Period)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), entry.Hours)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), entry.Days)
	}

	c.Header("Content-Disposition", `attachment; filename="time_logs.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
}
