package timelog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/tracker"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

// Import accepts a CSV upload with a header row:
// date,time_in,time_out,notes[,lunch_break[,location]]
// Every row is validated before the first insert happens.
func (ep *Endpoint) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Missing CSV file upload"))
		return
	}
	defer file.Close()

	rows, err := utils.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(fmt.Sprintf("Invalid CSV: %v", err)))
		return
	}

	var inputs []store.CreateTimeLogInput
	for i, row := range rows {
		if i == 0 {
			continue
		}

		if len(row) < 3 {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(fmt.Sprintf("Row %d: expected at least 3 columns, got %d", i, len(row))))
			return
		}

		date, err := utils.ParseDate(row[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(fmt.Sprintf("Row %d: %v", i, err)))
			return
		}

		input := store.CreateTimeLogInput{
			Date:    date,
			TimeIn:  row[1],
			TimeOut: row[2],
		}
		if len(row) > 3 {
			input.Notes = row[3]
		}
		if len(row) > 4 {
			input.IncludeLunchBreak = strings.EqualFold(row[4], "yes") || row[4] == "1" || strings.EqualFold(row[4], "true")
		}
		if len(row) > 5 {
			input.Location = row[5]
		}

		if _, err := tracker.ComputeHoursWorked(input.TimeIn, input.TimeOut, input.IncludeLunchBreak); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(fmt.Sprintf("Row %d: %v", i, err)))
			return
		}

		inputs = append(inputs, input)
	}

	created := make([]TimeLogDTO, 0, len(inputs))
	for _, input := range inputs {
		log, err := ep.logs.Create(input)
		if err != nil {
			status, body := common.MapError(err)
			c.JSON(status, body)
			return
		}
		created = append(created, toDTO(*log))
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{
		"imported": len(created),
		"logs":     created,
	}))
}
