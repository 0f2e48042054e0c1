package timelog

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

func (ep *Endpoint) List(c *gin.Context) {
	var start, end *time.Time

	if s := c.Query("start_date"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid start_date"))
			return
		}
		start = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid end_date"))
			return
		}
		end = &t
	}

	logs, err := ep.logs.List(start, end)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	dtos := make([]TimeLogDTO, len(logs))
	for i, log := range logs {
		dtos[i] = toDTO(log)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(dtos))
}
