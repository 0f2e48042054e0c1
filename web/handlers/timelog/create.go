package timelog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type CreateTimeLogDTO struct {
	Date              *common.DateOnly `json:"date" binding:"required"`
	TimeIn            string           `json:"timeIn" binding:"required"`
	TimeOut           string           `json:"timeOut" binding:"required"`
	Notes             string           `json:"notes"`
	IncludeLunchBreak bool             `json:"includeLunchBreak"`
	Location          string           `json:"location" binding:"omitempty,oneof=on-site work-from-home"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto CreateTimeLogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	log, err := ep.logs.Create(store.CreateTimeLogInput{
		Date:              dto.Date.Time,
		TimeIn:            dto.TimeIn,
		TimeOut:           dto.TimeOut,
		Notes:             dto.Notes,
		Location:          dto.Location,
		IncludeLunchBreak: dto.IncludeLunchBreak,
	})
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(toDTO(*log)))
}
