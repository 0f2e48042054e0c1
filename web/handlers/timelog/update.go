package timelog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type UpdateTimeLogDTO struct {
	Date              *common.DateOnly `json:"date,omitempty"`
	TimeIn            *string          `json:"timeIn,omitempty"`
	TimeOut           *string          `json:"timeOut,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	IncludeLunchBreak *bool            `json:"includeLunchBreak,omitempty"`
	Location          *string          `json:"location,omitempty" binding:"omitempty,oneof=on-site work-from-home"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var dto UpdateTimeLogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	input := store.UpdateTimeLogInput{
		TimeIn:            dto.TimeIn,
		TimeOut:           dto.TimeOut,
		Notes:             dto.Notes,
		Location:          dto.Location,
		IncludeLunchBreak: dto.IncludeLunchBreak,
	}
	if dto.Date != nil {
		input.Date = &dto.Date.Time
	}

	log, err := ep.logs.Update(int32(id), input)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(toDTO(*log)))
}
