package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type Endpoint struct {
	settings *store.SettingStore
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{settings: store.NewSettingStore(db)}

	r.GET("/settings/required_hours", endpoint.GetRequiredHours)
	r.PUT("/settings/required_hours", endpoint.SetRequiredHours)
}

func (ep *Endpoint) GetRequiredHours(c *gin.Context) {
	hours, err := ep.settings.RequiredHours()
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"required_hours": hours}))
}

type SetRequiredHoursDTO struct {
	RequiredHours float64 `json:"required_hours" binding:"required"`
}

func (ep *Endpoint) SetRequiredHours(c *gin.Context) {
	var dto SetRequiredHoursDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if err := ep.settings.SetRequiredHours(dto.RequiredHours); err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"required_hours": dto.RequiredHours}))
}
