package holiday

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type Endpoint struct {
	holidays *store.HolidayStore
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{holidays: store.NewHolidayStore(db)}

	r.GET("/holidays", endpoint.List)
	r.POST("/holidays", endpoint.Create)
	r.DELETE("/holidays/:id", endpoint.Delete)
}

type HolidayDTO struct {
	ID   int32  `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

func toDTO(h model.Holiday) HolidayDTO {
	return HolidayDTO{ID: h.ID, Date: utils.FormatDate(h.Date), Name: h.Name}
}

func (ep *Endpoint) List(c *gin.Context) {
	holidays, err := ep.holidays.List()
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	dtos := make([]HolidayDTO, len(holidays))
	for i, h := range holidays {
		dtos[i] = toDTO(h)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(dtos))
}

type CreateHolidayDTO struct {
	Date *common.DateOnly `json:"date" binding:"required"`
	Name string           `json:"name" binding:"required"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto CreateHolidayDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	holiday, err := ep.holidays.Create(dto.Date.Time, dto.Name)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(toDTO(*holiday)))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	if err := ep.holidays.DeleteByID(int32(id)); err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"deleted": id}))
}
