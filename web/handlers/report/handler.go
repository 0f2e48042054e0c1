package report

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
	reports *store.ReportStore
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{reports: store.NewReportStore(db)}

	r.GET("/reports", endpoint.List)
	r.POST("/reports", endpoint.Create)
	r.PUT("/reports/:id", endpoint.Update)
	r.DELETE("/reports/:id", endpoint.Delete)
}

type ReportDTO struct {
	ID        int32  `json:"id"`
	WeekStart string `json:"week_start"`
	Summary   string `json:"summary"`
}

func toDTO(r model.Report) ReportDTO {
	return ReportDTO{ID: r.ID, WeekStart: utils.FormatDate(r.WeekStart), Summary: r.Summary}
}

func (ep *Endpoint) List(c *gin.Context) {
	reports, err := ep.reports.List()
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	dtos := make([]ReportDTO, len(reports))
	for i, r := range reports {
		dtos[i] = toDTO(r)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(dtos))
}

type CreateReportDTO struct {
	WeekStart *common.DateOnly `json:"week_start" binding:"required"`
	Summary   string           `json:"summary" binding:"required"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto CreateReportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	report, err := ep.reports.Create(dto.WeekStart.Time, dto.Summary)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(toDTO(*report)))
}

type UpdateReportDTO struct {
	Summary string `json:"summary" binding:"required"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var dto UpdateReportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	report, err := ep.reports.Update(int32(id), dto.Summary)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(toDTO(*report)))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	if err := ep.reports.DeleteByID(int32(id)); err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"deleted": id}))
}
