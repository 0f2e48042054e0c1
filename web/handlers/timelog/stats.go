package timelog

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shin-da/ojt-tracking-system-sub000/tracker"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type StatsDTO struct {
	TotalHours              float64                `json:"total_hours"`
	TotalDays               int                    `json:"total_days"`
	RequiredHours           float64                `json:"required_hours"`
	ProgressPercentage      float64                `json:"progress_percentage"`
	RawProgressPercentage   float64                `json:"raw_progress_percentage"`
	RemainingHours          float64                `json:"remaining_hours"`
	DailyAverage            float64                `json:"daily_average"`
	EstimatedCompletionDays int                    `json:"estimated_completion_days"`
	EstimatedCompletionDate string                 `json:"estimated_completion_date"` // empty when already completed
	WeeklyHoursNeeded       float64                `json:"weekly_hours_needed"`
	WeeklyHours             []tracker.PeriodEntry  `json:"weekly_hours"`
	MonthlyHours            []tracker.PeriodEntry  `json:"monthly_hours"`
	HeatmapData             []tracker.HeatmapPoint `json:"heatmap_data"`
	StartDate               string                 `json:"start_date"`
	LastLogDate             string                 `json:"last_log_date"`
}

// Stats returns the full rollup plus the forward projection. Either the
// whole consistent result comes back or an error does, never a partial mix.
func (ep *Endpoint) Stats(c *gin.Context) {
	logs, err := ep.logs.List(nil, nil)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	requiredHours, err := ep.settings.RequiredHours()
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	holidayDates, err := ep.holidays.Dates()
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	// reference_date makes projections reproducible; default is today.
	referenceDate := time.Now()
	if s := c.Query("reference_date"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid reference_date"))
			return
		}
		referenceDate = t
	}

	summary := tracker.Aggregate(logs)

	report, err := tracker.Project(summary.TotalHours, summary.TotalDays, requiredHours, referenceDate, holidayDates)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	dto := StatsDTO{
		TotalHours:              summary.TotalHours,
		TotalDays:               summary.TotalDays,
		RequiredHours:           report.RequiredHours,
		ProgressPercentage:      report.ProgressPercentage,
		RawProgressPercentage:   report.RawProgressPercentage,
		RemainingHours:          report.RemainingHours,
		DailyAverage:            report.DailyAverage,
		EstimatedCompletionDays: report.EstimatedCompletionDays,
		WeeklyHoursNeeded:       report.WeeklyHoursNeeded,
		WeeklyHours:             summary.WeeklySeries(),
		MonthlyHours:            summary.MonthlySeries(),
		HeatmapData:             summary.Heatmap,
	}

	if report.EstimatedCompletionDate != nil {
		dto.EstimatedCompletionDate = utils.FormatDate(*report.EstimatedCompletionDate)
	}

	if len(summary.Heatmap) > 0 {
		dto.StartDate = summary.Heatmap[0].Date
		dto.LastLogDate = summary.Heatmap[len(summary.Heatmap)-1].Date
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(dto))
}
