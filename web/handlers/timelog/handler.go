package timelog

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

type Endpoint struct {
	logs     *store.TimeLogStore
	settings *store.SettingStore
	holidays *store.HolidayStore
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{
		logs:     store.NewTimeLogStore(db),
		settings: store.NewSettingStore(db),
		holidays: store.NewHolidayStore(db),
	}

	r.GET("/time_logs", endpoint.List)
	r.POST("/time_logs", endpoint.Create)
	r.PUT("/time_logs/:id", endpoint.Update)
	r.DELETE("/time_logs/:id", endpoint.Delete)
	// legacy wire shape: DELETE /time_logs?id=
	r.DELETE("/time_logs", endpoint.Delete)
	r.GET("/time_logs/stats", endpoint.Stats)
	r.GET("/time_logs/export", endpoint.Export)
	r.POST("/time_logs/import", endpoint.Import)
}

type TimeLogDTO struct {
	ID          int32   `json:"id"`
	Date        string  `json:"date"`
	TimeIn      string  `json:"timeIn"`
	TimeOut     string  `json:"timeOut"`
	HoursWorked float64 `json:"hours_worked"`
	LunchBreak  bool    `json:"includeLunchBreak"`
	Notes       string  `json:"notes,omitempty"`
	Location    string  `json:"location"`
}

func toDTO(log model.TimeLog) TimeLogDTO {
	return TimeLogDTO{
		ID:          log.ID,
		Date:        utils.FormatDate(log.Date),
		TimeIn:      log.TimeIn,
		TimeOut:     log.TimeOut,
		HoursWorked: log.HoursWorked,
		LunchBreak:  log.LunchBreak,
		Notes:       log.Notes,
		Location:    log.Location,
	}
}
