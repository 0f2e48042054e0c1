package task

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type Endpoint struct {
	tasks *store.TaskStore
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{tasks: store.NewTaskStore(db)}

	r.GET("/tasks", endpoint.List)
	r.POST("/tasks", endpoint.Create)
	r.PUT("/tasks/:id", endpoint.Update)
	r.DELETE("/tasks/:id", endpoint.Delete)
}

type TaskDTO struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
}

func toDTO(t model.Task) TaskDTO {
	dto := TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
	}
	if t.DueDate != nil {
		dto.DueDate = utils.FormatDate(*t.DueDate)
	}
	return dto
}

func (ep *Endpoint) List(c *gin.Context) {
	tasks, err := ep.tasks.List()
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = toDTO(t)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(dtos))
}

type CreateTaskDTO struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Status      string           `json:"status" binding:"omitempty,oneof=pending in_progress done"`
	DueDate     *common.DateOnly `json:"due_date,omitempty"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto CreateTaskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var dueDate *time.Time
	if dto.DueDate != nil && !dto.DueDate.IsZero() {
		dueDate = &dto.DueDate.Time
	}

	task, err := ep.tasks.Create(dto.Title, dto.Description, dto.Status, dueDate)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(toDTO(*task)))
}

type UpdateTaskDTO struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress done"`
	DueDate     *common.DateOnly `json:"due_date,omitempty"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var dto UpdateTaskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	input := store.UpdateTaskInput{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      dto.Status,
	}
	if dto.DueDate != nil {
		input.DueDate = &dto.DueDate.Time
	}

	task, err := ep.tasks.Update(int32(id), input)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(toDTO(*task)))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	if err := ep.tasks.DeleteByID(int32(id)); err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"deleted": id}))
}
