package timelog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

func (ep *Endpoint) Delete(c *gin.Context) {
	idParam := c.Param("id")
	if idParam == "" {
		idParam = c.Query("id")
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	if err := ep.logs.DeleteByID(int32(id)); err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"deleted": id}))
}
