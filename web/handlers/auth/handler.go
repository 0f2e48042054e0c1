package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/config"
	"github.com/Shin-da/ojt-tracking-system-sub000/security"
	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type Endpoint struct {
	users *store.UserStore
}

func Register(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &Endpoint{users: store.NewUserStore(db)}

	r.POST("/auth/login", endpoint.Login)
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ep *Endpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	user, err := ep.users.CheckPassword(dto.Username, dto.Password)
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	expiresIn := time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute
	token, err := security.CreateIdentityToken(&security.TraineeIdentity{
		ID:       user.ID,
		Username: user.Username,
	}, []byte(config.Cfg.JWTSecret), expiresIn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"token":    token,
		"username": user.Username,
	}))
}
