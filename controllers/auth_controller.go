package controllers

import (
	"time"

	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/services"
	"github.com/parodie/restaurantBack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(db *gorm.DB, secret string, ttl time.Duration) *AuthController {
	return &AuthController{
		Auth: services.NewAuthService(repository.NewUserRepository(db), secret, ttl),
	}
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Auth.Login(req.Username, req.Password)
	if err != nil {
		writeServiceErr(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, user)
}
