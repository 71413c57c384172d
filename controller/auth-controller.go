package controller

import (
	"time"

	"epochrank/repository"
	"epochrank/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	adminService *service.AdminService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		adminService: service.NewAdminService(db),
	}
}

func setupAuthController(db *gorm.DB) []RouteInfo {
	e := NewAuthController(db)
	return []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "GET", Path: "/logout", HandlerFunc: e.logoutHandler(), Authenticated: true},
	}
}

// @Description Authenticates an admin and sets the auth cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} AdminResponse
// @Router /login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request LoginRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		admin, token, err := e.adminService.Login(request.Username, request.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		c.SetCookie("auth", token, int((time.Hour * 24 * 7).Seconds()), "/", "", false, true)
		c.JSON(200, toAdminResponse(admin))
	}
}

// @Description Clears the auth cookie
// @Tags auth
// @Success 204
// @Router /logout [get]
func (e *AuthController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", "", false, true)
		c.JSON(204, nil)
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminResponse struct {
	Id          int        `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func toAdminResponse(admin *repository.Admin) AdminResponse {
	return AdminResponse{
		Id:          admin.Id,
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		LastLoginAt: admin.LastLoginAt,
	}
}
