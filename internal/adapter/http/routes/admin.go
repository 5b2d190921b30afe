package routes

import (
	"hometheater_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdminLogin  = "/admin-login"
	PathAdminLogout = "/admin-logout"
	PathAdmin       = "/admin"
)

func addAdminRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	serviceRequestHandler *handlers.ServiceRequestHandler,
	adminRequired gin.HandlerFunc,
) {
	rg.POST(PathAdminLogin, authHandler.Login)
	rg.POST(PathAdminLogout, authHandler.Logout)

	admin := rg.Group(PathAdmin, adminRequired)
	{
		admin.GET("/requests", serviceRequestHandler.List)
		admin.GET("/requests/export", serviceRequestHandler.Export)
	}
}
