package routes

import (
	"testpark/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(g *echo.Group, ctrl *controllers.AuthController) {
	g.POST("/auth/login", ctrl.Login)
	g.POST("/auth/refresh", ctrl.Refresh)
}
