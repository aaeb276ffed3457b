package routes

import (
	"testpark/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/dashboard", ctrl.Dashboard)
	g.GET("/reports/orders/export", ctrl.ExportOrders)
}
