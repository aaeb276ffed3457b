package routes

import (
	"testpark/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCompanyRouter(g *echo.Group, ctrl *controllers.CompanyController) {
	g.GET("/companies", ctrl.GetCompanies)
	g.GET("/companies/match", ctrl.MatchCandidates)
	g.POST("/companies/assign", ctrl.AssignCompanies)
	g.GET("/companies/:id", ctrl.FindCompany)
}
