package routes

import (
	"testpark/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTemplateRouter(g *echo.Group, ctrl *controllers.MessageTemplateController) {
	g.GET("/message-templates", ctrl.GetTemplates)
	g.GET("/message-templates/resolve", ctrl.Resolve)
	g.PUT("/message-templates", ctrl.UpsertTemplate)
	g.DELETE("/message-templates/:status", ctrl.DeleteTemplate)
}
