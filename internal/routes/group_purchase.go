package routes

import (
	"testpark/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runGroupPurchaseRouter(g *echo.Group, ctrl *controllers.GroupPurchaseController) {
	g.GET("/group-purchases", ctrl.GetGroupPurchases)
	g.GET("/group-purchases/:id", ctrl.FindGroupPurchase)
}
