package routes

import (
	"testpark/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runOrderRouter(g *echo.Group, ctrl *controllers.OrderController) {
	g.GET("/orders", ctrl.GetOrders)
	g.POST("/orders", ctrl.CreateOrder)
	g.POST("/orders/bulk-delete", ctrl.BulkDelete)
	g.GET("/orders/:id", ctrl.FindOrder)
	g.PATCH("/orders/:id/status", ctrl.UpdateStatus)
	g.PATCH("/orders/:id/field", ctrl.UpdateField)
	g.POST("/orders/:id/memos", ctrl.AddMemo)
	g.GET("/orders/:id/memos", ctrl.Memos)
	g.POST("/orders/:id/quote-links", ctrl.AddQuoteLink)
	g.GET("/orders/:id/quote-links", ctrl.QuoteLinks)
	g.POST("/orders/:id/copy", ctrl.CopyOrder)
	g.GET("/orders/:id/timeline", ctrl.Timeline)
}
