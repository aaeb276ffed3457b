package controllers

import (
	"net/http"

	"testpark/internal/services"
	"testpark/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type GroupPurchaseController struct {
	groupPurchaseService services.GroupPurchaseServiceInterface
	logger               *zap.Logger
}

func NewGroupPurchaseController(groupPurchaseService services.GroupPurchaseServiceInterface, logger *zap.Logger) *GroupPurchaseController {
	return &GroupPurchaseController{groupPurchaseService: groupPurchaseService, logger: logger}
}

func (c *GroupPurchaseController) GetGroupPurchases(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	groupPurchases, err := c.groupPurchaseService.GetGroupPurchases(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, groupPurchases, "공동구매 목록을 조회했습니다", http.StatusOK)
}

func (c *GroupPurchaseController) FindGroupPurchase(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	gp, err := c.groupPurchaseService.FindGroupPurchase(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, gp, "공동구매를 조회했습니다", http.StatusOK)
}
