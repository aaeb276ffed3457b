package controllers

import (
	"net/http"
	"strconv"

	"testpark/internal/dto"
	"testpark/internal/services"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MessageTemplateController struct {
	templateService services.MessageTemplateServiceInterface
	logger          *zap.Logger
}

func NewMessageTemplateController(templateService services.MessageTemplateServiceInterface, logger *zap.Logger) *MessageTemplateController {
	return &MessageTemplateController{templateService: templateService, logger: logger}
}

func (c *MessageTemplateController) GetTemplates(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	templates, err := c.templateService.GetTemplates(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, templates, "템플릿 목록을 조회했습니다", http.StatusOK)
}

// Resolve substitutes an order's details into the template for
// ?order_id= and ?status=.
func (c *MessageTemplateController) Resolve(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	orderID, err := strconv.Atoi(ctx.QueryParam("order_id"))
	if err != nil || orderID <= 0 {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest,
			"order_id가 올바르지 않습니다",
			err,
			map[string]interface{}{"order_id": ctx.QueryParam("order_id")},
		), c.logger)
	}
	status := ctx.QueryParam("status")
	if status == "" {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "status가 필요합니다", nil, nil), c.logger)
	}

	resolved, err := c.templateService.Resolve(reqCtx, orderID, status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, resolved, "템플릿을 조회했습니다", http.StatusOK)
}

func (c *MessageTemplateController) UpsertTemplate(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.UpsertTemplateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	template, err := c.templateService.UpsertTemplate(reqCtx, payload.Status, payload.Content)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, template, "템플릿이 저장되었습니다", http.StatusOK)
}

func (c *MessageTemplateController) DeleteTemplate(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	status := ctx.Param("status")

	if err := c.templateService.DeleteTemplate(reqCtx, status); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "템플릿이 삭제되었습니다", http.StatusOK)
}
