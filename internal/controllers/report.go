package controllers

import (
	"fmt"
	"net/http"
	"time"

	"testpark/internal/services"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) Dashboard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	dashboard, err := c.reportService.Dashboard(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dashboard, "대시보드를 조회했습니다", http.StatusOK)
}

// ExportOrders streams the filtered order list as an xlsx download.
func (c *ReportController) ExportOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	f, err := c.reportService.ExportOrders(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	if err := f.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("주문 내보내기 스트림 실패", zap.Error(err))
		return apperrors.NewHttpError(http.StatusInternalServerError, "파일 생성에 실패했습니다", err, nil)
	}
	return nil
}
