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

type CompanyController struct {
	companyService    services.CompanyServiceInterface
	assignmentService services.AssignmentServiceInterface
	logger            *zap.Logger
}

func NewCompanyController(
	companyService services.CompanyServiceInterface,
	assignmentService services.AssignmentServiceInterface,
	logger *zap.Logger,
) *CompanyController {
	return &CompanyController{
		companyService:    companyService,
		assignmentService: assignmentService,
		logger:            logger,
	}
}

func (c *CompanyController) GetCompanies(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	companies, total, err := c.companyService.GetCompanies(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, companies, "업체 목록을 조회했습니다", http.StatusOK, total)
}

func (c *CompanyController) FindCompany(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	company, err := c.companyService.FindCompany(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, company, "업체를 조회했습니다", http.StatusOK)
}

// MatchCandidates returns the ranked candidate panel for ?order_id=.
func (c *CompanyController) MatchCandidates(ctx echo.Context) error {
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

	matches, err := c.assignmentService.MatchCandidates(reqCtx, orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, matches, "매칭 후보를 조회했습니다", http.StatusOK)
}

func (c *CompanyController) AssignCompanies(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.AssignCompaniesDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.assignmentService.AssignCompanies(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "업체가 할당되었습니다", http.StatusOK)
}
