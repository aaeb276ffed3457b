package services

import (
	"context"
	"fmt"

	"testpark/internal/dto"
	"testpark/internal/repositories"
	"testpark/internal/workflow"
	"testpark/pkg/types"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheetName = "주문목록"

var exportHeaders = []string{
	"번호", "접수일", "고객명", "닉네임", "연락처", "지역", "공사 내용", "공사 종류",
	"시공 예정일", "지정 유형", "할당 업체", "상태", "재요청 횟수", "게시글 링크",
}

type ReportServiceInterface interface {
	Dashboard(ctx context.Context, filter types.Filter) (*dto.DashboardDTO, error)
	ExportOrders(ctx context.Context, filter types.Filter) (*excelize.File, error)
}

type ReportService struct {
	reportRepository repositories.ReportRepositoryInterface
	orderRepository  repositories.OrderRepositoryInterface
	logger           *zap.Logger
}

func NewReportService(
	reportRepository repositories.ReportRepositoryInterface,
	orderRepository repositories.OrderRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		reportRepository: reportRepository,
		orderRepository:  orderRepository,
		logger:           logger,
	}
}

// Dashboard returns per-status order counts in lifecycle order, zero-count
// statuses included so the board renders every column.
func (s *ReportService) Dashboard(ctx context.Context, filter types.Filter) (*dto.DashboardDTO, error) {
	counts, total, err := s.reportRepository.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	statusCounts := make([]dto.StatusCountDTO, 0, len(workflow.AllStatuses()))
	for _, status := range workflow.AllStatuses() {
		meta, _ := workflow.Meta(status)
		statusCounts = append(statusCounts, dto.StatusCountDTO{
			Status: string(status),
			Color:  meta.Color,
			Count:  byStatus[string(status)],
		})
	}
	return &dto.DashboardDTO{Total: total, StatusCounts: statusCounts}, nil
}

// ExportOrders renders the filtered order list as an xlsx workbook.
func (s *ReportService) ExportOrders(ctx context.Context, filter types.Filter) (*excelize.File, error) {
	filter.Limit = 0
	filter.Offset = 0

	orders, _, err := s.orderRepository.GetOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheetName)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, order := range orders {
		o := toOrderDTO(order)
		row := []interface{}{
			o.ID, o.ReceivedAt, o.CustomerName, o.Nickname, o.Phone, o.Area,
			o.WorkContent, o.ConstructionType, o.ScheduledDate, o.DesignationType,
			o.AssignedCompany, o.Status, o.ReRequestCount, o.PostLink,
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build data cell: %w", err)
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	s.logger.Info("주문 목록 내보내기", zap.Int("rows", len(orders)))
	return f, nil
}
