package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"testpark/internal/dto"
	"testpark/internal/entities"
	"testpark/internal/repositories"
	"testpark/internal/workflow"
	"testpark/pkg/constants"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/types"
	"testpark/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Labels shown in the field-edit history when the client does not send one.
var fieldLabels = map[string]string{
	"customer_name":     "고객명",
	"nickname":          "닉네임",
	"phone":             "연락처",
	"naver_id":          "네이버ID",
	"area":              "시공 지역",
	"work_content":      "공사 내용",
	"construction_type": "공사 종류",
	"scheduled_date":    "시공 예정일",
	"designation":       "지정 내용",
	"designation_type":  "지정 유형",
	"assigned_company":  "할당 업체",
	"post_link":         "게시글 링크",
	"re_request_count":  "재요청 횟수",
}

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderDTO, uint64, error)
	FindOrder(ctx context.Context, id int) (*dto.OrderDTO, error)
	CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error)
	UpdateStatus(ctx context.Context, id int, payload dto.UpdateStatusDTO) (*dto.OrderDTO, error)
	UpdateField(ctx context.Context, id int, payload dto.UpdateFieldDTO) (*dto.OrderDTO, error)
	AddMemo(ctx context.Context, id int, payload dto.AddMemoDTO) (*dto.MemoDTO, error)
	AddQuoteLink(ctx context.Context, id int, payload dto.AddQuoteLinkDTO) (*dto.QuoteLinkDTO, error)
	CopyOrder(ctx context.Context, id int) (*dto.OrderDTO, error)
	BulkDelete(ctx context.Context, payload dto.BulkDeleteDTO) (int64, error)
}

type OrderService struct {
	orderRepository   repositories.OrderRepositoryInterface
	historyRepository repositories.HistoryRepositoryInterface
	memoRepository    repositories.MemoRepositoryInterface
	quoteLinkRepo     repositories.QuoteLinkRepositoryInterface
	txManager         repositories.TxManagerInterface
	logger            *zap.Logger
}

func NewOrderService(
	orderRepository repositories.OrderRepositoryInterface,
	historyRepository repositories.HistoryRepositoryInterface,
	memoRepository repositories.MemoRepositoryInterface,
	quoteLinkRepo repositories.QuoteLinkRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepository:   orderRepository,
		historyRepository: historyRepository,
		memoRepository:    memoRepository,
		quoteLinkRepo:     quoteLinkRepo,
		txManager:         txManager,
		logger:            logger,
	}
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderDTO, uint64, error) {
	orders, total, err := s.orderRepository.GetOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderDTO(o))
	}
	return result, total, nil
}

func (s *OrderService) FindOrder(ctx context.Context, id int) (*dto.OrderDTO, error) {
	order, err := s.orderRepository.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toOrderDTO(*order)
	return &out, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	order := entities.Order{
		ReceivedAt:       repositories.NowUTC(),
		CustomerName:     payload.CustomerName,
		Nickname:         payload.Nickname,
		Phone:            payload.Phone,
		NaverID:          payload.NaverID,
		Area:             payload.Area,
		WorkContent:      payload.WorkContent,
		ConstructionType: payload.ConstructionType,
		Designation:      payload.Designation,
		DesignationType:  payload.DesignationType,
		Status:           string(workflow.StatusWaiting),
	}
	if order.DesignationType == "" {
		order.DesignationType = constants.DesignationNone
	}
	if payload.ScheduledDate != "" {
		d, err := time.Parse(dateLayout, payload.ScheduledDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("시공 예정일 형식이 잘못되었습니다: %s", payload.ScheduledDate)
		}
		order.ScheduledDate = null.TimeFrom(d)
	}
	if payload.PostLink != "" {
		order.PostLink = null.StringFrom(payload.PostLink)
	}

	id, err := s.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("주문 생성 실패", zap.Error(err))
		return nil, err
	}
	s.logger.Info("주문 접수", zap.Int("orderId", id), zap.String("customer", order.CustomerName))
	return s.FindOrder(ctx, id)
}

// UpdateStatus applies one status transition inside a transaction: the row is
// locked, the transition validated against the lifecycle table, the order
// updated and an append-only history row written, all or nothing.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, payload dto.UpdateStatusDTO) (*dto.OrderDTO, error) {
	author := utils.GetUserNameFromCtx(ctx)

	if payload.MessageSent && !constants.IsValidRecipient(payload.Recipient) {
		return nil, apperrors.NewInvalidInputError("알림 수신자가 올바르지 않습니다: %s", payload.Recipient)
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.orderRepository.FindOrderForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		current := workflow.Status(order.Status)
		target := workflow.Status(payload.Status)
		if err := workflow.CanTransition(current, target, order.AssignedCompany.String); err != nil {
			return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
		}

		if err := s.orderRepository.UpdateStatusInTx(ctx, tx, id, payload.Status); err != nil {
			return err
		}

		entry := entities.StatusHistory{
			OrderID:     id,
			TxID:        uuid.New(),
			Author:      author,
			OldStatus:   order.Status,
			NewStatus:   payload.Status,
			MessageSent: payload.MessageSent,
		}
		if payload.MessageSent {
			entry.MessageContent = null.StringFrom(payload.MessageContent)
			entry.Recipient = null.StringFrom(payload.Recipient)
		}
		return s.historyRepository.InsertStatusHistoryInTx(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("상태 변경", zap.Int("orderId", id), zap.String("status", payload.Status), zap.String("author", author))
	return s.FindOrder(ctx, id)
}

// UpdateField edits one whitelisted order field and records the old and new
// values in the field history, in the same transaction.
func (s *OrderService) UpdateField(ctx context.Context, id int, payload dto.UpdateFieldDTO) (*dto.OrderDTO, error) {
	author := utils.GetUserNameFromCtx(ctx)

	column, ok := repositories.OrderFieldColumns[payload.FieldName]
	if !ok {
		return nil, apperrors.NewInvalidInputError("수정할 수 없는 항목입니다: %s", payload.FieldName)
	}

	value, err := convertFieldValue(payload.FieldName, payload.NewValue)
	if err != nil {
		return nil, err
	}

	label := payload.FieldLabel
	if label == "" {
		label = fieldLabels[payload.FieldName]
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.orderRepository.FindOrderForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		oldValue := orderFieldValue(order, payload.FieldName)
		if oldValue == payload.NewValue {
			return nil
		}

		if err := s.orderRepository.UpdateColumnInTx(ctx, tx, id, column, value); err != nil {
			return err
		}

		entry := entities.FieldHistory{
			OrderID:    id,
			TxID:       uuid.New(),
			Author:     author,
			FieldName:  payload.FieldName,
			FieldLabel: label,
		}
		if oldValue != "" {
			entry.OldValue = null.StringFrom(oldValue)
		}
		if payload.NewValue != "" {
			entry.NewValue = null.StringFrom(payload.NewValue)
		}
		return s.historyRepository.InsertFieldHistoryInTx(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}
	return s.FindOrder(ctx, id)
}

func (s *OrderService) AddMemo(ctx context.Context, id int, payload dto.AddMemoDTO) (*dto.MemoDTO, error) {
	if _, err := s.orderRepository.FindOrder(ctx, id); err != nil {
		return nil, err
	}
	memo, err := s.memoRepository.InsertMemo(ctx, entities.Memo{
		OrderID: id,
		Author:  utils.GetUserNameFromCtx(ctx),
		Content: payload.Content,
	})
	if err != nil {
		return nil, err
	}
	out := toMemoDTO(*memo)
	return &out, nil
}

// AddQuoteLink attaches a quote artifact. When the client omits the draft
// label it is allocated from the existing count: 초안 for the first link,
// then 1차, 2차 and so on.
func (s *OrderService) AddQuoteLink(ctx context.Context, id int, payload dto.AddQuoteLinkDTO) (*dto.QuoteLinkDTO, error) {
	if _, err := s.orderRepository.FindOrder(ctx, id); err != nil {
		return nil, err
	}

	draftType := payload.DraftType
	if draftType == "" {
		count, err := s.quoteLinkRepo.CountByOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			draftType = constants.DraftTypeInitial
		} else {
			draftType = fmt.Sprintf("%d차", count)
		}
	}

	link, err := s.quoteLinkRepo.InsertQuoteLink(ctx, entities.QuoteLink{
		OrderID:   id,
		DraftType: draftType,
		Link:      payload.Link,
	})
	if err != nil {
		return nil, err
	}
	out := toQuoteLinkDTO(*link)
	return &out, nil
}

// CopyOrder duplicates an order into a fresh 대기중 row, clearing the
// assignment, post link and re-request count.
func (s *OrderService) CopyOrder(ctx context.Context, id int) (*dto.OrderDTO, error) {
	var newID int
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		src, err := s.orderRepository.FindOrderForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		newID, err = s.orderRepository.CopyOrderInTx(ctx, tx, *src, "")
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("주문 복사", zap.Int("sourceId", id), zap.Int("newId", newID))
	return s.FindOrder(ctx, newID)
}

func (s *OrderService) BulkDelete(ctx context.Context, payload dto.BulkDeleteDTO) (int64, error) {
	deleted, err := s.orderRepository.SoftDeleteOrders(ctx, payload.OrderIDs)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.ErrNotFound
	}
	s.logger.Info("주문 일괄 삭제", zap.Int64("count", deleted))
	return deleted, nil
}

func convertFieldValue(field, raw string) (interface{}, error) {
	switch field {
	case "scheduled_date":
		if raw == "" {
			return nil, nil
		}
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("시공 예정일 형식이 잘못되었습니다: %s", raw)
		}
		return d, nil
	case "re_request_count":
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, apperrors.NewInvalidInputError("재요청 횟수가 올바르지 않습니다: %s", raw)
		}
		return n, nil
	case "designation_type":
		if raw != "" && !constants.IsValidDesignationType(raw) {
			return nil, apperrors.NewInvalidInputError("지정 유형이 올바르지 않습니다: %s", raw)
		}
		return raw, nil
	case "assigned_company":
		if raw == "" {
			return nil, nil
		}
		return raw, nil
	default:
		return raw, nil
	}
}

func orderFieldValue(o *entities.Order, field string) string {
	switch field {
	case "customer_name":
		return o.CustomerName
	case "nickname":
		return o.Nickname
	case "phone":
		return o.Phone
	case "naver_id":
		return o.NaverID
	case "area":
		return o.Area
	case "work_content":
		return o.WorkContent
	case "construction_type":
		return o.ConstructionType
	case "scheduled_date":
		if !o.ScheduledDate.Valid {
			return ""
		}
		return o.ScheduledDate.Time.Format(dateLayout)
	case "designation":
		return o.Designation
	case "designation_type":
		return o.DesignationType
	case "assigned_company":
		return o.AssignedCompany.String
	case "post_link":
		return o.PostLink.String
	case "re_request_count":
		return strconv.Itoa(o.ReRequestCount)
	}
	return ""
}

func toOrderDTO(o entities.Order) dto.OrderDTO {
	status := workflow.Status(o.Status)
	color := ""
	if meta, ok := workflow.Meta(status); ok {
		color = meta.Color
	}
	next := workflow.AllowedNext(status, o.AssignedCompany.String)
	allowed := make([]string, 0, len(next))
	for _, s := range next {
		allowed = append(allowed, string(s))
	}

	out := dto.OrderDTO{
		ID:               o.ID,
		ReceivedAt:       o.ReceivedAt.Format(time.RFC3339),
		CustomerName:     o.CustomerName,
		Nickname:         o.Nickname,
		Phone:            o.Phone,
		NaverID:          o.NaverID,
		Area:             o.Area,
		WorkContent:      o.WorkContent,
		ConstructionType: o.ConstructionType,
		Designation:      o.Designation,
		DesignationType:  o.DesignationType,
		AssignedCompany:  o.AssignedCompany.String,
		Status:           o.Status,
		StatusColor:      color,
		AllowedNext:      allowed,
		ReRequestCount:   o.ReRequestCount,
		PostLink:         o.PostLink.String,
		CreatedAt:        o.CreatedAt.Format(time.RFC3339),
	}
	if o.ScheduledDate.Valid {
		out.ScheduledDate = o.ScheduledDate.Time.Format(dateLayout)
	}
	return out
}

func toMemoDTO(m entities.Memo) dto.MemoDTO {
	return dto.MemoDTO{
		ID:        m.ID,
		OrderID:   m.OrderID,
		Author:    m.Author,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func toQuoteLinkDTO(l entities.QuoteLink) dto.QuoteLinkDTO {
	return dto.QuoteLinkDTO{
		ID:        l.ID,
		OrderID:   l.OrderID,
		DraftType: l.DraftType,
		Link:      l.Link,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}
