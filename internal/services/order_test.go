package services

import (
	"context"
	"testing"
	"time"

	"testpark/internal/dto"
	"testpark/internal/entities"
	"testpark/pkg/contextkeys"
	apperrors "testpark/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func operatorCtx(name string) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, 1)
	return context.WithValue(ctx, contextkeys.UserNameKey, name)
}

func waitingOrder(id int) *entities.Order {
	o := &entities.Order{
		ID:           id,
		ReceivedAt:   time.Now(),
		CustomerName: "김철수",
		Phone:        "010-1234-5678",
		Area:         "서울 강남구",
		WorkContent:  "주방 리모델링",
		Status:       "대기중",
	}
	now := time.Now()
	o.CreatedAt = &now
	return o
}

func newOrderService(orderRepo *stubOrderRepo, historyRepo *stubHistoryRepo, quoteRepo *stubQuoteLinkRepo) OrderServiceInterface {
	if historyRepo == nil {
		historyRepo = &stubHistoryRepo{}
	}
	if quoteRepo == nil {
		quoteRepo = &stubQuoteLinkRepo{}
	}
	return NewOrderService(orderRepo, historyRepo, &stubMemoRepo{}, quoteRepo, stubTxManager{}, zap.NewNop())
}

func TestUpdateStatusWritesHistory(t *testing.T) {
	orderRepo := newStubOrderRepo(waitingOrder(1))
	historyRepo := &stubHistoryRepo{}
	svc := newOrderService(orderRepo, historyRepo, nil)

	updated, err := svc.UpdateStatus(operatorCtx("박운영"), 1, dto.UpdateStatusDTO{
		Status:         "할당",
		MessageSent:    true,
		MessageContent: "안내 메시지",
		Recipient:      "업체+고객",
	})
	require.NoError(t, err)
	assert.Equal(t, "할당", updated.Status)

	require.Len(t, historyRepo.statusEntries, 1)
	entry := historyRepo.statusEntries[0]
	assert.Equal(t, "대기중", entry.OldStatus)
	assert.Equal(t, "할당", entry.NewStatus)
	assert.Equal(t, "박운영", entry.Author)
	assert.True(t, entry.MessageSent)
	assert.Equal(t, "업체+고객", entry.Recipient.String)
	assert.NotEqual(t, uuid.Nil, entry.TxID)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	orderRepo := newStubOrderRepo(waitingOrder(1))
	historyRepo := &stubHistoryRepo{}
	svc := newOrderService(orderRepo, historyRepo, nil)

	_, err := svc.UpdateStatus(operatorCtx("박운영"), 1, dto.UpdateStatusDTO{Status: "계약"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)

	// nothing was written
	assert.Empty(t, historyRepo.statusEntries)
	assert.Empty(t, orderRepo.statusLog)
}

func TestUpdateStatusRejectsBadRecipient(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(waitingOrder(1)), nil, nil)

	_, err := svc.UpdateStatus(operatorCtx("박운영"), 1, dto.UpdateStatusDTO{
		Status:      "할당",
		MessageSent: true,
		Recipient:   "아무나",
	})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestUpdateStatusContactErrorGate(t *testing.T) {
	blocked := waitingOrder(1)
	blocked.Status = "연락처오류"
	svc := newOrderService(newStubOrderRepo(blocked), nil, nil)

	_, err := svc.UpdateStatus(operatorCtx("박운영"), 1, dto.UpdateStatusDTO{Status: "할당"})
	require.Error(t, err)

	withCompany := waitingOrder(2)
	withCompany.Status = "연락처오류"
	withCompany.AssignedCompany = null.StringFrom("한빛인테리어")
	svc = newOrderService(newStubOrderRepo(withCompany), nil, nil)

	updated, err := svc.UpdateStatus(operatorCtx("박운영"), 2, dto.UpdateStatusDTO{Status: "할당"})
	require.NoError(t, err)
	assert.Equal(t, "할당", updated.Status)
}

func TestUpdateFieldRecordsOldAndNewValue(t *testing.T) {
	orderRepo := newStubOrderRepo(waitingOrder(1))
	historyRepo := &stubHistoryRepo{}
	svc := newOrderService(orderRepo, historyRepo, nil)

	_, err := svc.UpdateField(operatorCtx("박운영"), 1, dto.UpdateFieldDTO{
		FieldName: "area",
		NewValue:  "경기 성남시",
	})
	require.NoError(t, err)

	require.Len(t, historyRepo.fieldEntries, 1)
	entry := historyRepo.fieldEntries[0]
	assert.Equal(t, "area", entry.FieldName)
	assert.Equal(t, "시공 지역", entry.FieldLabel)
	assert.Equal(t, "서울 강남구", entry.OldValue.String)
	assert.Equal(t, "경기 성남시", entry.NewValue.String)
	assert.Equal(t, "경기 성남시", orderRepo.columnLog["area"])
}

func TestUpdateFieldUnchangedValueIsNoop(t *testing.T) {
	orderRepo := newStubOrderRepo(waitingOrder(1))
	historyRepo := &stubHistoryRepo{}
	svc := newOrderService(orderRepo, historyRepo, nil)

	_, err := svc.UpdateField(operatorCtx("박운영"), 1, dto.UpdateFieldDTO{
		FieldName: "area",
		NewValue:  "서울 강남구",
	})
	require.NoError(t, err)
	assert.Empty(t, historyRepo.fieldEntries)
	assert.Empty(t, orderRepo.columnLog)
}

func TestUpdateFieldRejectsUnknownField(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(waitingOrder(1)), nil, nil)

	_, err := svc.UpdateField(operatorCtx("박운영"), 1, dto.UpdateFieldDTO{
		FieldName: "status",
		NewValue:  "계약",
	})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestUpdateFieldValidatesValues(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(waitingOrder(1)), nil, nil)

	_, err := svc.UpdateField(operatorCtx("박운영"), 1, dto.UpdateFieldDTO{
		FieldName: "scheduled_date",
		NewValue:  "2026/13/45",
	})
	require.Error(t, err)

	_, err = svc.UpdateField(operatorCtx("박운영"), 1, dto.UpdateFieldDTO{
		FieldName: "re_request_count",
		NewValue:  "-1",
	})
	require.Error(t, err)
}

func TestAddQuoteLinkAllocatesDraftLabels(t *testing.T) {
	quoteRepo := &stubQuoteLinkRepo{}
	svc := newOrderService(newStubOrderRepo(waitingOrder(1)), nil, quoteRepo)
	ctx := operatorCtx("박운영")

	first, err := svc.AddQuoteLink(ctx, 1, dto.AddQuoteLinkDTO{Link: "https://quote.example/1"})
	require.NoError(t, err)
	assert.Equal(t, "초안", first.DraftType)

	second, err := svc.AddQuoteLink(ctx, 1, dto.AddQuoteLinkDTO{Link: "https://quote.example/2"})
	require.NoError(t, err)
	assert.Equal(t, "1차", second.DraftType)

	final, err := svc.AddQuoteLink(ctx, 1, dto.AddQuoteLinkDTO{Link: "https://quote.example/3", DraftType: "최종"})
	require.NoError(t, err)
	assert.Equal(t, "최종", final.DraftType)
}

func TestCopyOrderResetsWorkflowFields(t *testing.T) {
	src := waitingOrder(1)
	src.Status = "계약"
	src.ReRequestCount = 3
	src.PostLink = null.StringFrom("https://cafe.example/post/1")
	src.AssignedCompany = null.StringFrom("한빛인테리어")
	orderRepo := newStubOrderRepo(src)
	svc := newOrderService(orderRepo, nil, nil)

	copied, err := svc.CopyOrder(operatorCtx("박운영"), 1)
	require.NoError(t, err)
	assert.NotEqual(t, src.ID, copied.ID)
	assert.Equal(t, "대기중", copied.Status)
	assert.Equal(t, 0, copied.ReRequestCount)
	assert.Empty(t, copied.PostLink)
	assert.Equal(t, src.CustomerName, copied.CustomerName)
}

func TestBulkDeleteNotFound(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(), nil, nil)

	_, err := svc.BulkDelete(operatorCtx("박운영"), dto.BulkDeleteDTO{OrderIDs: []int{99}})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateOrderDefaults(t *testing.T) {
	orderRepo := newStubOrderRepo()
	svc := newOrderService(orderRepo, nil, nil)

	created, err := svc.CreateOrder(operatorCtx("박운영"), dto.CreateOrderDTO{
		CustomerName: "이영희",
		Phone:        "010-9876-5432",
		Area:         "부산 해운대구",
		WorkContent:  "욕실 전체",
	})
	require.NoError(t, err)
	assert.Equal(t, "대기중", created.Status)
	assert.Equal(t, "지정없음", created.DesignationType)
	assert.Contains(t, created.AllowedNext, "할당")
}
