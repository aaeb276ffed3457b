package services

import (
	"testing"
	"time"

	"testpark/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTimelineMergesNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	txID := uuid.New()

	historyRepo := &stubHistoryRepo{
		statusEntries: []entities.StatusHistory{{
			OrderID: 1, TxID: txID, Author: "박운영",
			OldStatus: "대기중", NewStatus: "할당",
			MessageSent: true, MessageContent: null.StringFrom("안내"), Recipient: null.StringFrom("고객"),
			CreatedAt: base.Add(2 * time.Hour),
		}},
		fieldEntries: []entities.FieldHistory{{
			OrderID: 1, TxID: txID, Author: "박운영",
			FieldName: "area", FieldLabel: "시공 지역",
			OldValue: null.StringFrom("서울"), NewValue: null.StringFrom("경기"),
			CreatedAt: base.Add(3 * time.Hour),
		}},
	}
	memoRepo := &stubMemoRepo{memos: []entities.Memo{{
		OrderID: 1, Author: "박운영", Content: "고객 재통화 예정", CreatedAt: base.Add(time.Hour),
	}}}
	quoteRepo := &stubQuoteLinkRepo{links: []entities.QuoteLink{{
		OrderID: 1, DraftType: "초안", Link: "https://quote.example/1", CreatedAt: base,
	}}}

	svc := NewHistoryService(newStubOrderRepo(waitingOrder(1)), historyRepo, memoRepo, quoteRepo, zap.NewNop())

	timeline, err := svc.Timeline(operatorCtx("박운영"), 1)
	require.NoError(t, err)
	require.Len(t, timeline, 4)

	assert.Equal(t, "field", timeline[0].Kind)
	assert.Equal(t, "status", timeline[1].Kind)
	assert.Equal(t, "memo", timeline[2].Kind)
	assert.Equal(t, "quote_link", timeline[3].Kind)

	// entries from the same transaction share a tx id
	assert.Equal(t, timeline[0].TxID, timeline[1].TxID)

	status := timeline[1]
	assert.Equal(t, "대기중", status.OldValue)
	assert.Equal(t, "할당", status.NewValue)
	require.NotNil(t, status.MessageSent)
	assert.True(t, *status.MessageSent)
	assert.Equal(t, "고객", status.Recipient)
}
