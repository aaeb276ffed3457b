package services

import (
	"context"
	"sort"
	"time"

	"testpark/internal/dto"
	"testpark/internal/repositories"

	"go.uber.org/zap"
)

type HistoryServiceInterface interface {
	Timeline(ctx context.Context, orderID int) ([]dto.TimelineItemDTO, error)
	Memos(ctx context.Context, orderID int) ([]dto.MemoDTO, error)
	QuoteLinks(ctx context.Context, orderID int) ([]dto.QuoteLinkDTO, error)
}

type HistoryService struct {
	orderRepository   repositories.OrderRepositoryInterface
	historyRepository repositories.HistoryRepositoryInterface
	memoRepository    repositories.MemoRepositoryInterface
	quoteLinkRepo     repositories.QuoteLinkRepositoryInterface
	logger            *zap.Logger
}

func NewHistoryService(
	orderRepository repositories.OrderRepositoryInterface,
	historyRepository repositories.HistoryRepositoryInterface,
	memoRepository repositories.MemoRepositoryInterface,
	quoteLinkRepo repositories.QuoteLinkRepositoryInterface,
	logger *zap.Logger,
) HistoryServiceInterface {
	return &HistoryService{
		orderRepository:   orderRepository,
		historyRepository: historyRepository,
		memoRepository:    memoRepository,
		quoteLinkRepo:     quoteLinkRepo,
		logger:            logger,
	}
}

type timelineEntry struct {
	at   time.Time
	item dto.TimelineItemDTO
}

// Timeline merges the order's status history, field history, memos and quote
// links into one audit trail, newest first.
func (s *HistoryService) Timeline(ctx context.Context, orderID int) ([]dto.TimelineItemDTO, error) {
	if _, err := s.orderRepository.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}

	statusEntries, err := s.historyRepository.StatusHistoryByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	fieldEntries, err := s.historyRepository.FieldHistoryByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	memos, err := s.memoRepository.MemosByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	links, err := s.quoteLinkRepo.QuoteLinksByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	entries := make([]timelineEntry, 0, len(statusEntries)+len(fieldEntries)+len(memos)+len(links))
	for _, e := range statusEntries {
		sent := e.MessageSent
		entries = append(entries, timelineEntry{at: e.CreatedAt, item: dto.TimelineItemDTO{
			Kind:           "status",
			Author:         e.Author,
			CreatedAt:      e.CreatedAt.Format(time.RFC3339),
			TxID:           e.TxID.String(),
			OldValue:       e.OldStatus,
			NewValue:       e.NewStatus,
			MessageSent:    &sent,
			MessageContent: e.MessageContent.String,
			Recipient:      e.Recipient.String,
		}})
	}
	for _, e := range fieldEntries {
		entries = append(entries, timelineEntry{at: e.CreatedAt, item: dto.TimelineItemDTO{
			Kind:       "field",
			Author:     e.Author,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
			TxID:       e.TxID.String(),
			FieldLabel: e.FieldLabel,
			OldValue:   e.OldValue.String,
			NewValue:   e.NewValue.String,
		}})
	}
	for _, m := range memos {
		entries = append(entries, timelineEntry{at: m.CreatedAt, item: dto.TimelineItemDTO{
			Kind:      "memo",
			Author:    m.Author,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
			Content:   m.Content,
		}})
	}
	for _, l := range links {
		entries = append(entries, timelineEntry{at: l.CreatedAt, item: dto.TimelineItemDTO{
			Kind:       "quote_link",
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
			FieldLabel: l.DraftType,
			NewValue:   l.Link,
		}})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})

	result := make([]dto.TimelineItemDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.item)
	}
	return result, nil
}

func (s *HistoryService) Memos(ctx context.Context, orderID int) ([]dto.MemoDTO, error) {
	memos, err := s.memoRepository.MemosByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MemoDTO, 0, len(memos))
	for _, m := range memos {
		result = append(result, toMemoDTO(m))
	}
	return result, nil
}

func (s *HistoryService) QuoteLinks(ctx context.Context, orderID int) ([]dto.QuoteLinkDTO, error) {
	links, err := s.quoteLinkRepo.QuoteLinksByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.QuoteLinkDTO, 0, len(links))
	for _, l := range links {
		result = append(result, toQuoteLinkDTO(l))
	}
	return result, nil
}
