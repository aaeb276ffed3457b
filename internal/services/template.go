package services

import (
	"context"
	"encoding/json"
	"time"

	"testpark/internal/dto"
	"testpark/internal/repositories"
	"testpark/internal/workflow"
	apperrors "testpark/pkg/errors"

	"go.uber.org/zap"
)

const templateCacheKey = "dict:message_templates"

type MessageTemplateServiceInterface interface {
	GetTemplates(ctx context.Context) ([]dto.MessageTemplateDTO, error)
	Resolve(ctx context.Context, orderID int, status string) (*dto.ResolvedTemplateDTO, error)
	UpsertTemplate(ctx context.Context, status, content string) (*dto.MessageTemplateDTO, error)
	DeleteTemplate(ctx context.Context, status string) error
}

type MessageTemplateService struct {
	templateRepository repositories.MessageTemplateRepositoryInterface
	orderRepository    repositories.OrderRepositoryInterface
	cache              repositories.CacheRepositoryInterface
	cacheTTL           time.Duration
	logger             *zap.Logger
}

func NewMessageTemplateService(
	templateRepository repositories.MessageTemplateRepositoryInterface,
	orderRepository repositories.OrderRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) MessageTemplateServiceInterface {
	return &MessageTemplateService{
		templateRepository: templateRepository,
		orderRepository:    orderRepository,
		cache:              cache,
		cacheTTL:           cacheTTL,
		logger:             logger,
	}
}

func (s *MessageTemplateService) GetTemplates(ctx context.Context) ([]dto.MessageTemplateDTO, error) {
	templates, err := s.templateRepository.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MessageTemplateDTO, 0, len(templates))
	for _, t := range templates {
		result = append(result, dto.MessageTemplateDTO{ID: t.ID, Status: t.Status, Content: t.Content})
	}
	return result, nil
}

// Resolve substitutes the order's customer name and work content into the
// template for the target status. DB overrides win over the compiled
// defaults; 고객문의 additionally carries its selectable sub-templates.
func (s *MessageTemplateService) Resolve(ctx context.Context, orderID int, status string) (*dto.ResolvedTemplateDTO, error) {
	target := workflow.Status(status)
	if !workflow.IsKnownStatus(target) {
		return nil, apperrors.NewInvalidInputError("알 수 없는 상태입니다: %s", status)
	}

	order, err := s.orderRepository.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.loadOverrides(ctx)
	if err != nil {
		return nil, err
	}

	resolved := &dto.ResolvedTemplateDTO{
		Status:  status,
		Content: workflow.ResolveTemplate(target, order.CustomerName, order.WorkContent, overrides),
	}
	if target == workflow.StatusCustomerInquiry {
		resolved.Inquiries = make(map[string]string)
		for _, kind := range workflow.InquiryKinds() {
			if content, ok := workflow.ResolveInquiry(target, kind, order.CustomerName); ok {
				resolved.Inquiries[kind] = content
			}
		}
	}
	return resolved, nil
}

func (s *MessageTemplateService) UpsertTemplate(ctx context.Context, status, content string) (*dto.MessageTemplateDTO, error) {
	if !workflow.IsKnownStatus(workflow.Status(status)) {
		return nil, apperrors.NewInvalidInputError("알 수 없는 상태입니다: %s", status)
	}
	t, err := s.templateRepository.Upsert(ctx, status, content)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &dto.MessageTemplateDTO{ID: t.ID, Status: t.Status, Content: t.Content}, nil
}

func (s *MessageTemplateService) DeleteTemplate(ctx context.Context, status string) error {
	if err := s.templateRepository.DeleteByStatus(ctx, status); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// loadOverrides serves the override dictionary from Redis, falling back to
// the database on a miss or on any cache failure.
func (s *MessageTemplateService) loadOverrides(ctx context.Context) (map[workflow.Status]string, error) {
	if cached, err := s.cache.Get(ctx, templateCacheKey); err == nil && cached != "" {
		overrides := make(map[workflow.Status]string)
		if err := json.Unmarshal([]byte(cached), &overrides); err == nil {
			return overrides, nil
		}
	}

	templates, err := s.templateRepository.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}
	overrides := make(map[workflow.Status]string, len(templates))
	for _, t := range templates {
		overrides[workflow.Status(t.Status)] = t.Content
	}

	if raw, err := json.Marshal(overrides); err == nil {
		if err := s.cache.Set(ctx, templateCacheKey, string(raw), s.cacheTTL); err != nil {
			s.logger.Warn("템플릿 캐시 저장 실패", zap.Error(err))
		}
	}
	return overrides, nil
}

func (s *MessageTemplateService) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, templateCacheKey); err != nil {
		s.logger.Warn("템플릿 캐시 무효화 실패", zap.Error(err))
	}
}
