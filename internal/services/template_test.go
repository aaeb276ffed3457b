package services

import (
	"context"
	"testing"
	"time"

	"testpark/internal/entities"
	apperrors "testpark/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTemplateRepo struct {
	templates []entities.MessageTemplate
}

func (r *stubTemplateRepo) GetTemplates(ctx context.Context) ([]entities.MessageTemplate, error) {
	return r.templates, nil
}

func (r *stubTemplateRepo) FindByStatus(ctx context.Context, status string) (*entities.MessageTemplate, error) {
	for _, t := range r.templates {
		if t.Status == status {
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubTemplateRepo) Upsert(ctx context.Context, status, content string) (*entities.MessageTemplate, error) {
	for i, t := range r.templates {
		if t.Status == status {
			r.templates[i].Content = content
			return &r.templates[i], nil
		}
	}
	t := entities.MessageTemplate{ID: len(r.templates) + 1, Status: status, Content: content}
	r.templates = append(r.templates, t)
	return &t, nil
}

func (r *stubTemplateRepo) DeleteByStatus(ctx context.Context, status string) error {
	for i, t := range r.templates {
		if t.Status == status {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type stubCache struct {
	values map[string]string
	sets   int
}

func newStubCache() *stubCache { return &stubCache{values: make(map[string]string)} }

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.values[key] = value.(string)
	c.sets++
	return nil
}

func (c *stubCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func newTemplateService(templateRepo *stubTemplateRepo, orderRepo *stubOrderRepo, cache *stubCache) MessageTemplateServiceInterface {
	return NewMessageTemplateService(templateRepo, orderRepo, cache, time.Minute, zap.NewNop())
}

func TestResolveUsesDefaultTemplate(t *testing.T) {
	svc := newTemplateService(&stubTemplateRepo{}, newStubOrderRepo(waitingOrder(1)), newStubCache())

	resolved, err := svc.Resolve(operatorCtx("박운영"), 1, "가능문의")
	require.NoError(t, err)
	assert.Contains(t, resolved.Content, "김철수")
	assert.Contains(t, resolved.Content, "주방 리모델링")
	assert.Nil(t, resolved.Inquiries)
}

func TestResolveOverrideWinsAndIsCached(t *testing.T) {
	templateRepo := &stubTemplateRepo{templates: []entities.MessageTemplate{
		{ID: 1, Status: "할당", Content: "{name}님 전용 안내"},
	}}
	cache := newStubCache()
	svc := newTemplateService(templateRepo, newStubOrderRepo(waitingOrder(1)), cache)
	ctx := operatorCtx("박운영")

	resolved, err := svc.Resolve(ctx, 1, "할당")
	require.NoError(t, err)
	assert.Equal(t, "김철수님 전용 안내", resolved.Content)
	assert.Equal(t, 1, cache.sets)

	// second resolve is served from the cache
	_, err = svc.Resolve(ctx, 1, "할당")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
}

func TestResolveCustomerInquiryCarriesSubTemplates(t *testing.T) {
	svc := newTemplateService(&stubTemplateRepo{}, newStubOrderRepo(waitingOrder(1)), newStubCache())

	resolved, err := svc.Resolve(operatorCtx("박운영"), 1, "고객문의")
	require.NoError(t, err)
	require.Len(t, resolved.Inquiries, 6)
	assert.Contains(t, resolved.Inquiries["주소문의"], "김철수")
}

func TestResolveUnknownStatusFails(t *testing.T) {
	svc := newTemplateService(&stubTemplateRepo{}, newStubOrderRepo(waitingOrder(1)), newStubCache())

	_, err := svc.Resolve(operatorCtx("박운영"), 1, "없는상태")
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestUpsertInvalidatesCache(t *testing.T) {
	templateRepo := &stubTemplateRepo{}
	cache := newStubCache()
	svc := newTemplateService(templateRepo, newStubOrderRepo(waitingOrder(1)), cache)
	ctx := operatorCtx("박운영")

	_, err := svc.Resolve(ctx, 1, "할당")
	require.NoError(t, err)
	assert.NotEmpty(t, cache.values)

	_, err = svc.UpsertTemplate(ctx, "할당", "{name}님 새 안내")
	require.NoError(t, err)
	assert.Empty(t, cache.values)

	resolved, err := svc.Resolve(ctx, 1, "할당")
	require.NoError(t, err)
	assert.Equal(t, "김철수님 새 안내", resolved.Content)
}

func TestUpsertRejectsUnknownStatus(t *testing.T) {
	svc := newTemplateService(&stubTemplateRepo{}, newStubOrderRepo(), newStubCache())

	_, err := svc.UpsertTemplate(operatorCtx("박운영"), "없는상태", "내용")
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
