package repositories

import (
	"context"
	"errors"
	"fmt"

	"testpark/internal/entities"
	apperrors "testpark/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageTemplateRepositoryInterface interface {
	GetTemplates(ctx context.Context) ([]entities.MessageTemplate, error)
	FindByStatus(ctx context.Context, status string) (*entities.MessageTemplate, error)
	Upsert(ctx context.Context, status, content string) (*entities.MessageTemplate, error)
	DeleteByStatus(ctx context.Context, status string) error
}

type MessageTemplateRepository struct {
	storage *pgxpool.Pool
}

func NewMessageTemplateRepository(storage *pgxpool.Pool) MessageTemplateRepositoryInterface {
	return &MessageTemplateRepository{storage: storage}
}

func (r *MessageTemplateRepository) GetTemplates(ctx context.Context) ([]entities.MessageTemplate, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, status, content, created_at, updated_at
		FROM message_templates ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list message templates: %w", err)
	}
	defer rows.Close()

	templates := make([]entities.MessageTemplate, 0)
	for rows.Next() {
		var t entities.MessageTemplate
		if err := rows.Scan(&t.ID, &t.Status, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message template row: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *MessageTemplateRepository) FindByStatus(ctx context.Context, status string) (*entities.MessageTemplate, error) {
	var t entities.MessageTemplate
	err := r.storage.QueryRow(ctx, `
		SELECT id, status, content, created_at, updated_at
		FROM message_templates WHERE status = $1`, status,
	).Scan(&t.ID, &t.Status, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find message template: %w", err)
	}
	return &t, nil
}

func (r *MessageTemplateRepository) Upsert(ctx context.Context, status, content string) (*entities.MessageTemplate, error) {
	var t entities.MessageTemplate
	err := r.storage.QueryRow(ctx, `
		INSERT INTO message_templates (status, content, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (status) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING id, status, content, created_at, updated_at`,
		status, content,
	).Scan(&t.ID, &t.Status, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert message template: %w", err)
	}
	return &t, nil
}

func (r *MessageTemplateRepository) DeleteByStatus(ctx context.Context, status string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM message_templates WHERE status = $1`, status)
	if err != nil {
		return fmt.Errorf("failed to delete message template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
