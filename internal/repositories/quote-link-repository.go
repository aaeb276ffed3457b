package repositories

import (
	"context"
	"fmt"

	"testpark/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteLinkRepositoryInterface interface {
	InsertQuoteLink(ctx context.Context, link entities.QuoteLink) (*entities.QuoteLink, error)
	QuoteLinksByOrder(ctx context.Context, orderID int) ([]entities.QuoteLink, error)
	CountByOrder(ctx context.Context, orderID int) (int, error)
}

type QuoteLinkRepository struct {
	storage *pgxpool.Pool
}

func NewQuoteLinkRepository(storage *pgxpool.Pool) QuoteLinkRepositoryInterface {
	return &QuoteLinkRepository{storage: storage}
}

func (r *QuoteLinkRepository) InsertQuoteLink(ctx context.Context, link entities.QuoteLink) (*entities.QuoteLink, error) {
	err := r.storage.QueryRow(ctx, `
		INSERT INTO quote_links (order_id, draft_type, link, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`,
		link.OrderID, link.DraftType, link.Link,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quote link: %w", err)
	}
	return &link, nil
}

func (r *QuoteLinkRepository) QuoteLinksByOrder(ctx context.Context, orderID int) ([]entities.QuoteLink, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, order_id, draft_type, link, created_at
		FROM quote_links WHERE order_id = $1 ORDER BY created_at ASC, id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote links: %w", err)
	}
	defer rows.Close()

	links := make([]entities.QuoteLink, 0)
	for rows.Next() {
		var l entities.QuoteLink
		if err := rows.Scan(&l.ID, &l.OrderID, &l.DraftType, &l.Link, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote link row: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *QuoteLinkRepository) CountByOrder(ctx context.Context, orderID int) (int, error) {
	var count int
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM quote_links WHERE order_id = $1`, orderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quote links: %w", err)
	}
	return count, nil
}
