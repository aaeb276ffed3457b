package repositories

import (
	"context"
	"fmt"

	"testpark/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MemoRepositoryInterface interface {
	InsertMemo(ctx context.Context, memo entities.Memo) (*entities.Memo, error)
	MemosByOrder(ctx context.Context, orderID int) ([]entities.Memo, error)
}

type MemoRepository struct {
	storage *pgxpool.Pool
}

func NewMemoRepository(storage *pgxpool.Pool) MemoRepositoryInterface {
	return &MemoRepository{storage: storage}
}

func (r *MemoRepository) InsertMemo(ctx context.Context, memo entities.Memo) (*entities.Memo, error) {
	err := r.storage.QueryRow(ctx, `
		INSERT INTO memos (order_id, author, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`,
		memo.OrderID, memo.Author, memo.Content,
	).Scan(&memo.ID, &memo.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert memo: %w", err)
	}
	return &memo, nil
}

func (r *MemoRepository) MemosByOrder(ctx context.Context, orderID int) ([]entities.Memo, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, order_id, author, content, created_at
		FROM memos WHERE order_id = $1 ORDER BY created_at DESC, id DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}
	defer rows.Close()

	memos := make([]entities.Memo, 0)
	for rows.Next() {
		var m entities.Memo
		if err := rows.Scan(&m.ID, &m.OrderID, &m.Author, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memo row: %w", err)
		}
		memos = append(memos, m)
	}
	return memos, rows.Err()
}
