package repositories

import (
	"context"
	"fmt"

	"testpark/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepositoryInterface interface {
	InsertStatusHistoryInTx(ctx context.Context, tx pgx.Tx, entry entities.StatusHistory) error
	InsertFieldHistoryInTx(ctx context.Context, tx pgx.Tx, entry entities.FieldHistory) error
	StatusHistoryByOrder(ctx context.Context, orderID int) ([]entities.StatusHistory, error)
	FieldHistoryByOrder(ctx context.Context, orderID int) ([]entities.FieldHistory, error)
}

type HistoryRepository struct {
	storage *pgxpool.Pool
}

func NewHistoryRepository(storage *pgxpool.Pool) HistoryRepositoryInterface {
	return &HistoryRepository{storage: storage}
}

func (r *HistoryRepository) InsertStatusHistoryInTx(ctx context.Context, tx pgx.Tx, entry entities.StatusHistory) error {
	if entry.TxID == uuid.Nil {
		entry.TxID = uuid.New()
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO status_histories (order_id, tx_id, author, old_status, new_status, message_sent, message_content, recipient, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		entry.OrderID, entry.TxID, entry.Author, entry.OldStatus, entry.NewStatus,
		entry.MessageSent, entry.MessageContent, entry.Recipient,
	)
	if err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}
	return nil
}

func (r *HistoryRepository) InsertFieldHistoryInTx(ctx context.Context, tx pgx.Tx, entry entities.FieldHistory) error {
	if entry.TxID == uuid.Nil {
		entry.TxID = uuid.New()
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO field_histories (order_id, tx_id, author, field_name, field_label, old_value, new_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`,
		entry.OrderID, entry.TxID, entry.Author, entry.FieldName, entry.FieldLabel,
		entry.OldValue, entry.NewValue,
	)
	if err != nil {
		return fmt.Errorf("failed to insert field history: %w", err)
	}
	return nil
}

func (r *HistoryRepository) StatusHistoryByOrder(ctx context.Context, orderID int) ([]entities.StatusHistory, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, order_id, tx_id, author, old_status, new_status, message_sent, message_content, recipient, created_at
		FROM status_histories WHERE order_id = $1 ORDER BY created_at DESC, id DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.StatusHistory, 0)
	for rows.Next() {
		var e entities.StatusHistory
		if err := rows.Scan(&e.ID, &e.OrderID, &e.TxID, &e.Author, &e.OldStatus, &e.NewStatus,
			&e.MessageSent, &e.MessageContent, &e.Recipient, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *HistoryRepository) FieldHistoryByOrder(ctx context.Context, orderID int) ([]entities.FieldHistory, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, order_id, tx_id, author, field_name, field_label, old_value, new_value, created_at
		FROM field_histories WHERE order_id = $1 ORDER BY created_at DESC, id DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list field history: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.FieldHistory, 0)
	for rows.Next() {
		var e entities.FieldHistory
		if err := rows.Scan(&e.ID, &e.OrderID, &e.TxID, &e.Author, &e.FieldName, &e.FieldLabel,
			&e.OldValue, &e.NewValue, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan field history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
