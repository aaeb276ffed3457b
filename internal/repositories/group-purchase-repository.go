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

type GroupPurchaseRepositoryInterface interface {
	GetGroupPurchases(ctx context.Context) ([]entities.GroupPurchase, error)
	FindGroupPurchase(ctx context.Context, id int) (*entities.GroupPurchase, error)
	FindGroupPurchasesByIDs(ctx context.Context, ids []int) ([]entities.GroupPurchase, error)
}

const groupPurchaseColumns = `gp.id, gp.round, gp.company_id, c.name, gp.display_name, gp.link,
	gp.available_areas, gp.unavailable_dates, gp.created_at, gp.updated_at`

const groupPurchaseFrom = `group_purchases gp JOIN companies c ON gp.company_id = c.id`

type GroupPurchaseRepository struct {
	storage *pgxpool.Pool
}

func NewGroupPurchaseRepository(storage *pgxpool.Pool) GroupPurchaseRepositoryInterface {
	return &GroupPurchaseRepository{storage: storage}
}

func (r *GroupPurchaseRepository) GetGroupPurchases(ctx context.Context) ([]entities.GroupPurchase, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY gp.id DESC`, groupPurchaseColumns, groupPurchaseFrom)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list group purchases: %w", err)
	}
	defer rows.Close()
	return collectGroupPurchases(rows)
}

func (r *GroupPurchaseRepository) FindGroupPurchase(ctx context.Context, id int) (*entities.GroupPurchase, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE gp.id = $1`, groupPurchaseColumns, groupPurchaseFrom)
	gp, err := scanGroupPurchase(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan group purchase: %w", err)
	}
	return gp, nil
}

func (r *GroupPurchaseRepository) FindGroupPurchasesByIDs(ctx context.Context, ids []int) ([]entities.GroupPurchase, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE gp.id = ANY($1)`, groupPurchaseColumns, groupPurchaseFrom)
	rows, err := r.storage.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load group purchases by ids: %w", err)
	}
	defer rows.Close()
	return collectGroupPurchases(rows)
}

func collectGroupPurchases(rows pgx.Rows) ([]entities.GroupPurchase, error) {
	result := make([]entities.GroupPurchase, 0)
	for rows.Next() {
		gp, err := scanGroupPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group purchase row: %w", err)
		}
		result = append(result, *gp)
	}
	return result, rows.Err()
}

func scanGroupPurchase(row pgx.Row) (*entities.GroupPurchase, error) {
	var gp entities.GroupPurchase
	err := row.Scan(
		&gp.ID, &gp.Round, &gp.CompanyID, &gp.CompanyName, &gp.DisplayName, &gp.Link,
		&gp.AvailableAreas, &gp.UnavailableDates, &gp.CreatedAt, &gp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &gp, nil
}
