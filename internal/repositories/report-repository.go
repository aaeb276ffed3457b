package repositories

import (
	"context"
	"fmt"

	"testpark/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatusCount struct {
	Status string
	Count  int
}

type ReportRepositoryInterface interface {
	CountByStatus(ctx context.Context, filter types.Filter) ([]StatusCount, int, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountByStatus(ctx context.Context, filter types.Filter) ([]StatusCount, int, error) {
	builder := sq.Select("status", "COUNT(*)").
		From("orders").
		Where(sq.Eq{"deleted_at": nil}).
		GroupBy("status").
		PlaceholderFormat(sq.Dollar)

	if filter.DateFrom != "" {
		builder = builder.Where(sq.GtOrEq{"received_at": filter.DateFrom})
	}
	if filter.DateTo != "" {
		builder = builder.Where(sq.LtOrEq{"received_at": filter.DateTo})
	}

	querySQL, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build status count query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders by status: %w", err)
	}
	defer rows.Close()

	counts := make([]StatusCount, 0)
	total := 0
	for rows.Next() {
		var c StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, 0, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts = append(counts, c)
		total += c.Count
	}
	return counts, total, rows.Err()
}
