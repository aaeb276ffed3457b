package repositories

import (
	"context"
	"errors"
	"fmt"

	"testpark/internal/entities"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error)
	FindCompany(ctx context.Context, id int) (*entities.Company, error)
	FindCompaniesByIDs(ctx context.Context, ids []int) ([]entities.Company, error)
	ListActive(ctx context.Context) ([]entities.Company, error)
}

const companyColumns = `id, name, region, grade, two_day_count, eval_period_count, eval_period_max,
	load_percent, fixed_cost_adjustment, licenses, region_apply, features, service_areas,
	service_types, current_capacity, max_capacity, suspended, created_at, updated_at`

type CompanyRepository struct {
	storage *pgxpool.Pool
}

func NewCompanyRepository(storage *pgxpool.Pool) CompanyRepositoryInterface {
	return &CompanyRepository{storage: storage}
}

var companyFilterColumns = map[string]string{
	"region":       "region",
	"grade":        "grade",
	"region_apply": "region_apply",
	"suspended":    "suspended",
}

func (r *CompanyRepository) GetCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error) {
	builder := sq.Select(companyColumns).
		From("companies").
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)
	countBuilder := sq.Select("COUNT(*)").
		From("companies").
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)

	apply := func(b sq.SelectBuilder) sq.SelectBuilder {
		for field, val := range filter.Filter {
			col, ok := companyFilterColumns[field]
			if !ok {
				continue
			}
			b = b.Where(sq.Eq{col: eqValue(val)})
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			b = b.Where(sq.Or{
				sq.ILike{"name": like},
				sq.ILike{"region": like},
				sq.ILike{"features": like},
			})
		}
		return b
	}
	builder = apply(builder)
	countBuilder = apply(countBuilder)

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build company count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	builder = builder.OrderBy("grade ASC", "name ASC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	querySQL, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build company list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies, err := collectCompanies(rows)
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *CompanyRepository) FindCompany(ctx context.Context, id int) (*entities.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE id = $1 AND deleted_at IS NULL`, companyColumns)
	c, err := scanCompany(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}
	return c, nil
}

func (r *CompanyRepository) FindCompaniesByIDs(ctx context.Context, ids []int) ([]entities.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE id = ANY($1) AND deleted_at IS NULL`, companyColumns)
	rows, err := r.storage.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies by ids: %w", err)
	}
	defer rows.Close()
	return collectCompanies(rows)
}

func (r *CompanyRepository) ListActive(ctx context.Context) ([]entities.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE deleted_at IS NULL ORDER BY grade ASC, name ASC`, companyColumns)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active companies: %w", err)
	}
	defer rows.Close()
	return collectCompanies(rows)
}

func collectCompanies(rows pgx.Rows) ([]entities.Company, error) {
	companies := make([]entities.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

func scanCompany(row pgx.Row) (*entities.Company, error) {
	var c entities.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Region, &c.Grade, &c.TwoDayCount, &c.EvalPeriodCount, &c.EvalPeriodMax,
		&c.LoadPercent, &c.FixedCostAdjustment, &c.Licenses, &c.RegionApply, &c.Features,
		&c.ServiceAreas, &c.ServiceTypes, &c.CurrentCapacity, &c.MaxCapacity, &c.Suspended,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
