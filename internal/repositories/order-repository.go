package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"testpark/internal/entities"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, id int) (*entities.Order, error)
	FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id int) (*entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (int, error)
	CopyOrderInTx(ctx context.Context, tx pgx.Tx, src entities.Order, assignedCompany string) (int, error)
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id int, status string) error
	UpdateAssignmentInTx(ctx context.Context, tx pgx.Tx, id int, company, status string) error
	UpdateColumnInTx(ctx context.Context, tx pgx.Tx, id int, column string, value interface{}) error
	SoftDeleteOrders(ctx context.Context, ids []int) (int64, error)
	AssignedCompaniesByPostLink(ctx context.Context, postLink string) ([]string, error)
}

// OrderFieldColumns whitelists the order fields editable through
// update_field, keyed by the wire field name.
var OrderFieldColumns = map[string]string{
	"customer_name":     "customer_name",
	"nickname":          "nickname",
	"phone":             "phone",
	"naver_id":          "naver_id",
	"area":              "area",
	"work_content":      "work_content",
	"construction_type": "construction_type",
	"scheduled_date":    "scheduled_date",
	"designation":       "designation",
	"designation_type":  "designation_type",
	"assigned_company":  "assigned_company",
	"post_link":         "post_link",
	"re_request_count":  "re_request_count",
}

const orderColumns = `id, received_at, customer_name, nickname, phone, naver_id, area, work_content,
	construction_type, scheduled_date, designation, designation_type, assigned_company, status,
	re_request_count, post_link, created_at, updated_at`

type OrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{storage: storage, logger: logger}
}

var orderFilterColumns = map[string]string{
	"status":           "status",
	"area":             "area",
	"company":          "assigned_company",
	"designation_type": "designation_type",
}

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	builder := sq.Select(orderColumns).
		From("orders").
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From("orders").
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)

	apply := func(b sq.SelectBuilder) sq.SelectBuilder {
		for field, val := range filter.Filter {
			col, ok := orderFilterColumns[field]
			if !ok {
				continue
			}
			if s, isStr := val.(string); isStr && col == "area" {
				b = b.Where(sq.ILike{col: "%" + s + "%"})
			} else {
				b = b.Where(sq.Eq{col: eqValue(val)})
			}
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			b = b.Where(sq.Or{
				sq.ILike{"customer_name": like},
				sq.ILike{"nickname": like},
				sq.ILike{"phone": like},
				sq.ILike{"area": like},
				sq.ILike{"work_content": like},
				sq.ILike{"designation": like},
			})
		}
		if filter.DateFrom != "" {
			b = b.Where(sq.GtOrEq{"received_at": filter.DateFrom})
		}
		if filter.DateTo != "" {
			b = b.Where(sq.LtOrEq{"received_at": filter.DateTo})
		}
		return b
	}

	builder = apply(builder)
	countBuilder = apply(countBuilder)

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if len(filter.Sort) > 0 {
		for field, dir := range filter.Sort {
			col, ok := orderFilterColumns[field]
			if !ok {
				if field == "received_at" || field == "id" {
					col = field
				} else {
					continue
				}
			}
			sqlDir := "ASC"
			if dir == "desc" {
				sqlDir = "DESC"
			}
			builder = builder.OrderBy(fmt.Sprintf("%s %s", col, sqlDir))
		}
	} else {
		builder = builder.OrderBy("received_at DESC", "id DESC")
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	querySQL, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) FindOrder(ctx context.Context, id int) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1 AND deleted_at IS NULL`, orderColumns)
	return r.findOne(ctx, r.storage, query, id)
}

func (r *OrderRepository) FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id int) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, orderColumns)
	return r.findOne(ctx, tx, query, id)
}

func (r *OrderRepository) findOne(ctx context.Context, q querier, query string, id int) (*entities.Order, error) {
	order, err := scanOrder(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return order, nil
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(
		&o.ID, &o.ReceivedAt, &o.CustomerName, &o.Nickname, &o.Phone, &o.NaverID,
		&o.Area, &o.WorkContent, &o.ConstructionType, &o.ScheduledDate,
		&o.Designation, &o.DesignationType, &o.AssignedCompany, &o.Status,
		&o.ReRequestCount, &o.PostLink, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order entities.Order) (int, error) {
	query := `
		INSERT INTO orders (received_at, customer_name, nickname, phone, naver_id, area, work_content,
			construction_type, scheduled_date, designation, designation_type, assigned_company, status,
			re_request_count, post_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id`

	var id int
	err := r.storage.QueryRow(ctx, query,
		order.ReceivedAt, order.CustomerName, order.Nickname, order.Phone, order.NaverID,
		order.Area, order.WorkContent, order.ConstructionType, order.ScheduledDate,
		order.Designation, order.DesignationType, order.AssignedCompany, order.Status,
		order.ReRequestCount, order.PostLink,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

// CopyOrderInTx duplicates src with a fresh id, post_link cleared, status
// reset to 대기중, re-request count zeroed and receipt time set to now. The
// assigned company may be empty (plain copy) or the assignment target.
func (r *OrderRepository) CopyOrderInTx(ctx context.Context, tx pgx.Tx, src entities.Order, assignedCompany string) (int, error) {
	query := `
		INSERT INTO orders (received_at, customer_name, nickname, phone, naver_id, area, work_content,
			construction_type, scheduled_date, designation, designation_type, assigned_company, status,
			re_request_count, post_link, created_at, updated_at)
		VALUES (NOW(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), '대기중', 0, '', NOW(), NOW())
		RETURNING id`

	var id int
	err := tx.QueryRow(ctx, query,
		src.CustomerName, src.Nickname, src.Phone, src.NaverID, src.Area, src.WorkContent,
		src.ConstructionType, src.ScheduledDate, src.Designation, src.DesignationType,
		assignedCompany,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to copy order %d: %w", src.ID, err)
	}
	return id, nil
}

func (r *OrderRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id int, status string) error {
	tag, err := tx.Exec(ctx, `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateAssignmentInTx(ctx context.Context, tx pgx.Tx, id int, company, status string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET assigned_company = $1, status = $2, updated_at = NOW() WHERE id = $3 AND deleted_at IS NULL`,
		company, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateColumnInTx writes a single whitelisted column. Callers resolve the
// column through OrderFieldColumns; raw field names never reach SQL.
func (r *OrderRepository) UpdateColumnInTx(ctx context.Context, tx pgx.Tx, id int, column string, value interface{}) error {
	query := fmt.Sprintf(`UPDATE orders SET %s = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`, column)
	tag, err := tx.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update order column %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) SoftDeleteOrders(ctx context.Context, ids []int) (int64, error) {
	tag, err := r.storage.Exec(ctx,
		`UPDATE orders SET deleted_at = NOW(), updated_at = NOW() WHERE id = ANY($1) AND deleted_at IS NULL`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orders: %w", err)
	}
	return tag.RowsAffected(), nil
}

// AssignedCompaniesByPostLink returns the assigned company names of all live
// rows that share a post link. Used to dedup assignment selections.
func (r *OrderRepository) AssignedCompaniesByPostLink(ctx context.Context, postLink string) ([]string, error) {
	if postLink == "" {
		return nil, nil
	}
	rows, err := r.storage.Query(ctx,
		`SELECT assigned_company FROM orders
		 WHERE post_link = $1 AND assigned_company IS NOT NULL AND assigned_company <> '' AND deleted_at IS NULL`,
		postLink)
	if err != nil {
		return nil, fmt.Errorf("failed to load sibling assignments: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// touch helper kept close to the repository so service tests can build orders
// with deterministic receipt times.
func NowUTC() time.Time { return time.Now().UTC() }
