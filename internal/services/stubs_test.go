package services

import (
	"context"
	"time"

	"testpark/internal/entities"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
)

// In-memory doubles over the repository interfaces. The tx manager runs the
// callback with a nil transaction; the doubles ignore the tx argument.

type stubTxManager struct{}

func (stubTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type stubOrderRepo struct {
	orders     map[int]*entities.Order
	nextID     int
	siblings   map[string][]string
	statusLog  []string
	columnLog  map[string]interface{}
	copiedTo   []string
	assignedTo []string
}

func newStubOrderRepo(orders ...*entities.Order) *stubOrderRepo {
	r := &stubOrderRepo{
		orders:    make(map[int]*entities.Order),
		nextID:    1000,
		siblings:  make(map[string][]string),
		columnLog: make(map[string]interface{}),
	}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *stubOrderRepo) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, uint64(len(out)), nil
}

func (r *stubOrderRepo) FindOrder(ctx context.Context, id int) (*entities.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *stubOrderRepo) FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id int) (*entities.Order, error) {
	return r.FindOrder(ctx, id)
}

func (r *stubOrderRepo) CreateOrder(ctx context.Context, order entities.Order) (int, error) {
	r.nextID++
	order.ID = r.nextID
	now := time.Now()
	order.CreatedAt = &now
	r.orders[order.ID] = &order
	return order.ID, nil
}

func (r *stubOrderRepo) CopyOrderInTx(ctx context.Context, tx pgx.Tx, src entities.Order, assignedCompany string) (int, error) {
	r.nextID++
	copied := src
	copied.ID = r.nextID
	copied.Status = "대기중"
	copied.ReRequestCount = 0
	copied.PostLink = null.String{}
	copied.AssignedCompany = null.NewString(assignedCompany, assignedCompany != "")
	r.orders[copied.ID] = &copied
	r.copiedTo = append(r.copiedTo, assignedCompany)
	return copied.ID, nil
}

func (r *stubOrderRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id int, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	o.Status = status
	r.statusLog = append(r.statusLog, status)
	return nil
}

func (r *stubOrderRepo) UpdateAssignmentInTx(ctx context.Context, tx pgx.Tx, id int, company, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	o.AssignedCompany.String = company
	o.AssignedCompany.Valid = true
	o.Status = status
	r.assignedTo = append(r.assignedTo, company)
	return nil
}

func (r *stubOrderRepo) UpdateColumnInTx(ctx context.Context, tx pgx.Tx, id int, column string, value interface{}) error {
	if _, ok := r.orders[id]; !ok {
		return apperrors.ErrNotFound
	}
	r.columnLog[column] = value
	return nil
}

func (r *stubOrderRepo) SoftDeleteOrders(ctx context.Context, ids []int) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := r.orders[id]; ok {
			delete(r.orders, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *stubOrderRepo) AssignedCompaniesByPostLink(ctx context.Context, postLink string) ([]string, error) {
	return r.siblings[postLink], nil
}

type stubHistoryRepo struct {
	statusEntries []entities.StatusHistory
	fieldEntries  []entities.FieldHistory
}

func (r *stubHistoryRepo) InsertStatusHistoryInTx(ctx context.Context, tx pgx.Tx, entry entities.StatusHistory) error {
	r.statusEntries = append(r.statusEntries, entry)
	return nil
}

func (r *stubHistoryRepo) InsertFieldHistoryInTx(ctx context.Context, tx pgx.Tx, entry entities.FieldHistory) error {
	r.fieldEntries = append(r.fieldEntries, entry)
	return nil
}

func (r *stubHistoryRepo) StatusHistoryByOrder(ctx context.Context, orderID int) ([]entities.StatusHistory, error) {
	return r.statusEntries, nil
}

func (r *stubHistoryRepo) FieldHistoryByOrder(ctx context.Context, orderID int) ([]entities.FieldHistory, error) {
	return r.fieldEntries, nil
}

type stubMemoRepo struct {
	memos []entities.Memo
}

func (r *stubMemoRepo) InsertMemo(ctx context.Context, memo entities.Memo) (*entities.Memo, error) {
	memo.ID = len(r.memos) + 1
	memo.CreatedAt = time.Now()
	r.memos = append(r.memos, memo)
	return &memo, nil
}

func (r *stubMemoRepo) MemosByOrder(ctx context.Context, orderID int) ([]entities.Memo, error) {
	return r.memos, nil
}

type stubQuoteLinkRepo struct {
	links []entities.QuoteLink
}

func (r *stubQuoteLinkRepo) InsertQuoteLink(ctx context.Context, link entities.QuoteLink) (*entities.QuoteLink, error) {
	link.ID = len(r.links) + 1
	link.CreatedAt = time.Now()
	r.links = append(r.links, link)
	return &link, nil
}

func (r *stubQuoteLinkRepo) QuoteLinksByOrder(ctx context.Context, orderID int) ([]entities.QuoteLink, error) {
	return r.links, nil
}

func (r *stubQuoteLinkRepo) CountByOrder(ctx context.Context, orderID int) (int, error) {
	return len(r.links), nil
}

type stubCompanyRepo struct {
	companies []entities.Company
}

func (r *stubCompanyRepo) GetCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error) {
	return r.companies, uint64(len(r.companies)), nil
}

func (r *stubCompanyRepo) FindCompany(ctx context.Context, id int) (*entities.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubCompanyRepo) FindCompaniesByIDs(ctx context.Context, ids []int) ([]entities.Company, error) {
	var out []entities.Company
	for _, id := range ids {
		for _, c := range r.companies {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) ListActive(ctx context.Context) ([]entities.Company, error) {
	return r.companies, nil
}

type stubGroupPurchaseRepo struct {
	groupPurchases []entities.GroupPurchase
}

func (r *stubGroupPurchaseRepo) GetGroupPurchases(ctx context.Context) ([]entities.GroupPurchase, error) {
	return r.groupPurchases, nil
}

func (r *stubGroupPurchaseRepo) FindGroupPurchase(ctx context.Context, id int) (*entities.GroupPurchase, error) {
	for _, gp := range r.groupPurchases {
		if gp.ID == id {
			return &gp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubGroupPurchaseRepo) FindGroupPurchasesByIDs(ctx context.Context, ids []int) ([]entities.GroupPurchase, error) {
	var out []entities.GroupPurchase
	for _, id := range ids {
		for _, gp := range r.groupPurchases {
			if gp.ID == id {
				out = append(out, gp)
			}
		}
	}
	return out, nil
}
