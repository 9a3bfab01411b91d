package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/restaurant-erp/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) Bills(ctx context.Context, filter entity.BillFilter) ([]entity.Bill, error) {
	stmt := sq.Select(billColumns...).From("bills").PlaceholderFormat(sq.Dollar)
	stmt = applyBillFilter(stmt, filter)

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	bills := make([]entity.Bill, 0)

	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}

		bills = append(bills, bill)
	}

	return bills, rows.Err()
}

func applyBillFilter(stmt sq.SelectBuilder, f entity.BillFilter) sq.SelectBuilder {
	if f.CustomerID != "" {
		stmt = stmt.Where(sq.Eq{"customer_id": f.CustomerID})
	}

	if f.From != nil {
		stmt = stmt.Where(sq.GtOrEq{"created_at": *f.From})
	}

	if f.To != nil {
		stmt = stmt.Where(sq.Lt{"created_at": *f.To})
	}

	return stmt
}

func (r *Repository) CreateBill(ctx context.Context, bill entity.Bill) (entity.Bill, error) {
	id := uuid.Must(uuid.NewV4())

	return scanBill(r.db.QueryRow(ctx, insertBill,
		id,
		bill.CustomerID,
		bill.Total,
		bill.CreatedAt,
		bill.Items,
	))
}

func (r *Repository) Bill(ctx context.Context, id string) (entity.Bill, error) {
	billID, err := uuid.FromString(id)
	if err != nil {
		return entity.Bill{}, entity.ErrNotFound
	}

	return scanBill(r.db.QueryRow(ctx, selectBill, billID))
}

func (r *Repository) UpdateBill(ctx context.Context, id string, patch entity.BillPatch) (entity.Bill, error) {
	billID, err := uuid.FromString(id)
	if err != nil {
		return entity.Bill{}, entity.ErrNotFound
	}

	stmt := sq.Update("bills").
		Where(sq.Eq{"id": billID}).
		Suffix("RETURNING " + strings.Join(billColumns, ", ")).
		PlaceholderFormat(sq.Dollar)

	if patch.CustomerID != nil {
		stmt = stmt.Set("customer_id", *patch.CustomerID)
	}

	if patch.Total != nil {
		stmt = stmt.Set("total", *patch.Total)
	}

	if patch.Items != nil {
		stmt = stmt.Set("items", *patch.Items)
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return entity.Bill{}, fmt.Errorf("build query: %w", err)
	}

	return scanBill(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) DeleteBill(ctx context.Context, id string) error {
	billID, err := uuid.FromString(id)
	if err != nil {
		return entity.ErrNotFound
	}

	result, err := r.db.Exec(ctx, deleteBill, billID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanBill(row pgx.Row) (entity.Bill, error) {
	var (
		bill      entity.Bill
		id        uuid.UUID
		createdAt *time.Time
	)

	err := row.Scan(
		&id,
		&bill.CustomerID,
		&bill.Total,
		&createdAt,
		&bill.Items,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Bill{}, entity.ErrNotFound
		}

		return entity.Bill{}, err
	}

	bill.ID = id.String()

	if createdAt != nil {
		t := createdAt.UTC()
		bill.CreatedAt = &t
	}

	if bill.Items == nil {
		bill.Items = []entity.Item{}
	}

	return bill, nil
}
