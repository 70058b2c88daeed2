package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ErrFinanceNotFound is returned when a finance record cannot be located.
var ErrFinanceNotFound = errors.New("finance record not found")

// FinanceRepo stores income/expense bookkeeping entries.
type FinanceRepo struct {
	db *sql.DB
}

// NewFinanceRepo constructs a FinanceRepo with the provided DB handle.
func NewFinanceRepo(db *sql.DB) *FinanceRepo { return &FinanceRepo{db: db} }

const financeColumns = "id, kind, amount_cents, category, description, occurred_on, created_at, updated_at"

func scanFinance(row interface{ Scan(...any) error }, f *model.FinanceRecord) error {
	return row.Scan(&f.ID, &f.Kind, &f.AmountCents, &f.Category, &f.Description,
		&f.OccurredOn, &f.CreatedAt, &f.UpdatedAt)
}

// List returns records filtered by kind and date range, newest first.
// Empty filter values are ignored.
func (r *FinanceRepo) List(ctx context.Context, kind string, from, to *time.Time) ([]model.FinanceRecord, error) {
	q := "SELECT " + financeColumns + " FROM finance_records WHERE 1=1"
	args := make([]any, 0, 3)
	if kind != "" {
		q += " AND kind = ?"
		args = append(args, kind)
	}
	if from != nil {
		q += " AND occurred_on >= ?"
		args = append(args, *from)
	}
	if to != nil {
		q += " AND occurred_on <= ?"
		args = append(args, *to)
	}
	q += " ORDER BY occurred_on DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.FinanceRecord, 0)
	for rows.Next() {
		var f model.FinanceRecord
		if err := scanFinance(rows, &f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a record and populates ID and timestamps.
func (r *FinanceRepo) Create(ctx context.Context, f *model.FinanceRecord) error {
	const qInsert = `INSERT INTO finance_records (kind, amount_cents, category, description, occurred_on)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, f.Kind, f.AmountCents, f.Category, f.Description, f.OccurredOn)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	const qSelect = "SELECT " + financeColumns + " FROM finance_records WHERE id = ?"
	return scanFinance(r.db.QueryRowContext(ctx, qSelect, f.ID), f)
}

// Update rewrites a record, returning ErrFinanceNotFound when the row
// does not exist.
func (r *FinanceRepo) Update(ctx context.Context, f *model.FinanceRecord) error {
	const q = `UPDATE finance_records SET kind = ?, amount_cents = ?, category = ?, description = ?, occurred_on = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, f.Kind, f.AmountCents, f.Category, f.Description, f.OccurredOn, f.ID); err != nil {
		return err
	}
	const qSelect = "SELECT " + financeColumns + " FROM finance_records WHERE id = ?"
	if err := scanFinance(r.db.QueryRowContext(ctx, qSelect, f.ID), f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFinanceNotFound
		}
		return err
	}
	return nil
}

// Delete removes a record.  ErrFinanceNotFound when no row matched.
func (r *FinanceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM finance_records WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFinanceNotFound
	}
	return nil
}

// CategoryTotals holds per-category sums for the summary endpoint.
type CategoryTotals struct {
	IncomeCents  uint64 `json:"income_cents"`
	ExpenseCents uint64 `json:"expense_cents"`
}

// FinanceSummary aggregates totals over a date range.
type FinanceSummary struct {
	TotalIncomeCents  uint64                    `json:"total_income_cents"`
	TotalExpenseCents uint64                    `json:"total_expense_cents"`
	BalanceCents      int64                     `json:"balance_cents"`
	ByCategory        map[string]CategoryTotals `json:"by_category"`
}

// Summary computes income/expense totals and a per-category breakdown
// over [from, to] on the business date.
func (r *FinanceRepo) Summary(ctx context.Context, from, to *time.Time) (*FinanceSummary, error) {
	q := `SELECT category,
	             COALESCE(SUM(IF(kind = 'income', amount_cents, 0)), 0),
	             COALESCE(SUM(IF(kind = 'expense', amount_cents, 0)), 0)
	      FROM finance_records WHERE 1=1`
	args := make([]any, 0, 2)
	if from != nil {
		q += " AND occurred_on >= ?"
		args = append(args, *from)
	}
	if to != nil {
		q += " AND occurred_on <= ?"
		args = append(args, *to)
	}
	q += " GROUP BY category"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sum := &FinanceSummary{ByCategory: map[string]CategoryTotals{}}
	for rows.Next() {
		var (
			category string
			income   uint64
			expense  uint64
		)
		if err := rows.Scan(&category, &income, &expense); err != nil {
			return nil, err
		}
		sum.ByCategory[category] = CategoryTotals{IncomeCents: income, ExpenseCents: expense}
		sum.TotalIncomeCents += income
		sum.TotalExpenseCents += expense
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sum.BalanceCents = int64(sum.TotalIncomeCents) - int64(sum.TotalExpenseCents)
	return sum, nil
}
