package repository

import (
	"context"
	"database/sql"

	"github.com/ermekov/barbershop-booking/internal/model"
)

// ScheduleRepo stores the weekly schedule rule set.  There is at most
// one rule per weekday, enforced by a unique key on the weekday column.
// Administrators always replace the whole set at once, mirroring how
// the schedule screen submits its form.
type ScheduleRepo struct {
	db *sql.DB
}

// NewScheduleRepo constructs a ScheduleRepo with the provided DB handle.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo { return &ScheduleRepo{db: db} }

// List returns all configured rules ordered by weekday.  Days without a
// rule are simply absent; the schedule resolver treats them as closed.
func (r *ScheduleRepo) List(ctx context.Context) ([]model.ScheduleRule, error) {
	const q = `SELECT id, weekday, open_time, close_time, break_start, break_end, working, updated_at
	           FROM schedule_rules ORDER BY weekday`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ScheduleRule, 0, 7)
	for rows.Next() {
		var (
			rule       model.ScheduleRule
			breakStart sql.NullString
			breakEnd   sql.NullString
		)
		if err := rows.Scan(&rule.ID, &rule.Weekday, &rule.OpenTime, &rule.CloseTime,
			&breakStart, &breakEnd, &rule.Working, &rule.UpdatedAt); err != nil {
			return nil, err
		}
		if breakStart.Valid && breakStart.String != "" {
			v := breakStart.String
			rule.BreakStart = &v
		}
		if breakEnd.Valid && breakEnd.String != "" {
			v := breakEnd.String
			rule.BreakEnd = &v
		}
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Replace swaps the stored rule set for the provided one inside a
// single transaction, so slot generation never observes a half-written
// schedule.  Callers must validate the rules first (schedule.ValidateRules).
func (r *ScheduleRepo) Replace(ctx context.Context, rules []model.ScheduleRule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM schedule_rules"); err != nil {
		return err
	}
	const q = `INSERT INTO schedule_rules (weekday, open_time, close_time, break_start, break_end, working)
	           VALUES (?, ?, ?, ?, ?, ?)`
	for _, rule := range rules {
		var breakStart, breakEnd any
		if rule.BreakStart != nil && *rule.BreakStart != "" {
			breakStart = *rule.BreakStart
		}
		if rule.BreakEnd != nil && *rule.BreakEnd != "" {
			breakEnd = *rule.BreakEnd
		}
		if _, err := tx.ExecContext(ctx, q, rule.Weekday, rule.OpenTime, rule.CloseTime,
			breakStart, breakEnd, rule.Working); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
