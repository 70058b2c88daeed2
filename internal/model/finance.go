package model

import "time"

// Finance record kinds.
const (
	FinanceIncome  = "income"
	FinanceExpense = "expense"
)

// FinanceRecord is one bookkeeping entry.  OccurredOn is the business
// date of the transaction, distinct from CreatedAt which records when
// the entry was typed in.
type FinanceRecord struct {
	ID          uint64    `json:"id"`           // finance_records.id
	Kind        string    `json:"kind"`         // finance_records.kind (income|expense)
	AmountCents uint32    `json:"amount_cents"` // finance_records.amount_cents
	Category    string    `json:"category"`     // finance_records.category
	Description string    `json:"description"`  // finance_records.description
	OccurredOn  time.Time `json:"occurred_on"`  // finance_records.occurred_on (date)
	CreatedAt   time.Time `json:"created_at"`   // finance_records.created_at
	UpdatedAt   time.Time `json:"updated_at"`   // finance_records.updated_at
}
