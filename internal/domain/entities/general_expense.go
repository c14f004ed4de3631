package entities

import "time"

// GeneralExpense is a project-wide expense record (despesa geral).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Monetary representation:
//   - TotalAmount / AmountPaid are currency amounts; AmountPaid never exceeds
//     TotalAmount, enforced at the payment use case boundary.
//
// ServiceID is an optional weak reference: a linked expense counts into the
// owning service's committed rollup but its paid amount is tracked only
// through the unified ledger.
type GeneralExpense struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Supplier    string        `json:"supplier,omitempty"`
	TotalAmount float64       `json:"total_amount"`
	AmountPaid  float64       `json:"amount_paid"`
	Priority    int           `json:"priority"`
	Segment     Segment       `json:"segment"`
	Status      PayableStatus `json:"status"`
	ServiceID   string        `json:"service_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Outstanding is the unpaid remainder of the expense.
func (e GeneralExpense) Outstanding() float64 {
	return e.TotalAmount - e.AmountPaid
}
