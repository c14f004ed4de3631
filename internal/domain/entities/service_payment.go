package entities

import "time"

// ServicePayment is a payment obligation scoped to one service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - GSI2 (service_id-index): service_id
//
// Segment is restricted to the budgeted segments (mão de obra, material) and
// Description is derived from the owning service at registration time.
type ServicePayment struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	ServiceID   string        `json:"service_id"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Supplier    string        `json:"supplier,omitempty"`
	TotalAmount float64       `json:"total_amount"`
	AmountPaid  float64       `json:"amount_paid"`
	Segment     Segment       `json:"segment"`
	Priority    int           `json:"priority"`
	Status      PayableStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Outstanding is the unpaid remainder of the payment obligation.
func (p ServicePayment) Outstanding() float64 {
	return p.TotalAmount - p.AmountPaid
}
