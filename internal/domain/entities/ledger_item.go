package entities

import "time"

// LedgerOrigin tags which underlying entity a unified ledger item projects.
// It is immutable and determines where a mutation request is routed.

type LedgerOrigin string

const (
	OriginExpense        LedgerOrigin = "expense"
	OriginServicePayment LedgerOrigin = "service_payment"
)

// ValidOrigin reports whether o is a known ledger origin.
func ValidOrigin(o LedgerOrigin) bool {
	return o == OriginExpense || o == OriginServicePayment
}

// LedgerItemKey identifies a ledger item by origin tag plus underlying id.
// The tagged struct replaces string-prefixed composite ids so routing never
// parses identifiers.
type LedgerItemKey struct {
	Origin LedgerOrigin `json:"origin"`
	ID     string       `json:"id"`
}

// LedgerItem is the read-only unified projection over general expenses and
// service payments used by the pending/paid views. It is derived per load and
// never persisted.
type LedgerItem struct {
	Key         LedgerItemKey `json:"key"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Supplier    string        `json:"supplier,omitempty"`
	Segment     Segment       `json:"segment"`
	TotalAmount float64       `json:"total_amount"`
	AmountPaid  float64       `json:"amount_paid"`
	Priority    int           `json:"priority"`
	Status      PayableStatus `json:"status"`
	ServiceID   string        `json:"service_id,omitempty"`
}

// Outstanding is the unpaid remainder of the item.
func (i LedgerItem) Outstanding() float64 {
	return i.TotalAmount - i.AmountPaid
}

// Settled reports whether the item belongs to the paid partition.
// An item is settled when its outstanding balance is below MoneyEpsilon;
// everything else is pending, so the two partitions are disjoint and
// exhaustive by construction.
func (i LedgerItem) Settled() bool {
	return i.Outstanding() < MoneyEpsilon
}
