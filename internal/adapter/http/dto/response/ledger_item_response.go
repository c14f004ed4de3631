package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

// LedgerItemResponse flattens the tagged ledger key for clients while keeping
// origin and id as separate fields (never a composite string).
type LedgerItemResponse struct {
	ItemOrigin  string    `json:"item_origin"`
	ItemID      string    `json:"item_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Supplier    string    `json:"supplier,omitempty"`
	Segment     string    `json:"segment"`
	TotalAmount float64   `json:"total_amount"`
	AmountPaid  float64   `json:"amount_paid"`
	Outstanding float64   `json:"outstanding"`
	Priority    int       `json:"priority"`
	Status      string    `json:"status"`
	ServiceID   string    `json:"service_id,omitempty"`
}

func FromLedgerItem(it entities.LedgerItem) LedgerItemResponse {
	return LedgerItemResponse{
		ItemOrigin:  string(it.Key.Origin),
		ItemID:      it.Key.ID,
		Date:        it.Date,
		Description: it.Description,
		Supplier:    it.Supplier,
		Segment:     string(it.Segment),
		TotalAmount: it.TotalAmount,
		AmountPaid:  it.AmountPaid,
		Outstanding: it.Outstanding(),
		Priority:    it.Priority,
		Status:      string(it.Status),
		ServiceID:   it.ServiceID,
	}
}

func FromLedgerItems(items []entities.LedgerItem) []LedgerItemResponse {
	out := make([]LedgerItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromLedgerItem(it))
	}
	return out
}

// LedgerResponse is the full ledger view: both partitions plus any records
// excluded during derivation.
type LedgerResponse struct {
	Pending  []LedgerItemResponse `json:"pending"`
	Paid     []LedgerItemResponse `json:"paid"`
	Warnings []WarningResponse    `json:"warnings,omitempty"`
}

type WarningResponse struct {
	ItemOrigin string `json:"item_origin,omitempty"`
	ItemID     string `json:"item_id,omitempty"`
	Reason     string `json:"reason"`
}
