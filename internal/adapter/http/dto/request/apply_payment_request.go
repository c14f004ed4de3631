package request

import (
	"encoding/json"
	"strings"

	"construtora_xpto/internal/domain/entities"
)

// ApplyPaymentRequest applies a partial or full payment to a ledger item.
//
// The item is addressed by its tagged key (origin + id); mp_payload is an
// optional raw Mercado Pago request forwarded to the gateway before the
// ledger mutation.
type ApplyPaymentRequest struct {
	ItemOrigin    string          `json:"item_origin" binding:"required"`
	ItemID        string          `json:"item_id" binding:"required"`
	AmountToApply float64         `json:"amount_to_apply" binding:"required"`
	MPPayload     json.RawMessage `json:"mp_payload,omitempty"`
}

func (r ApplyPaymentRequest) Key() entities.LedgerItemKey {
	return entities.LedgerItemKey{
		Origin: entities.LedgerOrigin(strings.TrimSpace(r.ItemOrigin)),
		ID:     strings.TrimSpace(r.ItemID),
	}
}

// SettleItemRequest settles a ledger item's full outstanding balance.
type SettleItemRequest struct {
	ItemOrigin string `json:"item_origin" binding:"required"`
	ItemID     string `json:"item_id" binding:"required"`
}

func (r SettleItemRequest) Key() entities.LedgerItemKey {
	return entities.LedgerItemKey{
		Origin: entities.LedgerOrigin(strings.TrimSpace(r.ItemOrigin)),
		ID:     strings.TrimSpace(r.ItemID),
	}
}
