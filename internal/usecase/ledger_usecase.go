package usecase

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"construtora_xpto/internal/domain/entities"
)

var (
	ErrMalformedRecord = errors.New("malformed ledger record")
)

// LedgerWarning surfaces a record excluded from the unified ledger instead of
// silently dropping it. The dashboard renders these as data-quality flags.
type LedgerWarning struct {
	Key    entities.LedgerItemKey `json:"key"`
	Reason string                 `json:"reason"`
}

// ILedgerUseCase is the unified ledger aggregator.
//
// BuildLedger is a pure projection: given the full set of general expenses and
// service payments of a project it produces the ordered sequence of unified
// ledger items every downstream engine consumes. Completeness of the input is
// a precondition; no filtering happens at this stage.

type ILedgerUseCase interface {
	BuildLedger(snap entities.ProjectSnapshot) ([]entities.LedgerItem, []LedgerWarning)
	Pending(items []entities.LedgerItem) []entities.LedgerItem
	Paid(items []entities.LedgerItem) []entities.LedgerItem
}

type LedgerUseCase struct{}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase() *LedgerUseCase {
	return &LedgerUseCase{}
}

// BuildLedger merges both payable origins into one tagged sequence ordered by
// date (ties broken by origin then id, so reruns over the same snapshot are
// identical). Malformed records are excluded and surfaced as warnings.
func (u *LedgerUseCase) BuildLedger(snap entities.ProjectSnapshot) ([]entities.LedgerItem, []LedgerWarning) {
	items := make([]entities.LedgerItem, 0, len(snap.GeneralExpenses)+len(snap.ServicePayments))
	var warnings []LedgerWarning

	for _, e := range snap.GeneralExpenses {
		it := itemFromExpense(e)
		if reason := malformedReason(it); reason != "" {
			warnings = append(warnings, LedgerWarning{Key: it.Key, Reason: reason})
			continue
		}
		items = append(items, it)
	}
	for _, p := range snap.ServicePayments {
		it := itemFromServicePayment(p)
		if reason := malformedReason(it); reason != "" {
			warnings = append(warnings, LedgerWarning{Key: it.Key, Reason: reason})
			continue
		}
		items = append(items, it)
	}

	sort.SliceStable(items, func(a, b int) bool {
		if !items[a].Date.Equal(items[b].Date) {
			return items[a].Date.Before(items[b].Date)
		}
		if items[a].Key.Origin != items[b].Key.Origin {
			return items[a].Key.Origin < items[b].Key.Origin
		}
		return items[a].Key.ID < items[b].Key.ID
	})
	return items, warnings
}

// Pending returns the items with an outstanding balance at or above the
// rounding tolerance.
func (u *LedgerUseCase) Pending(items []entities.LedgerItem) []entities.LedgerItem {
	out := make([]entities.LedgerItem, 0, len(items))
	for _, it := range items {
		if !it.Settled() {
			out = append(out, it)
		}
	}
	return out
}

// Paid returns the settled items. Pending and Paid are disjoint and together
// cover the whole ledger.
func (u *LedgerUseCase) Paid(items []entities.LedgerItem) []entities.LedgerItem {
	out := make([]entities.LedgerItem, 0, len(items))
	for _, it := range items {
		if it.Settled() {
			out = append(out, it)
		}
	}
	return out
}

func itemFromExpense(e entities.GeneralExpense) entities.LedgerItem {
	return entities.LedgerItem{
		Key:         entities.LedgerItemKey{Origin: entities.OriginExpense, ID: e.ID},
		Date:        e.Date,
		Description: e.Description,
		Supplier:    e.Supplier,
		Segment:     e.Segment,
		TotalAmount: e.TotalAmount,
		AmountPaid:  e.AmountPaid,
		Priority:    e.Priority,
		Status:      e.Status,
		ServiceID:   e.ServiceID,
	}
}

func itemFromServicePayment(p entities.ServicePayment) entities.LedgerItem {
	return entities.LedgerItem{
		Key:         entities.LedgerItemKey{Origin: entities.OriginServicePayment, ID: p.ID},
		Date:        p.Date,
		Description: p.Description,
		Supplier:    p.Supplier,
		Segment:     p.Segment,
		TotalAmount: p.TotalAmount,
		AmountPaid:  p.AmountPaid,
		Priority:    p.Priority,
		Status:      p.Status,
		ServiceID:   p.ServiceID,
	}
}

// malformedReason validates the projected item. A record without a date or
// with a non-numeric amount cannot participate in any derivation.
func malformedReason(it entities.LedgerItem) string {
	if it.Date.IsZero() {
		return fmt.Sprintf("%v: missing date", ErrMalformedRecord)
	}
	if !finite(it.TotalAmount) || !finite(it.AmountPaid) {
		return fmt.Sprintf("%v: non-numeric amount", ErrMalformedRecord)
	}
	if it.TotalAmount < 0 || it.AmountPaid < 0 {
		return fmt.Sprintf("%v: negative amount", ErrMalformedRecord)
	}
	return ""
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
