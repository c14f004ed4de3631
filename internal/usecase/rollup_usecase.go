package usecase

import (
	"errors"
	"fmt"
	"math"

	"construtora_xpto/internal/domain/entities"
)

var (
	ErrUnknownEntityReference = errors.New("record references an unknown entity")
)

// SegmentRollup is the committed/paid/budgeted picture of one service segment.
//
// ProgressPct is the raw paid/budgeted ratio rounded to whole percent; it may
// exceed 100 when a segment is overpaid relative to its budget, which is a
// signal rather than an error. A zero budget reports 0 to avoid division by
// zero while still exposing committed/paid for unbudgeted ad-hoc segments.
type SegmentRollup struct {
	Budgeted    float64 `json:"budgeted"`
	Committed   float64 `json:"committed"`
	Paid        float64 `json:"paid"`
	ProgressPct int     `json:"progress_pct"`
}

// ServiceRollup groups the two budgeted segments of a service.
type ServiceRollup struct {
	ServiceID string        `json:"service_id"`
	MaoDeObra SegmentRollup `json:"mao_de_obra"`
	Material  SegmentRollup `json:"material"`
}

// RollupWarning flags a record excluded from the rollups because it points at
// a service absent from the snapshot (data-consistency fault, recovered
// locally so one bad record cannot blank the dashboard).
type RollupWarning struct {
	Key    entities.LedgerItemKey `json:"key"`
	Reason string                 `json:"reason"`
}

// IRollupUseCase is the per-service segment rollup engine.

type IRollupUseCase interface {
	BuildRollups(snap entities.ProjectSnapshot) ([]ServiceRollup, []RollupWarning)
}

type RollupUseCase struct{}

var _ IRollupUseCase = (*RollupUseCase)(nil)

func NewRollupUseCase() *RollupUseCase {
	return &RollupUseCase{}
}

// BuildRollups computes, for each service and each budgeted segment:
//
//	committed = Σ service payment totals + Σ linked general expense totals
//	paid      = Σ service payment paid amounts
//
// Linked expenses count into committed only; their settlement is tracked
// through the unified ledger, never double-counted into the service's paid
// bucket. The computation is pure and idempotent over a snapshot.
func (u *RollupUseCase) BuildRollups(snap entities.ProjectSnapshot) ([]ServiceRollup, []RollupWarning) {
	index := make(map[string]int, len(snap.Services))
	rollups := make([]ServiceRollup, len(snap.Services))
	for i, svc := range snap.Services {
		index[svc.ID] = i
		rollups[i] = ServiceRollup{
			ServiceID: svc.ID,
			MaoDeObra: SegmentRollup{Budgeted: svc.BudgetMaoDeObra},
			Material:  SegmentRollup{Budgeted: svc.BudgetMaterial},
		}
	}

	var warnings []RollupWarning

	for _, p := range snap.ServicePayments {
		i, ok := index[p.ServiceID]
		if !ok {
			warnings = append(warnings, RollupWarning{
				Key:    entities.LedgerItemKey{Origin: entities.OriginServicePayment, ID: p.ID},
				Reason: fmt.Sprintf("%v: service %s", ErrUnknownEntityReference, p.ServiceID),
			})
			continue
		}
		seg := rollups[i].segment(p.Segment)
		if seg == nil {
			continue
		}
		seg.Committed += p.TotalAmount
		seg.Paid += p.AmountPaid
	}

	for _, e := range snap.GeneralExpenses {
		if e.ServiceID == "" {
			continue
		}
		i, ok := index[e.ServiceID]
		if !ok {
			warnings = append(warnings, RollupWarning{
				Key:    entities.LedgerItemKey{Origin: entities.OriginExpense, ID: e.ID},
				Reason: fmt.Sprintf("%v: service %s", ErrUnknownEntityReference, e.ServiceID),
			})
			continue
		}
		seg := rollups[i].segment(e.Segment)
		if seg == nil {
			continue
		}
		seg.Committed += e.TotalAmount
	}

	for i := range rollups {
		rollups[i].MaoDeObra.ProgressPct = progressPct(rollups[i].MaoDeObra)
		rollups[i].Material.ProgressPct = progressPct(rollups[i].Material)
	}
	return rollups, warnings
}

// segment selects the rollup bucket for a budgeted segment; records in other
// segments stay out of the service rollup (they remain visible in the ledger).
func (r *ServiceRollup) segment(s entities.Segment) *SegmentRollup {
	switch s {
	case entities.SegmentMaoDeObra:
		return &r.MaoDeObra
	case entities.SegmentMaterial:
		return &r.Material
	}
	return nil
}

func progressPct(s SegmentRollup) int {
	if s.Budgeted <= 0 {
		return 0
	}
	return int(math.Round(100 * s.Paid / s.Budgeted))
}
