package usecase

import (
	"construtora_xpto/internal/domain/entities"
)

// ReleasePolicy decides which pending items count into liberado_pagamento.
//
// An item qualifies when its priority meets MinPriority or its status is
// liberado (explicitly queued for payment). The exact inclusion rule is a
// policy input, configurable per deployment, never hard-coded in the engine.
type ReleasePolicy struct {
	MinPriority int `json:"min_priority"`
}

func DefaultReleasePolicy() ReleasePolicy {
	return ReleasePolicy{MinPriority: entities.DefaultReleaseMinPriority}
}

// Includes reports whether a pending item is queued for payment.
func (p ReleasePolicy) Includes(it entities.LedgerItem) bool {
	return it.Priority >= p.MinPriority || it.Status == entities.PayableStatusLiberado
}

// Summary is the project-level KPI set derived from services and the unified
// ledger. All four figures are recomputed from scratch on every load;
// correctness over incremental bookkeeping given the expected data volumes.
type Summary struct {
	OrcamentoTotal        float64                      `json:"orcamento_total"`
	ValoresPagos          float64                      `json:"valores_pagos"`
	LiberadoPagamento     float64                      `json:"liberado_pagamento"`
	Residual              float64                      `json:"residual"`
	TotalPorSegmentoGeral map[entities.Segment]float64 `json:"total_por_segmento_geral"`
}

// ISummaryUseCase is the project summary calculator. It consumes the ledger
// produced by the aggregator; callers must build the ledger first.

type ISummaryUseCase interface {
	BuildSummary(snap entities.ProjectSnapshot, items []entities.LedgerItem) Summary
}

type SummaryUseCase struct {
	policy ReleasePolicy
}

var _ ISummaryUseCase = (*SummaryUseCase)(nil)

func NewSummaryUseCase(policy ReleasePolicy) *SummaryUseCase {
	return &SummaryUseCase{policy: policy}
}

func (u *SummaryUseCase) BuildSummary(snap entities.ProjectSnapshot, items []entities.LedgerItem) Summary {
	s := Summary{TotalPorSegmentoGeral: make(map[entities.Segment]float64)}

	for _, svc := range snap.Services {
		s.OrcamentoTotal += svc.TotalBudget()
	}
	for _, it := range items {
		s.ValoresPagos += it.AmountPaid
		s.TotalPorSegmentoGeral[it.Segment] += it.TotalAmount
		if !it.Settled() && u.policy.Includes(it) {
			s.LiberadoPagamento += it.Outstanding()
		}
	}
	s.Residual = s.OrcamentoTotal - s.ValoresPagos
	return s
}
