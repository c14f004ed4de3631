package usecase

import (
	"testing"

	"construtora_xpto/internal/domain/entities"
)

func TestSummaryUseCase_BuildSummary(t *testing.T) {
	ledger := NewLedgerUseCase()

	t.Run("kpis over services and ledger", func(t *testing.T) {
		snap := entities.ProjectSnapshot{
			Services: []entities.Service{
				{ID: "s-1", BudgetMaoDeObra: 10000, BudgetMaterial: 5000},
				{ID: "s-2", BudgetMaoDeObra: 2000},
			},
			GeneralExpenses: []entities.GeneralExpense{
				{ID: "e-1", Date: day(1), Segment: entities.SegmentMaterial, TotalAmount: 1000, AmountPaid: 400, Priority: 5},
				{ID: "e-2", Date: day(2), Segment: entities.SegmentEquipamento, TotalAmount: 300, AmountPaid: 0, Priority: 1},
			},
			ServicePayments: []entities.ServicePayment{
				{ID: "p-1", ServiceID: "s-1", Date: day(3), Segment: entities.SegmentMaoDeObra, TotalAmount: 4000, AmountPaid: 4000, Priority: 2},
			},
		}
		items, _ := ledger.BuildLedger(snap)

		s := NewSummaryUseCase(DefaultReleasePolicy()).BuildSummary(snap, items)
		if s.OrcamentoTotal != 17000 {
			t.Fatalf("expected orcamento 17000, got %v", s.OrcamentoTotal)
		}
		if s.ValoresPagos != 4400 {
			t.Fatalf("expected pagos 4400, got %v", s.ValoresPagos)
		}
		// Only e-1 qualifies: priority 5 with 600 outstanding.
		if s.LiberadoPagamento != 600 {
			t.Fatalf("expected liberado 600, got %v", s.LiberadoPagamento)
		}
		if s.Residual != s.OrcamentoTotal-s.ValoresPagos {
			t.Fatalf("residual identity broken: %+v", s)
		}
		if s.TotalPorSegmentoGeral[entities.SegmentMaoDeObra] != 4000 ||
			s.TotalPorSegmentoGeral[entities.SegmentMaterial] != 1000 ||
			s.TotalPorSegmentoGeral[entities.SegmentEquipamento] != 300 {
			t.Fatalf("unexpected segment totals: %+v", s.TotalPorSegmentoGeral)
		}
	})

	t.Run("liberado status qualifies regardless of priority", func(t *testing.T) {
		snap := entities.ProjectSnapshot{
			GeneralExpenses: []entities.GeneralExpense{
				{ID: "e-1", Date: day(1), TotalAmount: 500, Priority: 0, Status: entities.PayableStatusLiberado},
				{ID: "e-2", Date: day(2), TotalAmount: 800, Priority: 0, Status: entities.PayableStatusAPagar},
			},
		}
		items, _ := ledger.BuildLedger(snap)

		s := NewSummaryUseCase(DefaultReleasePolicy()).BuildSummary(snap, items)
		if s.LiberadoPagamento != 500 {
			t.Fatalf("expected liberado 500, got %v", s.LiberadoPagamento)
		}
	})

	t.Run("priority threshold is a policy input", func(t *testing.T) {
		snap := entities.ProjectSnapshot{
			GeneralExpenses: []entities.GeneralExpense{
				{ID: "e-1", Date: day(1), TotalAmount: 100, Priority: 2},
				{ID: "e-2", Date: day(2), TotalAmount: 200, Priority: 3},
			},
		}
		items, _ := ledger.BuildLedger(snap)

		s := NewSummaryUseCase(ReleasePolicy{MinPriority: 3}).BuildSummary(snap, items)
		if s.LiberadoPagamento != 200 {
			t.Fatalf("expected liberado 200 under MinPriority 3, got %v", s.LiberadoPagamento)
		}
	})

	t.Run("settled items never count as queued", func(t *testing.T) {
		snap := entities.ProjectSnapshot{
			GeneralExpenses: []entities.GeneralExpense{
				{ID: "e-1", Date: day(1), TotalAmount: 100, AmountPaid: 100, Priority: 5, Status: entities.PayableStatusPago},
			},
		}
		items, _ := ledger.BuildLedger(snap)

		s := NewSummaryUseCase(DefaultReleasePolicy()).BuildSummary(snap, items)
		if s.LiberadoPagamento != 0 {
			t.Fatalf("settled item counted as queued: %+v", s)
		}
	})

	t.Run("empty snapshot yields zero kpis", func(t *testing.T) {
		s := NewSummaryUseCase(DefaultReleasePolicy()).BuildSummary(entities.ProjectSnapshot{}, nil)
		if s.OrcamentoTotal != 0 || s.ValoresPagos != 0 || s.LiberadoPagamento != 0 || s.Residual != 0 {
			t.Fatalf("expected zero summary, got %+v", s)
		}
	})
}
