package usecase

import (
	"context"
	"errors"
	"testing"

	"construtora_xpto/internal/domain/entities"
	mock_interfaces "construtora_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	projects *mock_interfaces.MockIProjectRepository
	services *mock_interfaces.MockIServiceRepository
	expenses *mock_interfaces.MockIGeneralExpenseRepository
	payments *mock_interfaces.MockIServicePaymentRepository
	budgets  *mock_interfaces.MockIPendingBudgetRepository
	stages   *mock_interfaces.MockIScheduleStageRepository
}

func newDashboardUseCase(ctrl *gomock.Controller) (*DashboardUseCase, dashboardMocks) {
	m := dashboardMocks{
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		expenses: mock_interfaces.NewMockIGeneralExpenseRepository(ctrl),
		payments: mock_interfaces.NewMockIServicePaymentRepository(ctrl),
		budgets:  mock_interfaces.NewMockIPendingBudgetRepository(ctrl),
		stages:   mock_interfaces.NewMockIScheduleStageRepository(ctrl),
	}
	uc := NewDashboardUseCase(
		m.projects, m.services, m.expenses, m.payments, m.budgets, m.stages,
		NewLedgerUseCase(), NewRollupUseCase(), NewSummaryUseCase(DefaultReleasePolicy()), NewScheduleUseCase(),
	)
	return uc, m
}

func (m dashboardMocks) expectSnapshot(snap entities.ProjectSnapshot) {
	m.projects.EXPECT().GetByID(gomock.Any(), snap.Project.ID).Return(snap.Project, nil)
	m.services.EXPECT().ListByProjectID(gomock.Any(), snap.Project.ID).Return(snap.Services, nil)
	m.expenses.EXPECT().ListByProjectID(gomock.Any(), snap.Project.ID).Return(snap.GeneralExpenses, nil)
	m.payments.EXPECT().ListByProjectID(gomock.Any(), snap.Project.ID).Return(snap.ServicePayments, nil)
	m.budgets.EXPECT().ListByProjectID(gomock.Any(), snap.Project.ID).Return(snap.PendingBudgets, nil)
	m.stages.EXPECT().ListByProjectID(gomock.Any(), snap.Project.ID).Return(snap.Stages, nil)
}

func TestDashboardUseCase_LoadSnapshot(t *testing.T) {
	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Project{}, nil)

		if _, err := uc.LoadSnapshot(context.Background(), "ghost"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newDashboardUseCase(ctrl)

		if _, err := uc.LoadSnapshot(context.Background(), "  "); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		boom := errors.New("table offline")
		m.projects.EXPECT().GetByID(gomock.Any(), "obra-1").Return(entities.Project{ID: "obra-1"}, nil)
		m.services.EXPECT().ListByProjectID(gomock.Any(), "obra-1").Return(nil, boom)

		if _, err := uc.LoadSnapshot(context.Background(), "obra-1"); !errors.Is(err, boom) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("loads every collection up front", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		snap := entities.ProjectSnapshot{
			Project:         entities.Project{ID: "obra-1", Name: "Residencial Aurora"},
			Services:        []entities.Service{{ID: "s-1", ProjectID: "obra-1"}},
			GeneralExpenses: []entities.GeneralExpense{{ID: "e-1", Date: day(1), TotalAmount: 10}},
			ServicePayments: []entities.ServicePayment{{ID: "p-1", ServiceID: "s-1", Date: day(2), TotalAmount: 20}},
			PendingBudgets:  []entities.PendingBudget{{ID: "b-1", Status: entities.BudgetStatusAguardando}},
			Stages:          []entities.ScheduleStage{{ID: "st-1", Mode: entities.MeasurementManual}},
		}
		m.expectSnapshot(snap)

		got, err := uc.LoadSnapshot(context.Background(), "obra-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Services) != 1 || len(got.GeneralExpenses) != 1 || len(got.ServicePayments) != 1 ||
			len(got.PendingBudgets) != 1 || len(got.Stages) != 1 {
			t.Fatalf("snapshot incomplete: %+v", got)
		}
	})
}

func TestDashboardUseCase_BuildDashboard(t *testing.T) {
	t.Run("derives every view from one snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		snap := entities.ProjectSnapshot{
			Project:  entities.Project{ID: "obra-1", Name: "Residencial Aurora"},
			Services: []entities.Service{{ID: "s-1", ProjectID: "obra-1", BudgetMaoDeObra: 10000}},
			GeneralExpenses: []entities.GeneralExpense{
				{ID: "e-1", Date: day(1), TotalAmount: 1000, AmountPaid: 400, Priority: 5},
			},
			ServicePayments: []entities.ServicePayment{
				{ID: "p-1", ServiceID: "s-1", Date: day(2), Segment: entities.SegmentMaoDeObra, TotalAmount: 4000, AmountPaid: 4000, Status: entities.PayableStatusPago},
			},
			PendingBudgets: []entities.PendingBudget{
				{ID: "b-1", Status: entities.BudgetStatusAguardando},
				{ID: "b-2", Status: entities.BudgetStatusAprovado},
			},
			Stages: []entities.ScheduleStage{{ID: "st-1", Mode: entities.MeasurementManual, CompletionPct: 100}},
		}
		m.expectSnapshot(snap)

		d, err := uc.BuildDashboard(context.Background(), "obra-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if d.Project.ID != "obra-1" {
			t.Fatalf("unexpected project: %+v", d.Project)
		}
		if d.Summary.OrcamentoTotal != 10000 || d.Summary.ValoresPagos != 4400 {
			t.Fatalf("unexpected summary: %+v", d.Summary)
		}
		if len(d.Rollups) != 1 || d.Rollups[0].MaoDeObra.Paid != 4000 {
			t.Fatalf("unexpected rollups: %+v", d.Rollups)
		}
		if len(d.Pending) != 1 || d.Pending[0].Key.ID != "e-1" {
			t.Fatalf("unexpected pending partition: %+v", d.Pending)
		}
		if len(d.Paid) != 1 || d.Paid[0].Key.ID != "p-1" {
			t.Fatalf("unexpected paid partition: %+v", d.Paid)
		}
		// Only undecided proposals surface on the dashboard.
		if len(d.PendingBudgets) != 1 || d.PendingBudgets[0].ID != "b-1" {
			t.Fatalf("unexpected pending budgets: %+v", d.PendingBudgets)
		}
		if len(d.Schedule) != 1 || d.Schedule[0].Status != entities.ScheduleCompleted {
			t.Fatalf("unexpected schedule: %+v", d.Schedule)
		}
		if len(d.LedgerWarnings) != 0 || len(d.RollupWarnings) != 0 {
			t.Fatalf("unexpected warnings: %+v %+v", d.LedgerWarnings, d.RollupWarnings)
		}
	})

	t.Run("surfaces derivation warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		snap := entities.ProjectSnapshot{
			Project: entities.Project{ID: "obra-1"},
			GeneralExpenses: []entities.GeneralExpense{
				{ID: "e-1", Description: "sem data", TotalAmount: 10}, // zero date
				{ID: "e-2", Date: day(1), ServiceID: "ghost", Segment: entities.SegmentMaterial, TotalAmount: 20},
			},
		}
		m.expectSnapshot(snap)

		d, err := uc.BuildDashboard(context.Background(), "obra-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.LedgerWarnings) != 1 || len(d.RollupWarnings) != 1 {
			t.Fatalf("expected one warning per engine, got %+v %+v", d.LedgerWarnings, d.RollupWarnings)
		}
	})
}
