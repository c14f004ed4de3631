package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"
)

// Dashboard is the fully derived project view: KPIs, per-service rollups,
// ledger partitions and schedule health, computed in one pass over a single
// snapshot.
type Dashboard struct {
	Project        entities.Project         `json:"project"`
	Summary        Summary                  `json:"summary"`
	Rollups        []ServiceRollup          `json:"rollups"`
	Pending        []entities.LedgerItem    `json:"pending"`
	Paid           []entities.LedgerItem    `json:"paid"`
	PendingBudgets []entities.PendingBudget `json:"pending_budgets"`
	Schedule       []StageStatusResult      `json:"schedule"`
	LedgerWarnings []LedgerWarning          `json:"ledger_warnings,omitempty"`
	RollupWarnings []RollupWarning          `json:"rollup_warnings,omitempty"`
}

// IDashboardUseCase assembles the project dashboard.

type IDashboardUseCase interface {
	LoadSnapshot(ctx context.Context, projectID string) (entities.ProjectSnapshot, error)
	BuildDashboard(ctx context.Context, projectID string) (Dashboard, error)
}

// DashboardUseCase fetches a snapshot and runs the derivation engines over it.
//
// Consistency model: mutate remotely, then refetch. Every mutation endpoint
// persists to storage and the next dashboard load re-derives everything from
// a fresh snapshot (eventual, last-write-wins). Within one pass the ledger is
// always built before the rollup and summary engines consume it; the schedule
// engine runs independently. A pass is pure and synchronous over its
// snapshot, so it tolerates being handed a stale-but-complete one.
type DashboardUseCase struct {
	projectRepo interfaces.IProjectRepository
	serviceRepo interfaces.IServiceRepository
	expenseRepo interfaces.IGeneralExpenseRepository
	paymentRepo interfaces.IServicePaymentRepository
	budgetRepo  interfaces.IPendingBudgetRepository
	stageRepo   interfaces.IScheduleStageRepository

	ledger   ILedgerUseCase
	rollup   IRollupUseCase
	summary  ISummaryUseCase
	schedule IScheduleUseCase
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	projectRepo interfaces.IProjectRepository,
	serviceRepo interfaces.IServiceRepository,
	expenseRepo interfaces.IGeneralExpenseRepository,
	paymentRepo interfaces.IServicePaymentRepository,
	budgetRepo interfaces.IPendingBudgetRepository,
	stageRepo interfaces.IScheduleStageRepository,
	ledger ILedgerUseCase,
	rollup IRollupUseCase,
	summary ISummaryUseCase,
	schedule IScheduleUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		projectRepo: projectRepo,
		serviceRepo: serviceRepo,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		budgetRepo:  budgetRepo,
		stageRepo:   stageRepo,
		ledger:      ledger,
		rollup:      rollup,
		summary:     summary,
		schedule:    schedule,
	}
}

// LoadSnapshot fetches the complete record set of a project. Completeness is
// a precondition for the aggregator, so all collections are loaded up front.
func (u *DashboardUseCase) LoadSnapshot(ctx context.Context, projectID string) (entities.ProjectSnapshot, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.ProjectSnapshot{}, ErrProjectNotFound
	}

	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.ProjectSnapshot{}, err
	}
	if p.ID == "" {
		return entities.ProjectSnapshot{}, ErrProjectNotFound
	}

	snap := entities.ProjectSnapshot{Project: p}
	if snap.Services, err = u.serviceRepo.ListByProjectID(ctx, p.ID); err != nil {
		return entities.ProjectSnapshot{}, err
	}
	if snap.GeneralExpenses, err = u.expenseRepo.ListByProjectID(ctx, p.ID); err != nil {
		return entities.ProjectSnapshot{}, err
	}
	if snap.ServicePayments, err = u.paymentRepo.ListByProjectID(ctx, p.ID); err != nil {
		return entities.ProjectSnapshot{}, err
	}
	if snap.PendingBudgets, err = u.budgetRepo.ListByProjectID(ctx, p.ID); err != nil {
		return entities.ProjectSnapshot{}, err
	}
	if snap.Stages, err = u.stageRepo.ListByProjectID(ctx, p.ID); err != nil {
		return entities.ProjectSnapshot{}, err
	}
	return snap, nil
}

func (u *DashboardUseCase) BuildDashboard(ctx context.Context, projectID string) (Dashboard, error) {
	snap, err := u.LoadSnapshot(ctx, projectID)
	if err != nil {
		return Dashboard{}, err
	}

	items, ledgerWarnings := u.ledger.BuildLedger(snap)
	rollups, rollupWarnings := u.rollup.BuildRollups(snap)

	d := Dashboard{
		Project:        snap.Project,
		Summary:        u.summary.BuildSummary(snap, items),
		Rollups:        rollups,
		Pending:        u.ledger.Pending(items),
		Paid:           u.ledger.Paid(items),
		PendingBudgets: awaiting(snap.PendingBudgets),
		Schedule:       u.schedule.EvaluateStages(snap.Stages, time.Now().UTC()),
		LedgerWarnings: ledgerWarnings,
		RollupWarnings: rollupWarnings,
	}
	if len(ledgerWarnings) > 0 || len(rollupWarnings) > 0 {
		log.Printf("[dashboard][usecase] derivation flagged records project_id=%s ledger_warnings=%d rollup_warnings=%d", snap.Project.ID, len(ledgerWarnings), len(rollupWarnings))
	}
	return d, nil
}

func awaiting(budgets []entities.PendingBudget) []entities.PendingBudget {
	out := make([]entities.PendingBudget, 0, len(budgets))
	for _, b := range budgets {
		if b.Status == entities.BudgetStatusAguardando {
			out = append(out, b)
		}
	}
	return out
}
