package response

import (
	"construtora_xpto/internal/usecase"
)

// DashboardResponse is the full derived project view. The summary, rollup and
// schedule shapes come straight from the derivation engines; ledger items and
// budgets are re-projected through their response types.
type DashboardResponse struct {
	Project        ProjectResponse             `json:"project"`
	Summary        usecase.Summary             `json:"summary"`
	Rollups        []usecase.ServiceRollup     `json:"rollups"`
	Pending        []LedgerItemResponse        `json:"pending"`
	Paid           []LedgerItemResponse        `json:"paid"`
	PendingBudgets []PendingBudgetResponse     `json:"pending_budgets"`
	Schedule       []usecase.StageStatusResult `json:"schedule"`
	Warnings       []WarningResponse           `json:"warnings,omitempty"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Project:        FromProject(d.Project),
		Summary:        d.Summary,
		Rollups:        d.Rollups,
		Pending:        FromLedgerItems(d.Pending),
		Paid:           FromLedgerItems(d.Paid),
		PendingBudgets: FromPendingBudgets(d.PendingBudgets),
		Schedule:       d.Schedule,
		Warnings:       dashboardWarnings(d),
	}
}

func dashboardWarnings(d usecase.Dashboard) []WarningResponse {
	out := make([]WarningResponse, 0, len(d.LedgerWarnings)+len(d.RollupWarnings))
	for _, w := range d.LedgerWarnings {
		out = append(out, WarningResponse{ItemOrigin: string(w.Key.Origin), ItemID: w.Key.ID, Reason: w.Reason})
	}
	for _, w := range d.RollupWarnings {
		out = append(out, WarningResponse{ItemOrigin: string(w.Key.Origin), ItemID: w.Key.ID, Reason: w.Reason})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
