package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type PendingBudgetResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Description  string    `json:"description"`
	Supplier     string    `json:"supplier,omitempty"`
	Amount       float64   `json:"amount"`
	Segment      string    `json:"segment"`
	ServiceID    string    `json:"service_id,omitempty"`
	Priority     int       `json:"priority"`
	Observations string    `json:"observations,omitempty"`
	Attachments  []string  `json:"attachments,omitempty"`
	Status       string    `json:"status"`
	ExpenseID    string    `json:"expense_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPendingBudget(b entities.PendingBudget) PendingBudgetResponse {
	return PendingBudgetResponse{
		ID:           b.ID,
		ProjectID:    b.ProjectID,
		Description:  b.Description,
		Supplier:     b.Supplier,
		Amount:       b.Amount,
		Segment:      string(b.Segment),
		ServiceID:    b.ServiceID,
		Priority:     b.Priority,
		Observations: b.Observations,
		Attachments:  b.Attachments,
		Status:       string(b.Status),
		ExpenseID:    b.ExpenseID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func FromPendingBudgets(budgets []entities.PendingBudget) []PendingBudgetResponse {
	out := make([]PendingBudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromPendingBudget(b))
	}
	return out
}

// BudgetDecisionResponse is returned on approval: the decided proposal plus
// the general expense it materialized into.
type BudgetDecisionResponse struct {
	Budget  PendingBudgetResponse   `json:"budget"`
	Expense *GeneralExpenseResponse `json:"expense,omitempty"`
}
