package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IPendingBudgetRepository abstracts DynamoDB persistence for PendingBudget.
//
// UpdateDecision records the approve/reject outcome; expenseID carries the
// materialized general expense on approval ("" on rejection).

type IPendingBudgetRepository interface {
	Create(ctx context.Context, b entities.PendingBudget) (entities.PendingBudget, error)
	GetByID(ctx context.Context, id string) (entities.PendingBudget, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.PendingBudget, error)
	UpdateDecision(ctx context.Context, id string, status entities.BudgetStatus, expenseID string) (entities.PendingBudget, error)
}
