package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IGeneralExpenseRepository abstracts DynamoDB persistence for GeneralExpense.
//
// The payment engine must be able to:
//   - resolve an expense by id when routing a ledger mutation
//   - persist a new paid amount together with the resulting status
//   - adjust priority (release-for-payment queueing)

type IGeneralExpenseRepository interface {
	Create(ctx context.Context, e entities.GeneralExpense) (entities.GeneralExpense, error)
	GetByID(ctx context.Context, id string) (entities.GeneralExpense, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.GeneralExpense, error)
	UpdatePaid(ctx context.Context, id string, amountPaid float64, status entities.PayableStatus) (entities.GeneralExpense, error)
	UpdatePriority(ctx context.Context, id string, priority int) (entities.GeneralExpense, error)
}
