package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound       = errors.New("pending budget not found")
	ErrBudgetAlreadyDecided = errors.New("pending budget already decided")
	ErrInvalidBudgetID      = errors.New("invalid budget id")
	ErrInvalidBudgetInput   = errors.New("invalid budget input")
)

// CreateBudgetCommand carries the fields of a new spend proposal.
type CreateBudgetCommand struct {
	ProjectID    string
	Description  string
	Supplier     string
	Amount       float64
	Segment      entities.Segment
	ServiceID    string
	Priority     int
	Observations string
	Attachments  []string
}

// IBudgetUseCase drives the pending budget (orçamento) lifecycle: created in
// aguardando_aprovacao, then either approved (materialized into a general
// expense, never mutated in place afterwards) or rejected (discarded).

type IBudgetUseCase interface {
	Create(ctx context.Context, cmd CreateBudgetCommand) (entities.PendingBudget, error)
	Approve(ctx context.Context, id string) (entities.PendingBudget, entities.GeneralExpense, error)
	Reject(ctx context.Context, id string) (entities.PendingBudget, error)
}

type BudgetUseCase struct {
	repo        interfaces.IPendingBudgetRepository
	expenseRepo interfaces.IGeneralExpenseRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IPendingBudgetRepository, expenseRepo interfaces.IGeneralExpenseRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, expenseRepo: expenseRepo}
}

func (u *BudgetUseCase) Create(ctx context.Context, cmd CreateBudgetCommand) (entities.PendingBudget, error) {
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if cmd.ProjectID == "" || cmd.Description == "" {
		return entities.PendingBudget{}, ErrInvalidBudgetInput
	}
	if cmd.Amount <= 0 || !entities.ValidSegment(cmd.Segment) || cmd.Priority < 0 || cmd.Priority > 5 {
		return entities.PendingBudget{}, ErrInvalidBudgetInput
	}

	now := time.Now().UTC()
	b := entities.PendingBudget{
		ID:           uuid.NewString(),
		ProjectID:    cmd.ProjectID,
		Description:  cmd.Description,
		Supplier:     strings.TrimSpace(cmd.Supplier),
		Amount:       cmd.Amount,
		Segment:      cmd.Segment,
		ServiceID:    strings.TrimSpace(cmd.ServiceID),
		Priority:     cmd.Priority,
		Observations: cmd.Observations,
		Attachments:  cmd.Attachments,
		Status:       entities.BudgetStatusAguardando,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, b)
}

// Approve materializes the proposal into a general expense (status a_pagar,
// nothing paid yet) and records the decision with the expense linkage.
func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.PendingBudget, entities.GeneralExpense, error) {
	b, err := u.pending(ctx, id)
	if err != nil {
		return entities.PendingBudget{}, entities.GeneralExpense{}, err
	}

	now := time.Now().UTC()
	expense := entities.GeneralExpense{
		ID:          uuid.NewString(),
		ProjectID:   b.ProjectID,
		Date:        now,
		Description: b.Description,
		Supplier:    b.Supplier,
		TotalAmount: b.Amount,
		AmountPaid:  0,
		Priority:    b.Priority,
		Segment:     b.Segment,
		Status:      entities.PayableStatusAPagar,
		ServiceID:   b.ServiceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.expenseRepo.Create(ctx, expense)
	if err != nil {
		return entities.PendingBudget{}, entities.GeneralExpense{}, err
	}

	decided, err := u.repo.UpdateDecision(ctx, b.ID, entities.BudgetStatusAprovado, created.ID)
	if err != nil {
		return entities.PendingBudget{}, entities.GeneralExpense{}, err
	}
	log.Printf("[budget][usecase] approved budget_id=%s expense_id=%s amount=%.2f", b.ID, created.ID, b.Amount)
	return decided, created, nil
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.PendingBudget, error) {
	b, err := u.pending(ctx, id)
	if err != nil {
		return entities.PendingBudget{}, err
	}

	decided, err := u.repo.UpdateDecision(ctx, b.ID, entities.BudgetStatusRejeitado, "")
	if err != nil {
		return entities.PendingBudget{}, err
	}
	log.Printf("[budget][usecase] rejected budget_id=%s", b.ID)
	return decided, nil
}

func (u *BudgetUseCase) pending(ctx context.Context, id string) (entities.PendingBudget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PendingBudget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PendingBudget{}, err
	}
	if b.ID == "" {
		return entities.PendingBudget{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusAguardando {
		return entities.PendingBudget{}, ErrBudgetAlreadyDecided
	}
	return b, nil
}
