package entities

import "time"

// BudgetStatus represents the pending budget (orçamento) decision lifecycle.
//
//   - aguardando_aprovacao: created, waiting for a decision
//   - aprovado: materialized into a general expense; never mutated afterwards
//   - rejeitado: discarded

type BudgetStatus string

const (
	BudgetStatusAguardando BudgetStatus = "aguardando_aprovacao"
	BudgetStatusAprovado   BudgetStatus = "aprovado"
	BudgetStatusRejeitado  BudgetStatus = "rejeitado"
)

// PendingBudget is a spend proposal awaiting approval.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// ExpenseID links to the general expense created on approval, for audit.
type PendingBudget struct {
	ID           string       `json:"id"`
	ProjectID    string       `json:"project_id"`
	Description  string       `json:"description"`
	Supplier     string       `json:"supplier,omitempty"`
	Amount       float64      `json:"amount"`
	Segment      Segment      `json:"segment"`
	ServiceID    string       `json:"service_id,omitempty"`
	Priority     int          `json:"priority"`
	Observations string       `json:"observations,omitempty"`
	Attachments  []string     `json:"attachments,omitempty"`
	Status       BudgetStatus `json:"status"`
	ExpenseID    string       `json:"expense_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
