package entities

import "time"

// Project is a construction project (obra). It owns services, ledger records,
// pending budgets and schedule stages; every aggregate over them is computed
// on read, never stored.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectSnapshot is the full record set one derivation pass runs over.
//
// It is fetched once at the start of a project view; the engines are pure
// functions over it and never patch it in place. After any remote mutation
// the caller refetches a fresh snapshot (last-write-wins consistency).
type ProjectSnapshot struct {
	Project         Project          `json:"project"`
	Services        []Service        `json:"services"`
	GeneralExpenses []GeneralExpense `json:"general_expenses"`
	ServicePayments []ServicePayment `json:"service_payments"`
	PendingBudgets  []PendingBudget  `json:"pending_budgets"`
	Stages          []ScheduleStage  `json:"stages"`
}
