package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type ProjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Client:    p.Client,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type ServiceResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	Name            string    `json:"name"`
	Responsible     string    `json:"responsible,omitempty"`
	BudgetMaoDeObra float64   `json:"budget_mao_de_obra"`
	BudgetMaterial  float64   `json:"budget_material"`
	TotalBudget     float64   `json:"total_budget"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		ProjectID:       s.ProjectID,
		Name:            s.Name,
		Responsible:     s.Responsible,
		BudgetMaoDeObra: s.BudgetMaoDeObra,
		BudgetMaterial:  s.BudgetMaterial,
		TotalBudget:     s.TotalBudget(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type GeneralExpenseResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Supplier    string    `json:"supplier,omitempty"`
	TotalAmount float64   `json:"total_amount"`
	AmountPaid  float64   `json:"amount_paid"`
	Outstanding float64   `json:"outstanding"`
	Priority    int       `json:"priority"`
	Segment     string    `json:"segment"`
	Status      string    `json:"status"`
	ServiceID   string    `json:"service_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromGeneralExpense(e entities.GeneralExpense) GeneralExpenseResponse {
	return GeneralExpenseResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Date:        e.Date,
		Description: e.Description,
		Supplier:    e.Supplier,
		TotalAmount: e.TotalAmount,
		AmountPaid:  e.AmountPaid,
		Outstanding: e.Outstanding(),
		Priority:    e.Priority,
		Segment:     string(e.Segment),
		Status:      string(e.Status),
		ServiceID:   e.ServiceID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type ServicePaymentResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ServiceID   string    `json:"service_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Supplier    string    `json:"supplier,omitempty"`
	TotalAmount float64   `json:"total_amount"`
	AmountPaid  float64   `json:"amount_paid"`
	Outstanding float64   `json:"outstanding"`
	Segment     string    `json:"segment"`
	Priority    int       `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromServicePayment(p entities.ServicePayment) ServicePaymentResponse {
	return ServicePaymentResponse{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		ServiceID:   p.ServiceID,
		Date:        p.Date,
		Description: p.Description,
		Supplier:    p.Supplier,
		TotalAmount: p.TotalAmount,
		AmountPaid:  p.AmountPaid,
		Outstanding: p.Outstanding(),
		Segment:     string(p.Segment),
		Priority:    p.Priority,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ScheduleStageResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	Name           string    `json:"name"`
	OrderIndex     int       `json:"order_index"`
	Mode           string    `json:"mode"`
	PlannedStart   time.Time `json:"planned_start,omitempty"`
	PlannedEnd     time.Time `json:"planned_end,omitempty"`
	CompletionPct  float64   `json:"completion_pct"`
	ExecutedQty    float64   `json:"executed_qty"`
	TotalQty       float64   `json:"total_qty"`
	BudgetedAmount float64   `json:"budgeted_amount"`
	AmountPaid     float64   `json:"amount_paid"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromScheduleStage(s entities.ScheduleStage) ScheduleStageResponse {
	return ScheduleStageResponse{
		ID:             s.ID,
		ProjectID:      s.ProjectID,
		Name:           s.Name,
		OrderIndex:     s.OrderIndex,
		Mode:           string(s.Mode),
		PlannedStart:   s.PlannedStart,
		PlannedEnd:     s.PlannedEnd,
		CompletionPct:  s.EffectiveCompletionPct(),
		ExecutedQty:    s.ExecutedQty,
		TotalQty:       s.TotalQty,
		BudgetedAmount: s.BudgetedAmount,
		AmountPaid:     s.AmountPaid,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
