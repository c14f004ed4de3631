package request

import (
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"
)

// CreateBudgetRequest registers a spend proposal for approval.
type CreateBudgetRequest struct {
	Description  string   `json:"description" binding:"required"`
	Supplier     string   `json:"supplier"`
	Amount       float64  `json:"amount" binding:"required"`
	Segment      string   `json:"segment" binding:"required"`
	ServiceID    string   `json:"service_id"`
	Priority     int      `json:"priority"`
	Observations string   `json:"observations"`
	Attachments  []string `json:"attachments"`
}

func (r CreateBudgetRequest) ToCommand(projectID string) usecase.CreateBudgetCommand {
	return usecase.CreateBudgetCommand{
		ProjectID:    projectID,
		Description:  r.Description,
		Supplier:     r.Supplier,
		Amount:       r.Amount,
		Segment:      entities.Segment(r.Segment),
		ServiceID:    r.ServiceID,
		Priority:     r.Priority,
		Observations: r.Observations,
		Attachments:  r.Attachments,
	}
}
