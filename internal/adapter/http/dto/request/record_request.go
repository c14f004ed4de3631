package request

import (
	"errors"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date")

// parseDate accepts the short form (2006-01-02) or full RFC 3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

// CreateProjectRequest registers a construction project.
type CreateProjectRequest struct {
	Name   string `json:"name" binding:"required"`
	Client string `json:"client"`
}

// CreateServiceRequest registers a contracted service inside a project.
type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Responsible     string  `json:"responsible"`
	BudgetMaoDeObra float64 `json:"budget_mao_de_obra"`
	BudgetMaterial  float64 `json:"budget_material"`
}

// CreateExpenseRequest registers a general expense.
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Supplier    string  `json:"supplier"`
	TotalAmount float64 `json:"total_amount" binding:"required"`
	Priority    int     `json:"priority"`
	Segment     string  `json:"segment" binding:"required"`
	ServiceID   string  `json:"service_id"`
}

func (r CreateExpenseRequest) ToCommand(projectID string) (usecase.CreateExpenseCommand, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.CreateExpenseCommand{}, err
	}
	return usecase.CreateExpenseCommand{
		ProjectID:   projectID,
		Date:        date,
		Description: r.Description,
		Supplier:    r.Supplier,
		TotalAmount: r.TotalAmount,
		Priority:    r.Priority,
		Segment:     entities.Segment(r.Segment),
		ServiceID:   r.ServiceID,
	}, nil
}

// CreateServicePaymentRequest registers a payment obligation for a service.
type CreateServicePaymentRequest struct {
	Date        string  `json:"date" binding:"required"`
	Supplier    string  `json:"supplier"`
	TotalAmount float64 `json:"total_amount" binding:"required"`
	Segment     string  `json:"segment" binding:"required"`
	Priority    int     `json:"priority"`
}

func (r CreateServicePaymentRequest) ToCommand(serviceID string) (usecase.CreateServicePaymentCommand, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.CreateServicePaymentCommand{}, err
	}
	return usecase.CreateServicePaymentCommand{
		ServiceID:   serviceID,
		Date:        date,
		Supplier:    r.Supplier,
		TotalAmount: r.TotalAmount,
		Segment:     entities.Segment(r.Segment),
		Priority:    r.Priority,
	}, nil
}

// CreateStageRequest registers a schedule stage. Planned dates are optional;
// a stage without them surfaces as NO_DATE until they are filled in.
type CreateStageRequest struct {
	Name           string  `json:"name" binding:"required"`
	OrderIndex     int     `json:"order_index"`
	Mode           string  `json:"mode" binding:"required"`
	PlannedStart   string  `json:"planned_start"`
	PlannedEnd     string  `json:"planned_end"`
	TotalQty       float64 `json:"total_qty"`
	BudgetedAmount float64 `json:"budgeted_amount"`
}

func (r CreateStageRequest) ToCommand(projectID string) (usecase.CreateStageCommand, error) {
	cmd := usecase.CreateStageCommand{
		ProjectID:      projectID,
		Name:           r.Name,
		OrderIndex:     r.OrderIndex,
		Mode:           entities.MeasurementMode(r.Mode),
		TotalQty:       r.TotalQty,
		BudgetedAmount: r.BudgetedAmount,
	}
	if strings.TrimSpace(r.PlannedStart) != "" {
		start, err := parseDate(r.PlannedStart)
		if err != nil {
			return usecase.CreateStageCommand{}, err
		}
		cmd.PlannedStart = start
	}
	if strings.TrimSpace(r.PlannedEnd) != "" {
		end, err := parseDate(r.PlannedEnd)
		if err != nil {
			return usecase.CreateStageCommand{}, err
		}
		cmd.PlannedEnd = end
	}
	return cmd, nil
}

// UpdateStageProgressRequest records execution progress. Which field is read
// depends on the stage's measurement mode.
type UpdateStageProgressRequest struct {
	CompletionPct float64 `json:"completion_pct"`
	ExecutedQty   float64 `json:"executed_qty"`
}

// UpdateExpensePriorityRequest changes an expense's payment priority.
type UpdateExpensePriorityRequest struct {
	Priority *int `json:"priority" binding:"required"`
}
