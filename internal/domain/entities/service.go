package entities

import "time"

// Service is a contracted service inside a project (e.g. alvenaria, elétrica).
//
// It carries two independent budget figures (mão de obra and material), owns
// zero or more service payments and is weakly referenced by general expenses.
type Service struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	Name            string    `json:"name"`
	Responsible     string    `json:"responsible"`
	BudgetMaoDeObra float64   `json:"budget_mao_de_obra"`
	BudgetMaterial  float64   `json:"budget_material"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BudgetFor returns the budget figure for a budgeted segment (0 otherwise).
func (s Service) BudgetFor(seg Segment) float64 {
	switch seg {
	case SegmentMaoDeObra:
		return s.BudgetMaoDeObra
	case SegmentMaterial:
		return s.BudgetMaterial
	}
	return 0
}

func (s Service) TotalBudget() float64 {
	return s.BudgetMaoDeObra + s.BudgetMaterial
}
