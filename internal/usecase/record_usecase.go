package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrExpenseNotFound     = errors.New("general expense not found")
	ErrStageNotFound       = errors.New("schedule stage not found")
	ErrInvalidRecordInput  = errors.New("invalid record input")
	ErrInvalidStatusChange = errors.New("invalid status transition")
)

// CreateExpenseCommand carries a new general expense registration.
type CreateExpenseCommand struct {
	ProjectID   string
	Date        time.Time
	Description string
	Supplier    string
	TotalAmount float64
	Priority    int
	Segment     entities.Segment
	ServiceID   string
}

// CreateServicePaymentCommand carries a new service payment registration.
type CreateServicePaymentCommand struct {
	ServiceID   string
	Date        time.Time
	Supplier    string
	TotalAmount float64
	Segment     entities.Segment
	Priority    int
}

// CreateStageCommand carries a new schedule stage registration.
type CreateStageCommand struct {
	ProjectID      string
	Name           string
	OrderIndex     int
	Mode           entities.MeasurementMode
	PlannedStart   time.Time
	PlannedEnd     time.Time
	TotalQty       float64
	BudgetedAmount float64
}

// IRecordUseCase registers the raw records the derivation engines run over:
// projects, services, service payments, general expenses and schedule stages.
// All registrations are remote mutations followed by a snapshot refetch on
// the next project view.

type IRecordUseCase interface {
	CreateProject(ctx context.Context, name, client string) (entities.Project, error)
	CreateService(ctx context.Context, projectID, name, responsible string, budgetMaoDeObra, budgetMaterial float64) (entities.Service, error)
	CreateExpense(ctx context.Context, cmd CreateExpenseCommand) (entities.GeneralExpense, error)
	RegisterServicePayment(ctx context.Context, cmd CreateServicePaymentCommand) (entities.ServicePayment, error)
	ReleaseExpense(ctx context.Context, id string) (entities.GeneralExpense, error)
	UpdateExpensePriority(ctx context.Context, id string, priority int) (entities.GeneralExpense, error)
	CreateStage(ctx context.Context, cmd CreateStageCommand) (entities.ScheduleStage, error)
	UpdateStageProgress(ctx context.Context, id string, completionPct, executedQty float64) (entities.ScheduleStage, error)
}

type RecordUseCase struct {
	projectRepo interfaces.IProjectRepository
	serviceRepo interfaces.IServiceRepository
	expenseRepo interfaces.IGeneralExpenseRepository
	paymentRepo interfaces.IServicePaymentRepository
	stageRepo   interfaces.IScheduleStageRepository
}

var _ IRecordUseCase = (*RecordUseCase)(nil)

func NewRecordUseCase(
	projectRepo interfaces.IProjectRepository,
	serviceRepo interfaces.IServiceRepository,
	expenseRepo interfaces.IGeneralExpenseRepository,
	paymentRepo interfaces.IServicePaymentRepository,
	stageRepo interfaces.IScheduleStageRepository,
) *RecordUseCase {
	return &RecordUseCase{
		projectRepo: projectRepo,
		serviceRepo: serviceRepo,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		stageRepo:   stageRepo,
	}
}

func (u *RecordUseCase) CreateProject(ctx context.Context, name, client string) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidRecordInput
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Client:    strings.TrimSpace(client),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.projectRepo.Create(ctx, p)
}

func (u *RecordUseCase) CreateService(ctx context.Context, projectID, name, responsible string, budgetMaoDeObra, budgetMaterial float64) (entities.Service, error) {
	projectID = strings.TrimSpace(projectID)
	name = strings.TrimSpace(name)
	if projectID == "" || name == "" || budgetMaoDeObra < 0 || budgetMaterial < 0 {
		return entities.Service{}, ErrInvalidRecordInput
	}
	if err := u.requireProject(ctx, projectID); err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:              uuid.NewString(),
		ProjectID:       projectID,
		Name:            name,
		Responsible:     strings.TrimSpace(responsible),
		BudgetMaoDeObra: budgetMaoDeObra,
		BudgetMaterial:  budgetMaterial,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.serviceRepo.Create(ctx, s)
}

func (u *RecordUseCase) CreateExpense(ctx context.Context, cmd CreateExpenseCommand) (entities.GeneralExpense, error) {
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if cmd.ProjectID == "" || cmd.Description == "" || cmd.Date.IsZero() {
		return entities.GeneralExpense{}, ErrInvalidRecordInput
	}
	if cmd.TotalAmount <= 0 || !entities.ValidSegment(cmd.Segment) || cmd.Priority < 0 || cmd.Priority > 5 {
		return entities.GeneralExpense{}, ErrInvalidRecordInput
	}
	if err := u.requireProject(ctx, cmd.ProjectID); err != nil {
		return entities.GeneralExpense{}, err
	}
	if cmd.ServiceID != "" {
		if _, err := u.requireService(ctx, cmd.ServiceID); err != nil {
			return entities.GeneralExpense{}, err
		}
	}

	now := time.Now().UTC()
	e := entities.GeneralExpense{
		ID:          uuid.NewString(),
		ProjectID:   cmd.ProjectID,
		Date:        cmd.Date,
		Description: cmd.Description,
		Supplier:    strings.TrimSpace(cmd.Supplier),
		TotalAmount: cmd.TotalAmount,
		AmountPaid:  0,
		Priority:    cmd.Priority,
		Segment:     cmd.Segment,
		Status:      entities.PayableStatusAPagar,
		ServiceID:   strings.TrimSpace(cmd.ServiceID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.expenseRepo.Create(ctx, e)
}

// RegisterServicePayment creates a payment obligation owned by a service.
// The description is derived from the service, not caller-provided.
func (u *RecordUseCase) RegisterServicePayment(ctx context.Context, cmd CreateServicePaymentCommand) (entities.ServicePayment, error) {
	cmd.ServiceID = strings.TrimSpace(cmd.ServiceID)
	if cmd.ServiceID == "" || cmd.Date.IsZero() || cmd.TotalAmount <= 0 {
		return entities.ServicePayment{}, ErrInvalidRecordInput
	}
	if !entities.BudgetedSegment(cmd.Segment) || cmd.Priority < 0 || cmd.Priority > 5 {
		return entities.ServicePayment{}, ErrInvalidRecordInput
	}

	svc, err := u.requireService(ctx, cmd.ServiceID)
	if err != nil {
		return entities.ServicePayment{}, err
	}

	now := time.Now().UTC()
	p := entities.ServicePayment{
		ID:          uuid.NewString(),
		ProjectID:   svc.ProjectID,
		ServiceID:   svc.ID,
		Date:        cmd.Date,
		Description: "Pagamento de servico: " + svc.Name,
		Supplier:    strings.TrimSpace(cmd.Supplier),
		TotalAmount: cmd.TotalAmount,
		AmountPaid:  0,
		Segment:     cmd.Segment,
		Priority:    cmd.Priority,
		Status:      entities.PayableStatusAPagar,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.paymentRepo.Create(ctx, p)
}

// ReleaseExpense queues an unsettled expense for payment (status liberado).
func (u *RecordUseCase) ReleaseExpense(ctx context.Context, id string) (entities.GeneralExpense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.GeneralExpense{}, ErrInvalidRecordInput
	}

	e, err := u.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return entities.GeneralExpense{}, err
	}
	if e.ID == "" {
		return entities.GeneralExpense{}, ErrExpenseNotFound
	}
	if e.Status == entities.PayableStatusPago {
		return entities.GeneralExpense{}, ErrInvalidStatusChange
	}
	return u.expenseRepo.UpdatePaid(ctx, e.ID, e.AmountPaid, entities.PayableStatusLiberado)
}

func (u *RecordUseCase) UpdateExpensePriority(ctx context.Context, id string, priority int) (entities.GeneralExpense, error) {
	id = strings.TrimSpace(id)
	if id == "" || priority < 0 || priority > 5 {
		return entities.GeneralExpense{}, ErrInvalidRecordInput
	}

	e, err := u.expenseRepo.UpdatePriority(ctx, id, priority)
	if err != nil {
		return entities.GeneralExpense{}, err
	}
	if e.ID == "" {
		return entities.GeneralExpense{}, ErrExpenseNotFound
	}
	return e, nil
}

func (u *RecordUseCase) CreateStage(ctx context.Context, cmd CreateStageCommand) (entities.ScheduleStage, error) {
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.ProjectID == "" || cmd.Name == "" || !entities.ValidMeasurementMode(cmd.Mode) {
		return entities.ScheduleStage{}, ErrInvalidRecordInput
	}
	if cmd.BudgetedAmount < 0 || cmd.TotalQty < 0 {
		return entities.ScheduleStage{}, ErrInvalidRecordInput
	}
	if cmd.Mode == entities.MeasurementAreaQuantity && cmd.TotalQty <= 0 {
		return entities.ScheduleStage{}, ErrInvalidRecordInput
	}
	if err := u.requireProject(ctx, cmd.ProjectID); err != nil {
		return entities.ScheduleStage{}, err
	}

	now := time.Now().UTC()
	s := entities.ScheduleStage{
		ID:             uuid.NewString(),
		ProjectID:      cmd.ProjectID,
		Name:           cmd.Name,
		OrderIndex:     cmd.OrderIndex,
		Mode:           cmd.Mode,
		PlannedStart:   cmd.PlannedStart,
		PlannedEnd:     cmd.PlannedEnd,
		TotalQty:       cmd.TotalQty,
		BudgetedAmount: cmd.BudgetedAmount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.stageRepo.Create(ctx, s)
}

// UpdateStageProgress records execution progress according to the stage's
// measurement mode: manual stages take completionPct directly (clamped),
// area-quantity stages take executedQty and derive the percentage.
func (u *RecordUseCase) UpdateStageProgress(ctx context.Context, id string, completionPct, executedQty float64) (entities.ScheduleStage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ScheduleStage{}, ErrInvalidRecordInput
	}

	st, err := u.stageRepo.GetByID(ctx, id)
	if err != nil {
		return entities.ScheduleStage{}, err
	}
	if st.ID == "" {
		return entities.ScheduleStage{}, ErrStageNotFound
	}

	switch st.Mode {
	case entities.MeasurementAreaQuantity:
		if executedQty < 0 {
			return entities.ScheduleStage{}, ErrInvalidRecordInput
		}
		st.ExecutedQty = executedQty
		st.CompletionPct = st.EffectiveCompletionPct()
	default:
		st.CompletionPct = entities.ClampPct(completionPct)
	}
	return u.stageRepo.UpdateProgress(ctx, st.ID, st.CompletionPct, st.ExecutedQty)
}

func (u *RecordUseCase) requireProject(ctx context.Context, id string) error {
	p, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProjectNotFound
	}
	return nil
}

func (u *RecordUseCase) requireService(ctx context.Context, id string) (entities.Service, error) {
	s, err := u.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}
