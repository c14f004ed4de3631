package handlers

import (
	"errors"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRecordPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)

// RecordHandler registers the raw records the derivation engines run over.

type RecordHandler struct {
	usecase usecase.IRecordUseCase
}

func NewRecordHandler(uc usecase.IRecordUseCase) *RecordHandler {
	return &RecordHandler{usecase: uc}
}

func (h *RecordHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateProject(c.Request.Context(), payload.Name, payload.Client)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *RecordHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.CreateService(c.Request.Context(), c.Param("project_id"), payload.Name, payload.Responsible, payload.BudgetMaoDeObra, payload.BudgetMaterial)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

func (h *RecordHandler) CreateExpense(c *gin.Context) {
	var payload request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand(c.Param("project_id"))
	if err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.CreateExpense(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromGeneralExpense(e))
}

func (h *RecordHandler) CreateServicePayment(c *gin.Context) {
	var payload request.CreateServicePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand(c.Param("service_id"))
	if err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.RegisterServicePayment(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromServicePayment(p))
}

// ReleaseExpense queues the expense for payment (status liberado).
func (h *RecordHandler) ReleaseExpense(c *gin.Context) {
	e, err := h.usecase.ReleaseExpense(c.Request.Context(), c.Param("expense_id"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGeneralExpense(e))
}

func (h *RecordHandler) UpdateExpensePriority(c *gin.Context) {
	var payload request.UpdateExpensePriorityRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Priority == nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.UpdateExpensePriority(c.Request.Context(), c.Param("expense_id"), *payload.Priority)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGeneralExpense(e))
}

func (h *RecordHandler) CreateStage(c *gin.Context) {
	var payload request.CreateStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand(c.Param("project_id"))
	if err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.CreateStage(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromScheduleStage(s))
}

func (h *RecordHandler) UpdateStageProgress(c *gin.Context) {
	var payload request.UpdateStageProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateStageProgress(c.Request.Context(), c.Param("stage_id"), payload.CompletionPct, payload.ExecutedQty)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleStage(s))
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordInput), errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "General expense not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Schedule stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusChange):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_CHANGE", "Invalid status transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
