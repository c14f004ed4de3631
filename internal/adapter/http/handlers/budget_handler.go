package handlers

import (
	"errors"
	"log"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler drives the pending budget approval workflow.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(c.Param("project_id")))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPendingBudget(b))
}

// ApproveBudget materializes the proposal into a general expense.
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	budgetID := c.Param("budget_id")
	log.Printf("[budget][handler] approve start budget_id=%s", budgetID)

	b, expense, err := h.usecase.Approve(c.Request.Context(), budgetID)
	if err != nil {
		log.Printf("[budget][handler] approve failed budget_id=%s err=%v", budgetID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	expenseResp := response.FromGeneralExpense(expense)
	c.JSON(http.StatusOK, response.BudgetDecisionResponse{
		Budget:  response.FromPendingBudget(b),
		Expense: &expenseResp,
	})
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	budgetID := c.Param("budget_id")
	log.Printf("[budget][handler] reject start budget_id=%s", budgetID)

	b, err := h.usecase.Reject(c.Request.Context(), budgetID)
	if err != nil {
		log.Printf("[budget][handler] reject failed budget_id=%s err=%v", budgetID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BudgetDecisionResponse{
		Budget: response.FromPendingBudget(b),
	})
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetInput), errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Pending budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetAlreadyDecided):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_DECIDED", "Pending budget already decided", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
