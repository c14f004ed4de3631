package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"
	"construtora_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathPayments = "/payments"
	PathBudgets  = "/budgets"
	PathExpenses = "/expenses"
	PathServices = "/services"
	PathStages   = "/stages"
)

func addObraRoutes(
	rg *gin.RouterGroup,
	dashboardHandler *handlers.DashboardHandler,
	paymentHandler *handlers.PaymentHandler,
	budgetHandler *handlers.BudgetHandler,
	recordHandler *handlers.RecordHandler,
) {
	session := middleware.RequireSession()

	projects := rg.Group(PathProjects)
	{
		// Derived read views: recomputed per request from a fresh snapshot.
		projects.GET("/:project_id/dashboard", dashboardHandler.GetDashboard)
		projects.GET("/:project_id/ledger", dashboardHandler.GetLedger)
		projects.GET("/:project_id/summary", dashboardHandler.GetSummary)
		projects.GET("/:project_id/rollups", dashboardHandler.GetRollups)
		projects.GET("/:project_id/schedule", dashboardHandler.GetSchedule)

		projects.POST("", session, recordHandler.CreateProject)
		projects.POST("/:project_id/services", session, recordHandler.CreateService)
		projects.POST("/:project_id/expenses", session, recordHandler.CreateExpense)
		projects.POST("/:project_id/budgets", session, budgetHandler.CreateBudget)
		projects.POST("/:project_id/stages", session, recordHandler.CreateStage)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/apply", session, paymentHandler.ApplyPayment)
		payments.POST("/settle", session, paymentHandler.SettleItem)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.PATCH("/:budget_id/approve", session, budgetHandler.ApproveBudget)
		budgets.PATCH("/:budget_id/reject", session, budgetHandler.RejectBudget)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.PATCH("/:expense_id/release", session, recordHandler.ReleaseExpense)
		expenses.PATCH("/:expense_id/priority", session, recordHandler.UpdateExpensePriority)
	}

	services := rg.Group(PathServices)
	{
		services.POST("/:service_id/payments", session, recordHandler.CreateServicePayment)
	}

	stages := rg.Group(PathStages)
	{
		stages.PATCH("/:stage_id/progress", session, recordHandler.UpdateStageProgress)
	}
}
