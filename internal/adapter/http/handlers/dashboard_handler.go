package handlers

import (
	"errors"
	"net/http"

	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the derived project views: the consolidated
// dashboard plus the ledger, summary, rollup and schedule slices of it.
//
// Every view is recomputed from a fresh snapshot on each request; nothing
// derived is ever read back from storage.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.usecase.BuildDashboard(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// GetLedger returns both partitions, or a single one when the optional
// partition query param (pending|paid) is set.
func (h *DashboardHandler) GetLedger(c *gin.Context) {
	partition := c.Query("partition")
	if partition != "" && partition != "pending" && partition != "paid" {
		appErr := pkg.NewDomainErrorSimple("INVALID_PARTITION", "partition must be pending or paid", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.BuildDashboard(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.LedgerResponse{}
	if partition != "paid" {
		out.Pending = response.FromLedgerItems(d.Pending)
	}
	if partition != "pending" {
		out.Paid = response.FromLedgerItems(d.Paid)
	}
	for _, w := range d.LedgerWarnings {
		out.Warnings = append(out.Warnings, response.WarningResponse{
			ItemOrigin: string(w.Key.Origin),
			ItemID:     w.Key.ID,
			Reason:     w.Reason,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	d, err := h.usecase.BuildDashboard(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, d.Summary)
}

func (h *DashboardHandler) GetRollups(c *gin.Context) {
	d, err := h.usecase.BuildDashboard(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"rollups": d.Rollups, "warnings": d.RollupWarnings})
}

func (h *DashboardHandler) GetSchedule(c *gin.Context) {
	d, err := h.usecase.BuildDashboard(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, d.Schedule)
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
