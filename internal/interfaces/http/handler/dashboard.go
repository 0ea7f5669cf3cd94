package handler

import (
	analyticsapp "github.com/backoffice/analytics/internal/application/analytics"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard API endpoints
type DashboardHandler struct {
	BaseHandler
	analyticsService *analyticsapp.AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(analyticsService *analyticsapp.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analyticsService,
	}
}

// GetStats returns month-to-date dashboard metrics with percentage change
// against the previous calendar month.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	stats, err := h.analyticsService.DashboardStats(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
