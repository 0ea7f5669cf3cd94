package handler

import (
	analyticsapp "github.com/backoffice/analytics/internal/application/analytics"
	"github.com/backoffice/analytics/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles analytics API endpoints
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *analyticsapp.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *analyticsapp.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetOverview returns aggregated order, campaign and customer metrics for a
// date window. Both bounds default to the last 30 days when omitted.
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req dto.OverviewQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	overview, err := h.analyticsService.Overview(c.Request.Context(), tenantID, req.StartDate, req.EndDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, overview)
}

// GetRevenueTrend returns revenue bucketed by day, week, month or year.
func (h *AnalyticsHandler) GetRevenueTrend(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req dto.RevenueTrendQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	trend, err := h.analyticsService.RevenueTrend(c.Request.Context(), tenantID, req.Period, req.StartDate, req.EndDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trend)
}

// GetOrderTrends returns order counts per status bucketed by day or hour
// over the last N days.
func (h *AnalyticsHandler) GetOrderTrends(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req dto.OrderTrendsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	trends, err := h.analyticsService.OrderTrends(c.Request.Context(), tenantID, req.Period, req.Days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trends)
}

// GetTopPerformers returns the top stores or delivery companies ranked by
// revenue.
func (h *AnalyticsHandler) GetTopPerformers(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req dto.TopPerformersQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	performers, err := h.analyticsService.TopPerformers(
		c.Request.Context(), tenantID, req.Type, req.StartDate, req.EndDate, req.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, performers)
}

// GetConversionFunnel returns order progression through the funnel stages.
func (h *AnalyticsHandler) GetConversionFunnel(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	funnel, err := h.analyticsService.ConversionFunnel(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, funnel)
}

// GetCustomerLTV returns customer lifetime value metrics and the top
// customers by revenue.
func (h *AnalyticsHandler) GetCustomerLTV(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	ltv, err := h.analyticsService.CustomerLTV(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ltv)
}
