package router

import (
	"github.com/backoffice/analytics/internal/interfaces/http/handler"
)

// AnalyticsRoutes builds the route group for the analytics report endpoints.
func AnalyticsRoutes(h *handler.AnalyticsHandler) *DomainGroup {
	return NewDomainGroup("analytics", "/analytics").
		GET("/overview", h.GetOverview).
		GET("/revenue", h.GetRevenueTrend).
		GET("/orders/trends", h.GetOrderTrends).
		GET("/top-performers", h.GetTopPerformers).
		GET("/conversion-funnel", h.GetConversionFunnel).
		GET("/customer-ltv", h.GetCustomerLTV)
}

// DashboardRoutes builds the route group for the dashboard endpoints.
func DashboardRoutes(h *handler.DashboardHandler) *DomainGroup {
	return NewDomainGroup("dashboard", "/dashboard").
		GET("/stats", h.GetStats)
}
