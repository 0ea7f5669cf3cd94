package analytics

// Response shapes for the report endpoints. Field names are part of the
// dashboard contract and must not change.

// OverviewResponse is the payload of GET /analytics/overview.
type OverviewResponse struct {
	Analytics OverviewAnalytics `json:"analytics"`
	Period    PeriodInfo        `json:"period"`
}

// OverviewAnalytics aggregates orders, users and campaigns for the window.
type OverviewAnalytics struct {
	Orders            OrdersOverview    `json:"orders"`
	Users             UsersOverview     `json:"users"`
	Campaigns         CampaignsOverview `json:"campaigns"`
	AvgOpenRate       float64           `json:"avgOpenRate"`
	AvgConversionRate float64           `json:"avgConversionRate"`
}

// OrdersOverview summarizes orders in the window.
type OrdersOverview struct {
	Total        int64          `json:"total"`
	Revenue      float64        `json:"revenue"`
	AverageValue float64        `json:"average_value"`
	ByStatus     OrdersByStatus `json:"by_status"`
}

// OrdersByStatus is the labeled status breakdown of the overview.
type OrdersByStatus struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
}

// UsersOverview summarizes users in the window.
type UsersOverview struct {
	NewUsers   int64 `json:"new_users"`
	TotalUsers int64 `json:"total_users"`
}

// CampaignsOverview summarizes campaigns in the window.
type CampaignsOverview struct {
	Total           int64 `json:"total"`
	Sent            int64 `json:"sent"`
	TotalRecipients int64 `json:"total_recipients"`
	TotalOpens      int64 `json:"total_opens"`
	TotalClicks     int64 `json:"total_clicks"`
}

// PeriodInfo echoes the resolved reporting window.
type PeriodInfo struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// RevenueTrendResponse is the payload of GET /analytics/revenue.
type RevenueTrendResponse struct {
	Revenue []RevenuePoint `json:"revenue"`
}

// RevenuePoint is one bucket of the revenue trend, ascending by period key.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// OrderTrendsResponse is the payload of GET /analytics/orders/trends.
type OrderTrendsResponse struct {
	Trends []OrderTrendPoint `json:"trends"`
}

// OrderTrendPoint is one bucket of the order trend with its labeled status
// breakdown. Total includes orders whose status is outside the labeled set.
type OrderTrendPoint struct {
	Period     string `json:"period"`
	Total      int64  `json:"total"`
	Pending    int64  `json:"pending"`
	Processing int64  `json:"processing"`
	Delivered  int64  `json:"delivered"`
	Cancelled  int64  `json:"cancelled"`
}

// TopPerformersResponse is the payload of GET /analytics/top-performers.
// Entries are StorePerformer or DeliveryPerformer depending on type.
type TopPerformersResponse struct {
	TopPerformers any `json:"top_performers"`
}

// StorePerformer is a leaderboard row for type=stores.
type StorePerformer struct {
	StoreID      string  `json:"store_id"`
	StoreName    string  `json:"store_name"`
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DeliveryPerformer is a leaderboard row for type=delivery.
type DeliveryPerformer struct {
	DeliveryID   string  `json:"delivery_id"`
	DeliveryName string  `json:"delivery_name"`
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// FunnelResponse is the payload of GET /analytics/conversion-funnel.
type FunnelResponse struct {
	Funnel FunnelBreakdown `json:"funnel"`
	Total  int64           `json:"total"`
}

// FunnelBreakdown keeps the fixed status vocabulary in funnel order.
type FunnelBreakdown struct {
	Pending    FunnelStage `json:"pending"`
	Processing FunnelStage `json:"processing"`
	Delivered  FunnelStage `json:"delivered"`
	Cancelled  FunnelStage `json:"cancelled"`
}

// FunnelStage is one band of the funnel.
type FunnelStage struct {
	Count int64   `json:"count"`
	Rate  float64 `json:"rate"`
}

// CustomerLTVResponse is the payload of GET /analytics/customer-ltv.
type CustomerLTVResponse struct {
	AverageLTV     float64       `json:"average_ltv"`
	TotalCustomers int64         `json:"total_customers"`
	TopCustomers   []TopCustomer `json:"top_customers"`
}

// TopCustomer is a lifetime-value leaderboard row.
type TopCustomer struct {
	CustomerID  string  `json:"customer_id"`
	TotalOrders int64   `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
}

// DashboardStatsResponse is the payload of GET /dashboard/stats.
type DashboardStatsResponse struct {
	Stats DashboardStats `json:"stats"`
}

// DashboardStats compares month-to-date metrics against the prior month.
type DashboardStats struct {
	TotalOrders     MetricWithChange `json:"totalOrders"`
	RefusedOrders   MetricWithChange `json:"refusedOrders"`
	Revenue         MetricWithChange `json:"revenue"`
	ActiveCustomers MetricWithChange `json:"activeCustomers"`
	CampaignsSent   MetricWithChange `json:"campaignsSent"`
	ConversionRate  MetricWithChange `json:"conversionRate"`
	AvgOrderValue   MetricWithChange `json:"avgOrderValue"`
}

// MetricWithChange pairs a metric value with its signed percentage change
// against the prior period, rounded to 1 decimal.
type MetricWithChange struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}
