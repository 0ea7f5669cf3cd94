// Package analytics assembles report payloads from raw rows fetched through
// the storage gateway. The service is stateless; every report is recomputed
// from a point-in-time snapshot per request and independent fetches run
// concurrently. A failure in any fetch fails the whole report; there is no
// partial-result mode.
package analytics

import (
	"context"
	"time"

	"github.com/backoffice/analytics/internal/domain/analytics"
	"github.com/backoffice/analytics/internal/domain/shared"
	"github.com/backoffice/analytics/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService computes all report endpoints from gateway snapshots.
type AnalyticsService struct {
	orders    analytics.OrderReader
	campaigns analytics.CampaignReader
	users     analytics.UserReader
	directory analytics.Directory
	logger    *zap.Logger
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	orders analytics.OrderReader,
	campaigns analytics.CampaignReader,
	users analytics.UserReader,
	directory analytics.Directory,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		orders:    orders,
		campaigns: campaigns,
		users:     users,
		directory: directory,
		logger:    logger,
		now:       time.Now,
	}
}

// fetchOrders loads order rows, translating gateway failures into a generic
// upstream error. The cause is logged, never surfaced to the caller.
func (s *AnalyticsService) fetchOrders(ctx context.Context, tenantID uuid.UUID, period analytics.Period) ([]analytics.OrderRecord, error) {
	rows, err := s.orders.FetchOrders(ctx, tenantID, period)
	if err != nil {
		s.logger.Error("Failed to fetch orders",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
		return nil, shared.NewUpstreamError("failed to load analytics data")
	}
	return rows, nil
}

func (s *AnalyticsService) fetchCampaigns(ctx context.Context, tenantID uuid.UUID, period analytics.Period) ([]analytics.CampaignRecord, error) {
	rows, err := s.campaigns.FetchCampaigns(ctx, tenantID, period)
	if err != nil {
		s.logger.Error("Failed to fetch campaigns",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
		return nil, shared.NewUpstreamError("failed to load analytics data")
	}
	return rows, nil
}

func (s *AnalyticsService) fetchUsers(ctx context.Context, tenantID uuid.UUID) ([]analytics.UserRecord, error) {
	rows, err := s.users.FetchUsers(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to fetch users",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
		return nil, shared.NewUpstreamError("failed to load analytics data")
	}
	return rows, nil
}

// Overview computes the cross-entity overview report for the window.
// Order, user and campaign rows are fetched concurrently; the report fails
// atomically if any fetch fails.
func (s *AnalyticsService) Overview(ctx context.Context, tenantID uuid.UUID, startDate, endDate string) (*OverviewResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "overview")
	defer span.End()

	telemetry.SetAttribute(span, telemetry.SpanAttrTenantID, tenantID)

	period, err := analytics.ResolveOverviewPeriod(startDate, endDate, s.now())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var (
		orders    []analytics.OrderRecord
		campaigns []analytics.CampaignRecord
		users     []analytics.UserRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.fetchOrders(gctx, tenantID, period)
		return err
	})
	g.Go(func() error {
		var err error
		campaigns, err = s.fetchCampaigns(gctx, tenantID, period)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.fetchUsers(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrOrderCount, len(orders))

	revenue := analytics.SumRevenue(orders)
	orderCount := int64(len(orders))

	var newUsers int64
	for _, u := range users {
		if !u.CreatedAt.Before(period.Start) && !u.CreatedAt.After(period.End) {
			newUsers++
		}
	}

	var sent, recipients, opens, clicks, conversions int64
	for _, c := range campaigns {
		if c.Status == "sent" {
			sent++
		}
		recipients += analytics.NonNegative(c.RecipientsCount)
		opens += analytics.NonNegative(c.OpenedCount)
		clicks += analytics.NonNegative(c.ClickedCount)
		conversions += analytics.NonNegative(c.ConversionCount)
	}

	return &OverviewResponse{
		Analytics: OverviewAnalytics{
			Orders: OrdersOverview{
				Total:        orderCount,
				Revenue:      round2(revenue),
				AverageValue: analytics.AverageOrderValue(revenue, orderCount).InexactFloat64(),
				ByStatus: OrdersByStatus{
					Pending:    analytics.CountByStatus(orders, analytics.StatusPending),
					Processing: analytics.CountByStatus(orders, analytics.StatusProcessing),
					Delivered:  analytics.CountByStatus(orders, analytics.StatusDelivered),
					Cancelled:  analytics.CountByStatus(orders, analytics.StatusCancelled),
				},
			},
			Users: UsersOverview{
				NewUsers:   newUsers,
				TotalUsers: int64(len(users)),
			},
			Campaigns: CampaignsOverview{
				Total:           int64(len(campaigns)),
				Sent:            sent,
				TotalRecipients: recipients,
				TotalOpens:      opens,
				TotalClicks:     clicks,
			},
			AvgOpenRate:       analytics.RatePercent(opens, recipients),
			AvgConversionRate: analytics.RatePercent(conversions, recipients),
		},
		Period: PeriodInfo{
			StartDate: period.Start.Format(analytics.DateLayout),
			EndDate:   period.End.Format(analytics.DateLayout),
		},
	}, nil
}

// RevenueTrend computes revenue per bucket over the window. Granularity
// accepts day, week, month and year and defaults to day. Bucket keys are
// lexically sortable, so the series is returned in chronological order.
func (s *AnalyticsService) RevenueTrend(ctx context.Context, tenantID uuid.UUID, granularity, startDate, endDate string) (*RevenueTrendResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "revenue_trend",
		telemetry.WithAttribute(telemetry.SpanAttrTenantID, tenantID),
		telemetry.WithAttribute(telemetry.SpanAttrPeriod, granularity),
	)
	defer span.End()

	g, err := analytics.ParseGranularity(granularity,
		analytics.GranularityDay,
		analytics.GranularityWeek,
		analytics.GranularityMonth,
		analytics.GranularityYear,
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	keyFn, err := analytics.KeyFuncFor(g)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	period, err := analytics.ResolveRangePeriod(startDate, endDate, s.now())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	orders, err := s.fetchOrders(ctx, tenantID, period)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	buckets := analytics.SortedBuckets(analytics.AggregateOrders(orders, keyFn))
	telemetry.SetAttribute(span, telemetry.SpanAttrBucketCount, len(buckets))
	points := make([]RevenuePoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, RevenuePoint{
			Period:  b.Key,
			Revenue: round2(b.Revenue),
			Orders:  b.Orders,
		})
	}
	return &RevenueTrendResponse{Revenue: points}, nil
}

// OrderTrends computes order counts per bucket with a per-status breakdown.
// Granularity accepts day and hour and defaults to day.
func (s *AnalyticsService) OrderTrends(ctx context.Context, tenantID uuid.UUID, granularity string, days int) (*OrderTrendsResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "order_trends",
		telemetry.WithAttribute(telemetry.SpanAttrTenantID, tenantID),
		telemetry.WithAttribute(telemetry.SpanAttrDays, days),
	)
	defer span.End()

	g, err := analytics.ParseGranularity(granularity,
		analytics.GranularityDay,
		analytics.GranularityHour,
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	keyFn, err := analytics.KeyFuncFor(g)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	period := analytics.ResolveDaysPeriod(days, s.now())

	orders, err := s.fetchOrders(ctx, tenantID, period)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	buckets := analytics.SortedBuckets(analytics.AggregateOrders(orders, keyFn))
	points := make([]OrderTrendPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, OrderTrendPoint{
			Period:     b.Key,
			Total:      b.Orders,
			Pending:    b.StatusCounts[analytics.StatusPending],
			Processing: b.StatusCounts[analytics.StatusProcessing],
			Delivered:  b.StatusCounts[analytics.StatusDelivered],
			Cancelled:  b.StatusCounts[analytics.StatusCancelled],
		})
	}
	return &OrderTrendsResponse{Trends: points}, nil
}

// TopPerformers ranks stores or delivery companies by total revenue over the
// window. Ties on revenue break by ascending entity id so repeated calls over
// the same data return the same order.
func (s *AnalyticsService) TopPerformers(ctx context.Context, tenantID uuid.UUID, performerType, startDate, endDate string, limit int) (*TopPerformersResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "top_performers",
		telemetry.WithAttribute(telemetry.SpanAttrTenantID, tenantID),
		telemetry.WithAttribute(telemetry.SpanAttrTargetType, performerType),
		telemetry.WithAttribute(telemetry.SpanAttrLimit, limit),
	)
	defer span.End()

	if performerType != "stores" && performerType != "delivery" {
		err := shared.NewValidationError("type must be one of: stores, delivery")
		telemetry.RecordError(span, err)
		return nil, err
	}
	period, err := analytics.ResolveOverviewPeriod(startDate, endDate, s.now())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var (
		orders []analytics.OrderRecord
		names  map[uuid.UUID]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.fetchOrders(gctx, tenantID, period)
		return err
	})
	g.Go(func() error {
		var err error
		if performerType == "stores" {
			names, err = s.directory.StoreNames(gctx, tenantID)
		} else {
			names, err = s.directory.DeliveryCompanyNames(gctx, tenantID)
		}
		if err != nil {
			s.logger.Error("Failed to fetch entity names",
				zap.String("tenant_id", tenantID.String()),
				zap.String("type", performerType),
				zap.Error(err),
			)
			return shared.NewUpstreamError("failed to load analytics data")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var keyFn analytics.GroupKeyFunc
	if performerType == "stores" {
		keyFn = func(o analytics.OrderRecord) uuid.UUID { return o.StoreID }
	} else {
		keyFn = func(o analytics.OrderRecord) uuid.UUID { return o.DeliveryCompanyID }
	}
	entries, err := analytics.RankOrders(orders, keyFn, names, analytics.RankByRevenue, limit)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if performerType == "stores" {
		performers := make([]StorePerformer, 0, len(entries))
		for _, e := range entries {
			performers = append(performers, StorePerformer{
				StoreID:      e.EntityID.String(),
				StoreName:    e.EntityName,
				TotalOrders:  e.TotalOrders,
				TotalRevenue: round2(e.TotalRevenue),
			})
		}
		return &TopPerformersResponse{TopPerformers: performers}, nil
	}

	performers := make([]DeliveryPerformer, 0, len(entries))
	for _, e := range entries {
		performers = append(performers, DeliveryPerformer{
			DeliveryID:   e.EntityID.String(),
			DeliveryName: e.EntityName,
			TotalOrders:  e.TotalOrders,
			TotalRevenue: round2(e.TotalRevenue),
		})
	}
	return &TopPerformersResponse{TopPerformers: performers}, nil
}

// ConversionFunnel computes the status funnel over all orders of the tenant.
// Rates are percentages of the overall total; an empty order set yields zero
// counts and zero rates.
func (s *AnalyticsService) ConversionFunnel(ctx context.Context, tenantID uuid.UUID) (*FunnelResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "conversion_funnel")
	defer span.End()

	telemetry.SetAttribute(span, telemetry.SpanAttrTenantID, tenantID)

	orders, err := s.fetchOrders(ctx, tenantID, analytics.Period{})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	slices, total := analytics.ComputeFunnel(orders)
	var breakdown FunnelBreakdown
	for _, sl := range slices {
		stage := FunnelStage{Count: sl.Count, Rate: sl.Rate}
		switch sl.Status {
		case analytics.StatusPending:
			breakdown.Pending = stage
		case analytics.StatusProcessing:
			breakdown.Processing = stage
		case analytics.StatusDelivered:
			breakdown.Delivered = stage
		case analytics.StatusCancelled:
			breakdown.Cancelled = stage
		}
	}
	return &FunnelResponse{Funnel: breakdown, Total: total}, nil
}

// CustomerLTV computes the average lifetime value across distinct customers
// and the top spenders. A tenant with no orders yields zero values, not an
// error.
func (s *AnalyticsService) CustomerLTV(ctx context.Context, tenantID uuid.UUID) (*CustomerLTVResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "customer_ltv")
	defer span.End()

	telemetry.SetAttribute(span, telemetry.SpanAttrTenantID, tenantID)

	orders, err := s.fetchOrders(ctx, tenantID, analytics.Period{})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	customers := analytics.DistinctCustomers(orders)
	revenue := analytics.SumRevenue(orders)

	entries, err := analytics.RankOrders(orders,
		func(o analytics.OrderRecord) uuid.UUID { return o.CreatedBy },
		nil,
		analytics.RankByRevenue,
		analytics.DefaultTopCustomerCap,
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	top := make([]TopCustomer, 0, len(entries))
	for _, e := range entries {
		top = append(top, TopCustomer{
			CustomerID:  e.EntityID.String(),
			TotalOrders: e.TotalOrders,
			TotalSpent:  round2(e.TotalRevenue),
		})
	}

	return &CustomerLTVResponse{
		AverageLTV:     analytics.AverageOrderValue(revenue, customers).InexactFloat64(),
		TotalCustomers: customers,
		TopCustomers:   top,
	}, nil
}

// DashboardStats compares the running calendar month against the full
// previous month. All four fetches run concurrently.
func (s *AnalyticsService) DashboardStats(ctx context.Context, tenantID uuid.UUID) (*DashboardStatsResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "dashboard_stats")
	defer span.End()

	telemetry.SetAttribute(span, telemetry.SpanAttrTenantID, tenantID)

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	current := analytics.Period{Start: monthStart, End: now}
	previous := analytics.Period{
		Start: monthStart.AddDate(0, -1, 0),
		End:   monthStart.Add(-time.Nanosecond),
	}

	var (
		curOrders, prevOrders       []analytics.OrderRecord
		curCampaigns, prevCampaigns []analytics.CampaignRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		curOrders, err = s.fetchOrders(gctx, tenantID, current)
		return err
	})
	g.Go(func() error {
		var err error
		prevOrders, err = s.fetchOrders(gctx, tenantID, previous)
		return err
	})
	g.Go(func() error {
		var err error
		curCampaigns, err = s.fetchCampaigns(gctx, tenantID, current)
		return err
	})
	g.Go(func() error {
		var err error
		prevCampaigns, err = s.fetchCampaigns(gctx, tenantID, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	curRevenue := analytics.SumRevenue(curOrders)
	prevRevenue := analytics.SumRevenue(prevOrders)
	curTotal := int64(len(curOrders))
	prevTotal := int64(len(prevOrders))

	curCustomers := analytics.DistinctCustomers(curOrders)
	prevCustomers := analytics.DistinctCustomers(prevOrders)

	curSent := countSentCampaigns(curCampaigns)
	prevSent := countSentCampaigns(prevCampaigns)

	curConvRate := campaignConversion(curCampaigns)
	prevConvRate := campaignConversion(prevCampaigns)

	curAvg := analytics.AverageOrderValue(curRevenue, curTotal)
	prevAvg := analytics.AverageOrderValue(prevRevenue, prevTotal)

	return &DashboardStatsResponse{
		Stats: DashboardStats{
			TotalOrders: MetricWithChange{
				Value:  float64(curTotal),
				Change: analytics.PercentChangeInt(curTotal, prevTotal),
			},
			RefusedOrders: MetricWithChange{
				Value: float64(analytics.CountByStatus(curOrders, analytics.StatusRefused)),
				Change: analytics.PercentChangeInt(
					analytics.CountByStatus(curOrders, analytics.StatusRefused),
					analytics.CountByStatus(prevOrders, analytics.StatusRefused),
				),
			},
			Revenue: MetricWithChange{
				Value:  round2(curRevenue),
				Change: analytics.PercentChange(curRevenue, prevRevenue),
			},
			ActiveCustomers: MetricWithChange{
				Value:  float64(curCustomers),
				Change: analytics.PercentChangeInt(curCustomers, prevCustomers),
			},
			CampaignsSent: MetricWithChange{
				Value:  float64(curSent),
				Change: analytics.PercentChangeInt(curSent, prevSent),
			},
			ConversionRate: MetricWithChange{
				Value: curConvRate,
				Change: analytics.PercentChange(
					decimal.NewFromFloat(curConvRate),
					decimal.NewFromFloat(prevConvRate),
				),
			},
			AvgOrderValue: MetricWithChange{
				Value:  curAvg.InexactFloat64(),
				Change: analytics.PercentChange(curAvg, prevAvg),
			},
		},
	}, nil
}

func countSentCampaigns(campaigns []analytics.CampaignRecord) int64 {
	var n int64
	for _, c := range campaigns {
		if c.Status == "sent" {
			n++
		}
	}
	return n
}

// campaignConversion returns the conversion rate across all campaigns.
func campaignConversion(campaigns []analytics.CampaignRecord) float64 {
	var recipients, conversions int64
	for _, c := range campaigns {
		recipients += analytics.NonNegative(c.RecipientsCount)
		conversions += analytics.NonNegative(c.ConversionCount)
	}
	return analytics.RatePercent(conversions, recipients)
}

// round2 converts a decimal to a JSON number with 2-decimal rounding.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
