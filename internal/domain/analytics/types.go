// Package analytics implements the reporting engine for the back-office:
// time-bucketed trends, period-over-period deltas, funnels, lifetime-value
// rankings and top-performer leaderboards. Every component is a pure function
// over an immutable snapshot of rows; the engine holds no state between calls.
package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle status of an order. The stored status set is
// open-ended (new statuses may appear upstream before the dashboard learns
// about them), so OrderStatus is a plain string type rather than a closed enum.
type OrderStatus string

// Known order statuses
const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefused    OrderStatus = "refused"
)

// OrderRecord is an immutable snapshot of an order row as read by the engine.
// Total is already normalized through AmountOrZero at ingestion and is never
// negative.
type OrderRecord struct {
	ID                uuid.UUID
	Status            OrderStatus
	Total             decimal.Decimal
	CreatedAt         time.Time
	StoreID           uuid.UUID
	DeliveryCompanyID uuid.UUID
	CreatedBy         uuid.UUID // customer who placed the order
}

// CampaignRecord is an immutable snapshot of a marketing campaign row.
// All counters are non-negative; missing values default to 0.
type CampaignRecord struct {
	ID              uuid.UUID
	Status          string
	RecipientsCount int64
	OpenedCount     int64
	ClickedCount    int64
	ConversionCount int64
	CreatedAt       time.Time
}

// UserRecord is an immutable snapshot of a user row.
type UserRecord struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Role      string
}

// Bucket is an aggregation slot keyed by a time-granularity-derived label.
// StatusCounts tallies every status seen in the bucket; report assembly picks
// the labeled subset it needs.
type Bucket struct {
	Key          string
	Orders       int64
	Revenue      decimal.Decimal
	StatusCounts map[OrderStatus]int64
}

// RankingEntry is one row of a top-performer leaderboard.
type RankingEntry struct {
	EntityID     uuid.UUID
	EntityName   string
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}

// FunnelSlice is one status band of the conversion funnel. Rate is the share
// of the total, in percent, rounded to 2 decimals.
type FunnelSlice struct {
	Status OrderStatus
	Count  int64
	Rate   float64
}
