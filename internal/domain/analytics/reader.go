package analytics

import (
	"context"

	"github.com/google/uuid"
)

// OrderReader fetches order snapshots from the storage gateway. A zero Period
// means the full record set. Rows outside the period must not be returned;
// window filtering belongs to the gateway, not the aggregation functions.
type OrderReader interface {
	FetchOrders(ctx context.Context, tenantID uuid.UUID, period Period) ([]OrderRecord, error)
}

// CampaignReader fetches campaign snapshots from the storage gateway.
type CampaignReader interface {
	FetchCampaigns(ctx context.Context, tenantID uuid.UUID, period Period) ([]CampaignRecord, error)
}

// UserReader fetches all user snapshots for a tenant.
type UserReader interface {
	FetchUsers(ctx context.Context, tenantID uuid.UUID) ([]UserRecord, error)
}

// Directory resolves entity IDs to display names for leaderboards. Missing
// entries resolve to UnknownEntityName at ranking time.
type Directory interface {
	StoreNames(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error)
	DeliveryCompanyNames(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error)
}
