package persistence

import (
	"context"

	"github.com/backoffice/analytics/internal/domain/analytics"
	"github.com/backoffice/analytics/internal/infrastructure/persistence/models"
	"github.com/backoffice/analytics/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAnalyticsRepository implements the analytics reader interfaces using GORM.
// It satisfies analytics.OrderReader, analytics.CampaignReader,
// analytics.UserReader and analytics.Directory. All queries go through the
// tenant read guard; a nil tenant id fails the query instead of scanning
// across tenants.
type GormAnalyticsRepository struct {
	read *tenant.ReadDB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{read: tenant.NewReadDB(db)}
}

// scopePeriod applies the window to a query. A zero period means the full set.
func scopePeriod(query *gorm.DB, period analytics.Period) *gorm.DB {
	if period.IsZero() {
		return query
	}
	return query.Where("created_at BETWEEN ? AND ?", period.Start, period.End)
}

// FetchOrders returns the tenant's orders inside the window, normalized into
// domain records. Stored totals that do not parse as non-negative numbers
// count as zero rather than failing the fetch.
func (r *GormAnalyticsRepository) FetchOrders(ctx context.Context, tenantID uuid.UUID, period analytics.Period) ([]analytics.OrderRecord, error) {
	var rows []models.Order
	query := r.read.ForTenant(ctx, tenantID)
	if err := scopePeriod(query, period).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]analytics.OrderRecord, len(rows))
	for i, row := range rows {
		records[i] = analytics.OrderRecord{
			ID:                row.ID,
			Status:            analytics.OrderStatus(row.Status),
			Total:             analytics.AmountOrZero(row.TotalAmount),
			CreatedAt:         row.CreatedAt,
			StoreID:           row.StoreID,
			DeliveryCompanyID: row.DeliveryCompanyID,
			CreatedBy:         row.CreatedBy,
		}
	}
	return records, nil
}

// FetchCampaigns returns the tenant's campaigns inside the window.
func (r *GormAnalyticsRepository) FetchCampaigns(ctx context.Context, tenantID uuid.UUID, period analytics.Period) ([]analytics.CampaignRecord, error) {
	var rows []models.Campaign
	query := r.read.ForTenant(ctx, tenantID)
	if err := scopePeriod(query, period).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]analytics.CampaignRecord, len(rows))
	for i, row := range rows {
		records[i] = analytics.CampaignRecord{
			ID:              row.ID,
			Status:          row.Status,
			RecipientsCount: row.RecipientsCount,
			OpenedCount:     row.OpenedCount,
			ClickedCount:    row.ClickedCount,
			ConversionCount: row.ConversionCount,
			CreatedAt:       row.CreatedAt,
		}
	}
	return records, nil
}

// FetchUsers returns all users of the tenant.
func (r *GormAnalyticsRepository) FetchUsers(ctx context.Context, tenantID uuid.UUID) ([]analytics.UserRecord, error) {
	var rows []models.User
	if err := r.read.ForTenant(ctx, tenantID).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]analytics.UserRecord, len(rows))
	for i, row := range rows {
		records[i] = analytics.UserRecord{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			Role:      row.Role,
		}
	}
	return records, nil
}

// StoreNames returns the id to display-name mapping for the tenant's stores.
func (r *GormAnalyticsRepository) StoreNames(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error) {
	var rows []models.Store
	if err := r.read.ForTenant(ctx, tenantID).
		Select("id", "name").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

// DeliveryCompanyNames returns the id to display-name mapping for the
// tenant's delivery companies.
func (r *GormAnalyticsRepository) DeliveryCompanyNames(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error) {
	var rows []models.DeliveryCompany
	if err := r.read.ForTenant(ctx, tenantID).
		Select("id", "name").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
