// Package tenant provides tenant scoping for GORM queries.
//
// Every reporting query must be filtered to a single tenant. Scope adds the
// WHERE tenant_id = ? condition; ReadDB additionally guards against queries
// that would run without a tenant at all.
package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrTenantRequired is returned when a query would run without a tenant filter.
var ErrTenantRequired = errors.New("tenant id is required but missing")

// Scope returns a GORM scope filtering rows to the given tenant.
func Scope(tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// ReadDB wraps a GORM handle and refuses to produce unscoped queries.
type ReadDB struct {
	db *gorm.DB
}

// NewReadDB creates a tenant-guarded read handle.
func NewReadDB(db *gorm.DB) *ReadDB {
	return &ReadDB{db: db}
}

// ForTenant returns a GORM DB scoped to the given tenant. A nil tenant id
// yields a DB that errors on execution instead of leaking cross-tenant rows.
func (r *ReadDB) ForTenant(ctx context.Context, tenantID uuid.UUID) *gorm.DB {
	db := r.db.WithContext(ctx)
	if tenantID == uuid.Nil {
		_ = db.AddError(ErrTenantRequired)
		return db
	}
	return db.Scopes(Scope(tenantID))
}
