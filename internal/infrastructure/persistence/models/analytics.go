package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the persistence model for the orders table. TotalAmount is kept
// as the raw stored text; upstream writers are not trusted to produce clean
// numerics, so normalization happens at the domain boundary.
type Order struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            string    `gorm:"type:varchar(32);not null;index"`
	TotalAmount       string    `gorm:"type:varchar(64);not null;default:'0'"`
	StoreID           uuid.UUID `gorm:"type:uuid;index"`
	DeliveryCompanyID uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy         uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// Store is the persistence model for the stores table.
type Store struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Store
func (Store) TableName() string {
	return "stores"
}

// DeliveryCompany is the persistence model for the delivery_companies table.
type DeliveryCompany struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for DeliveryCompany
func (DeliveryCompany) TableName() string {
	return "delivery_companies"
}

// Campaign is the persistence model for the campaigns table.
type Campaign struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(32);not null"`
	RecipientsCount int64     `gorm:"not null;default:0"`
	OpenedCount     int64     `gorm:"not null;default:0"`
	ClickedCount    int64     `gorm:"not null;default:0"`
	ConversionCount int64     `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}

// User is the persistence model for the users table.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(32);not null;default:'member'"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
