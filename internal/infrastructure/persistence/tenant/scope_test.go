package tenant

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type orderModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status   string    `gorm:"size:32"`
}

func (orderModel) TableName() string {
	return "orders"
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestScope(t *testing.T) {
	tenantID := uuid.New()

	db, mock, mockDB := setupMockDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE tenant_id = $1`)).
		WithArgs(tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "status"}))

	var rows []orderModel
	err := db.Scopes(Scope(tenantID)).Find(&rows).Error
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadDB_ForTenant(t *testing.T) {
	tenantID := uuid.New()

	t.Run("applies tenant filter", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE tenant_id = $1`)).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "status"}))

		var rows []orderModel
		err := NewReadDB(db).ForTenant(context.Background(), tenantID).Find(&rows).Error
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil tenant id errors without querying", func(t *testing.T) {
		db, _, mockDB := setupMockDB(t)
		defer mockDB.Close()

		var rows []orderModel
		err := NewReadDB(db).ForTenant(context.Background(), uuid.Nil).Find(&rows).Error
		assert.ErrorIs(t, err, ErrTenantRequired)
	})
}
