package repositories_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	_ "github.com/shashiranjanraj/storefront/database/migrations"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/migration"
)

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, migration.New(db).WithOutput(io.Discard).Run())
	return db
}

func TestListAllEmpty(t *testing.T) {
	repo := repositories.NewProductRepository(migratedDB(t))

	products, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListAllInsertionOrder(t *testing.T) {
	repo := repositories.NewProductRepository(migratedDB(t))
	ctx := context.Background()

	names := []string{"Zebra mug", "Apple crate", "Moon lamp"}
	for i, name := range names {
		p := models.Product{Name: name, Price: decimal.NewFromInt(int64(i))}
		require.NoError(t, repo.Create(ctx, &p))
		assert.NotZero(t, p.ID)
	}

	products, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, p := range products {
		assert.Equal(t, names[i], p.Name)
		if i > 0 {
			assert.Greater(t, p.ID, products[i-1].ID)
		}
	}
}

func TestCreateKeepsDecimalPrecision(t *testing.T) {
	repo := repositories.NewProductRepository(migratedDB(t))
	ctx := context.Background()

	p := models.Product{Name: "Cheap", Price: decimal.RequireFromString("0.10")}
	require.NoError(t, repo.Create(ctx, &p))
	p = models.Product{Name: "Pricey", Price: decimal.RequireFromString("12345678.99")}
	require.NoError(t, repo.Create(ctx, &p))

	products, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("12345678.99")))
}

func TestCreateStoresEmptyImageAsNull(t *testing.T) {
	db := migratedDB(t)
	repo := repositories.NewProductRepository(db)
	ctx := context.Background()

	empty := ""
	p := models.Product{Name: "No image", Price: decimal.Zero, Image: &empty}
	require.NoError(t, repo.Create(ctx, &p))

	var nulls int64
	require.NoError(t, db.Model(&models.Product{}).Where("image IS NULL").Count(&nulls).Error)
	assert.Equal(t, int64(1), nulls)
}

func TestCreateRejectsInvalid(t *testing.T) {
	repo := repositories.NewProductRepository(migratedDB(t))
	ctx := context.Background()

	p := models.Product{Name: "Refund", Price: decimal.NewFromInt(-5)}
	assert.ErrorIs(t, repo.Create(ctx, &p), models.ErrInvalidProduct)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListAllStorageUnavailable(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := database.OpenDialector(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)

	driverErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id asc`).WillReturnError(driverErr)

	products, err := repositories.NewProductRepository(db).ListAll(context.Background())
	assert.Nil(t, products)
	assert.ErrorIs(t, err, repositories.ErrStorageUnavailable)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	repo := repositories.NewProductRepository(migratedDB(t))
	assert.NoError(t, repo.Ping(context.Background()))
}
