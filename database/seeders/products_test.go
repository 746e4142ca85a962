package seeders_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/repositories"
	_ "github.com/shashiranjanraj/storefront/database/migrations"
	"github.com/shashiranjanraj/storefront/database/seeders"
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

func TestSeedProductsOnlyOnce(t *testing.T) {
	db := migratedDB(t)
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, seeders.RunAll(ctx, db, &out))
	assert.Contains(t, out.String(), "created 3 sample products")

	out.Reset()
	require.NoError(t, seeders.RunAll(ctx, db, &out))
	assert.Contains(t, out.String(), "3 products already exist")

	products, err := repositories.NewProductRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Sample Product 1", products[0].Name)
	assert.Equal(t, "29.99", products[0].Price.StringFixed(2))
	assert.Equal(t, "79.99", products[2].Price.StringFixed(2))
}

func TestSampleProductsAreValid(t *testing.T) {
	for _, p := range seeders.SampleProducts() {
		assert.NoError(t, p.Validate(), p.Name)
	}
}
