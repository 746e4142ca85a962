package seeders

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
)

func init() {
	Register("products", SeedProducts)
}

const sampleImage = "https://via.placeholder.com/300x300"

// SampleProducts returns the demo catalogue used for local development.
func SampleProducts() []models.Product {
	img := sampleImage
	return []models.Product{
		{
			Name:        "Sample Product 1",
			Description: "This is a sample product description for testing purposes.",
			Price:       decimal.RequireFromString("29.99"),
			Image:       &img,
		},
		{
			Name:        "Sample Product 2",
			Description: "Another sample product to test the store functionality.",
			Price:       decimal.RequireFromString("49.99"),
			Image:       &img,
		},
		{
			Name:        "Sample Product 3",
			Description: "A third sample product to demonstrate the grid layout.",
			Price:       decimal.RequireFromString("79.99"),
			Image:       &img,
		},
	}
}

// SeedProducts inserts the sample catalogue, but only into an empty one.
func SeedProducts(ctx context.Context, db *gorm.DB, out io.Writer) error {
	repo := repositories.NewProductRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Fprintf(out, "(%d products already exist) ", count)
		return nil
	}

	samples := SampleProducts()
	for i := range samples {
		if err := repo.Create(ctx, &samples[i]); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "(created %d sample products) ", len(samples))
	return nil
}
