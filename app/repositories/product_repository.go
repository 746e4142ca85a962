package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// ErrStorageUnavailable is returned when the backing database cannot be
// reached or queried. The driver error stays wrapped for logging.
var ErrStorageUnavailable = errors.New("catalog storage unavailable")

// ProductRepository is the Catalog Store: the only owner of the products table.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListAll returns every product ordered by id ascending, i.e. insertion
// order. An empty catalogue yields an empty, non-nil slice.
func (r *ProductRepository) ListAll(ctx context.Context) (products []models.Product, err error) {
	defer observe("list", time.Now(), &err)

	products = []models.Product{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, unavailable("list products", err)
	}
	return products, nil
}

// Create validates p and inserts it, filling p.ID. Administrative use only.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (err error) {
	defer observe("create", time.Now(), &err)

	if err := p.Validate(); err != nil {
		return err
	}
	if p.Image != nil && *p.Image == "" {
		p.Image = nil
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return unavailable("create product", err)
	}
	return nil
}

// Count returns the number of stored products.
func (r *ProductRepository) Count(ctx context.Context) (n int64, err error) {
	defer observe("count", time.Now(), &err)

	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, unavailable("count products", err)
	}
	return n, nil
}

// Ping reports whether the database answers.
func (r *ProductRepository) Ping(ctx context.Context) (err error) {
	defer observe("ping", time.Now(), &err)

	sqlDB, err := r.db.DB()
	if err != nil {
		return unavailable("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("catalog: %s: %w: %w", op, ErrStorageUnavailable, err)
}

func observe(op string, start time.Time, err *error) {
	metrics.ObserveCatalogQuery(op, start, *err)
}
