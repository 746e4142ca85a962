package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidProduct is wrapped by every Validate failure.
var ErrInvalidProduct = errors.New("invalid product")

// Product represents a product in the catalogue.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name        string          `gorm:"size:200;not null"                 json:"name"`
	Description string          `gorm:"type:text;not null;default:''"     json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"       json:"price"`
	Image       *string         `gorm:"size:500"                          json:"image"` // NULL and "" both mean no image
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "products"
}

// ImageURL returns the stored image, or fallback when none is set.
func (p Product) ImageURL(fallback string) string {
	if p.Image == nil || strings.TrimSpace(*p.Image) == "" {
		return fallback
	}
	return *p.Image
}

// Validate checks the invariants a product must hold before it is stored.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if len(p.Name) > 200 {
		return fmt.Errorf("%w: name exceeds 200 characters", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if !p.Price.Equal(p.Price.Round(2)) {
		return fmt.Errorf("%w: price has more than two decimal places", ErrInvalidProduct)
	}
	if p.Image != nil && *p.Image != "" {
		u, err := url.Parse(*p.Image)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: image must be an absolute http(s) URL", ErrInvalidProduct)
		}
	}
	return nil
}
