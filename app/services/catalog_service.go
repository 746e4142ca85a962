package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/storefront/app/models"
)

// ProductLister is the read side of the Catalog Store.
type ProductLister interface {
	ListAll(ctx context.Context) ([]models.Product, error)
}

// ProductView is a product as shown to shoppers: the image is always set.
type ProductView struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

// DisplayPrice formats the price with two decimals, e.g. "29.99".
func (v ProductView) DisplayPrice() string {
	return v.Price.StringFixed(2)
}

// CatalogService turns stored products into shopper-facing views.
type CatalogService struct {
	store       ProductLister
	placeholder string
}

func NewCatalogService(store ProductLister, placeholder string) *CatalogService {
	return &CatalogService{store: store, placeholder: placeholder}
}

// Placeholder returns the image URL used for products without one.
func (s *CatalogService) Placeholder() string {
	return s.placeholder
}

// Products lists the whole catalogue in store order.
func (s *CatalogService) Products(ctx context.Context) ([]ProductView, error) {
	products, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.ImageURL(s.placeholder),
		})
	}
	return views, nil
}
