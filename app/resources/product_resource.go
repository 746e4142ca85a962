package resources

import (
	"encoding/json"

	"github.com/shashiranjanraj/storefront/app/services"
)

// productJSON fixes the wire order: id, name, description, price, image.
type productJSON struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Image       string      `json:"image"`
}

// ProductResource renders a product for /api/products/. The price is a JSON
// number carrying exactly the stored decimal digits.
type ProductResource struct{}

func (ProductResource) ToArray(v services.ProductView) any {
	return productJSON{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       json.Number(v.Price.String()),
		Image:       v.Image,
	}
}
