package routes

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// Handlers groups everything the public routes dispatch to.
type Handlers struct {
	Store   *controllers.StoreController
	Health  *controllers.HealthController
	GraphQL http.HandlerFunc
}

func Register(r *router.Router, h Handlers) {
	r.Get("/", "store.home", h.Store.Home)
	r.Get("/healthz", "health", h.Health.Check)
	r.Post("/graphql", "graphql", h.GraphQL)

	api := r.Group("/api")
	api.Get("/products/", "store.api_products", h.Store.Products)
}
