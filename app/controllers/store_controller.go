package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/resources"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/resource"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"github.com/shashiranjanraj/storefront/resources/views"
)

// Catalog is what the store pages need from the catalog service.
type Catalog interface {
	Products(ctx context.Context) ([]services.ProductView, error)
}

// StoreController serves the public, read-only storefront.
type StoreController struct {
	catalog Catalog
	title   string
}

func NewStoreController(catalog Catalog, title string) *StoreController {
	return &StoreController{catalog: catalog, title: title}
}

// Home renders the product grid.
func (c *StoreController) Home(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Products(r.Context())
	if err != nil {
		c.fail(w, r, err, false)
		return
	}

	var buf bytes.Buffer
	err = views.Render(&buf, "home.html", struct {
		Title    string
		Products []services.ProductView
	}{c.title, products})
	if err != nil {
		c.fail(w, r, err, false)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

// Products serves {"products": [...]}.
func (c *StoreController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Products(r.Context())
	if err != nil {
		c.fail(w, r, err, true)
		return
	}

	err = resource.CollectionOf[services.ProductView](resources.ProductResource{}, products).
		As("products").
		Respond(w)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("products: write response", "error", err)
	}
}

func (c *StoreController) fail(w http.ResponseWriter, r *http.Request, err error, asJSON bool) {
	log := logger.WithCtx(r.Context())

	status := http.StatusInternalServerError
	if errors.Is(err, repositories.ErrStorageUnavailable) {
		status = http.StatusServiceUnavailable
	}
	log.Error("catalog request failed", "path", r.URL.Path, "status", status, "error", err)

	switch {
	case asJSON:
		response.Error(w, status, http.StatusText(status))
	default:
		http.Error(w, http.StatusText(status), status)
	}
}
