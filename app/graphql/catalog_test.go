package graphql_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogql "github.com/shashiranjanraj/storefront/app/graphql"
	"github.com/shashiranjanraj/storefront/app/services"
	gql "github.com/shashiranjanraj/storefront/pkg/graphql"
)

type stubCatalog struct {
	products []services.ProductView
	err      error
}

func (s stubCatalog) Products(context.Context) ([]services.ProductView, error) {
	return s.products, s.err
}

func post(t *testing.T, catalog catalogql.Catalog, body string) *httptest.ResponseRecorder {
	t.Helper()
	schema, err := catalogql.NewSchema(catalog)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	gql.Handler(schema)(rec, req)
	return rec
}

func TestProductsQuery(t *testing.T) {
	catalog := stubCatalog{products: []services.ProductView{
		{ID: 1, Name: "Sample Product 1", Description: "...", Price: decimal.RequireFromString("29.99"), Image: "https://via.placeholder.com/300x300"},
	}}

	rec := post(t, catalog, `{"query":"{ products { id name description price image } }"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":{"products":[{"id":1,"name":"Sample Product 1","description":"...","price":29.99,"image":"https://via.placeholder.com/300x300"}]}}`,
		rec.Body.String())
}

func TestProductsQueryEmpty(t *testing.T) {
	rec := post(t, stubCatalog{products: []services.ProductView{}}, `{"query":"{ products { id } }"}`)
	assert.JSONEq(t, `{"data":{"products":[]}}`, rec.Body.String())
}

func TestProductsQueryStoreError(t *testing.T) {
	rec := post(t, stubCatalog{err: errors.New("catalog storage unavailable")}, `{"query":"{ products { id } }"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog storage unavailable")
}

func TestMalformedRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(t, stubCatalog{}, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, stubCatalog{}, `{"query":""}`).Code)
}
