package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPath(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"/"}, "/"},
		{[]string{""}, "/"},
		{[]string{"/api", "products/"}, "/api/products/"},
		{[]string{"/api/", "/products"}, "/api/products"},
		{[]string{"api", "/"}, "/api"},
		{[]string{"/api/products/"}, "/api/products/"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, joinPath(c.parts...), "%v", c.parts)
	}
}

func TestTrailingSlashRouteIsExact(t *testing.T) {
	r := New()
	r.Group("/api").Get("/products/", "api.products", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	noop := func(http.ResponseWriter, *http.Request) {}
	r.Get("/", "home", noop)
	r.Post("/graphql", "graphql", noop)
	r.Get("/products/{id}", "", noop)

	path, ok := r.Path("home")
	require.True(t, ok)
	assert.Equal(t, "/", path)

	assert.Equal(t, []RouteInfo{
		{Method: http.MethodGet, Path: "/", Name: "home"},
		{Method: http.MethodPost, Path: "/graphql", Name: "graphql"},
	}, r.Routes())
}

func TestURL(t *testing.T) {
	r := New()
	r.Get("/p/{id}", "product", func(http.ResponseWriter, *http.Request) {})

	u, err := r.URL("product", map[string]string{"id": "9"})
	require.NoError(t, err)
	assert.Equal(t, "/p/9", u)

	_, err = r.URL("product", nil)
	assert.Error(t, err)
	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/api", mw("group")).Group("/v1", mw("inner"))
	g.Get("/x", "x", func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }, mw("route"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/x", nil))
	assert.Equal(t, []string{"group", "inner", "route", "handler"}, order)
}
