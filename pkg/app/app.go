// Package app boots the storefront: it loads configuration, opens the
// database and wires the Catalog Store into the presentation layer.
//
//	a, err := app.Boot()
//	if err != nil { ... }
//	defer a.Close()
//	err = a.Serve(ctx)
package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/controllers"
	graphqlapi "github.com/shashiranjanraj/storefront/app/graphql"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/routes"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/pkg/database"
	gql "github.com/shashiranjanraj/storefront/pkg/graphql"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// Title is shown in the page header and <title>.
const Title = "Local Store"

// Application holds the wired components of one process.
type Application struct {
	Config   config.Store
	DB       *gorm.DB
	Products *repositories.ProductRepository
	Catalog  *services.CatalogService
}

// Boot loads configuration and connects to the configured database.
func Boot() (*Application, error) {
	cfg, err := config.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger.Setup(cfg.Env, os.Stdout)

	if err := database.Connect(); err != nil {
		return nil, err
	}
	return New(cfg, database.DB), nil
}

// New wires an Application around an already opened database.
func New(cfg config.Store, db *gorm.DB) *Application {
	products := repositories.NewProductRepository(db)
	return &Application{
		Config:   cfg,
		DB:       db,
		Products: products,
		Catalog:  services.NewCatalogService(products, cfg.PlaceholderImage),
	}
}

// Kernel builds the HTTP kernel for this application.
func (a *Application) Kernel() (*kernel.HTTPKernel, error) {
	schema, err := graphqlapi.NewSchema(a.Catalog)
	if err != nil {
		return nil, fmt.Errorf("graphql: build schema: %w", err)
	}

	h := routes.Handlers{
		Store:   controllers.NewStoreController(a.Catalog, Title),
		Health:  controllers.NewHealthController(a.Products),
		GraphQL: gql.Handler(schema),
	}
	return kernel.NewHTTPKernel(h, a.Config.AllowedOrigins), nil
}

// Close releases the database pool.
func (a *Application) Close() error {
	return database.Close(a.DB)
}
