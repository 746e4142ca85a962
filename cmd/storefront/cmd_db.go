package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/database/seeders"
	"github.com/shashiranjanraj/storefront/pkg/app"
	"github.com/shashiranjanraj/storefront/pkg/migration"
)

// withApp boots the application for a one-shot command and closes it after.
func withApp(fn func(cmd *cobra.Command, a *app.Application) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		a, err := app.Boot()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a)
	}
}

func migrate(cmd *cobra.Command, a *app.Application) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
	return migration.New(a.DB).WithOutput(cmd.OutOrStdout()).Run()
}

func seed(cmd *cobra.Command, a *app.Application) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
	return seeders.RunAll(cmd.Context(), a.DB, cmd.OutOrStdout())
}

// storefront migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE:  withApp(migrate),
}

// storefront migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: withApp(func(cmd *cobra.Command, a *app.Application) error {
		fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
		return migration.New(a.DB).WithOutput(cmd.OutOrStdout()).Rollback()
	}),
}

// storefront migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: withApp(func(cmd *cobra.Command, a *app.Application) error {
		return migration.New(a.DB).WithOutput(cmd.OutOrStdout()).Status()
	}),
}

// storefront seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE:  withApp(seed),
}

var productFlags struct {
	name        string
	description string
	price       string
	image       string
}

// storefront product:create
var productCreateCmd = &cobra.Command{
	Use:   "product:create",
	Short: "Add a product to the catalogue",
	RunE: withApp(func(cmd *cobra.Command, a *app.Application) error {
		p, err := productFromFlags()
		if err != nil {
			return err
		}
		if err := a.Products.Create(cmd.Context(), p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created product #%d %q\n", p.ID, p.Name)
		return nil
	}),
}

func init() {
	f := productCreateCmd.Flags()
	f.StringVar(&productFlags.name, "name", "", "product name (required)")
	f.StringVar(&productFlags.description, "description", "", "product description")
	f.StringVar(&productFlags.price, "price", "", "price, e.g. 29.99 (required)")
	f.StringVar(&productFlags.image, "image", "", "absolute image URL; omit for the placeholder")
	_ = productCreateCmd.MarkFlagRequired("name")
	_ = productCreateCmd.MarkFlagRequired("price")
}

func productFromFlags() (*models.Product, error) {
	price, err := decimal.NewFromString(productFlags.price)
	if err != nil {
		return nil, fmt.Errorf("%w: price %q is not a decimal number", models.ErrInvalidProduct, productFlags.price)
	}

	p := &models.Product{
		Name:        productFlags.name,
		Description: productFlags.description,
		Price:       price,
	}
	if productFlags.image != "" {
		img := productFlags.image
		p.Image = &img
	}
	return p, p.Validate()
}
