package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/app"
)

// storefront serve
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Boot()
		if err != nil {
			return err
		}
		defer a.Close()
		return serve(cmd, a)
	},
}

func serve(cmd *cobra.Command, a *app.Application) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Server:       http://127.0.0.1:%s/\n", a.Config.Port)
	fmt.Fprintf(out, "API endpoint: http://127.0.0.1:%s/api/products/\n", a.Config.Port)
	fmt.Fprintln(out, "Press Ctrl+C to stop the server")
	return a.Serve(ctx)
}

// storefront route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoutes(cmd)
	},
}

func printRoutes(cmd *cobra.Command) error {
	cfg, err := config.Snapshot()
	if err != nil {
		return err
	}
	// Route registration never touches the database.
	k, err := app.New(cfg, nil).Kernel()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tNAME")
	fmt.Fprintln(w, "------\t----\t----")
	for _, ri := range k.Routes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
	}
	return w.Flush()
}

// storefront setup: first-run bootstrap for local development.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create .env.local, run migrations, seed sample data and start the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		created, err := config.WriteLocalEnv(".env.local")
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintln(out, "Created .env.local")
		}

		for _, dir := range []string{"static", "media"} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("setup: create %s: %w", dir, err)
			}
		}

		a, err := app.Boot()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := migrate(cmd, a); err != nil {
			return err
		}
		if err := seed(cmd, a); err != nil {
			return err
		}
		return serve(cmd, a)
	},
}
