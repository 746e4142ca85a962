package app

import (
	"context"

	"github.com/shashiranjanraj/storefront/internal/server"
	"github.com/shashiranjanraj/storefront/pkg/grpc"
)

// Serve runs the HTTP server, and the gRPC health server when GRPC_PORT is
// set, until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	k, err := a.Kernel()
	if err != nil {
		return err
	}

	if a.Config.GRPCPort != "" {
		srv, _, err := grpc.Start(a.Config.GRPCPort, a.Products)
		if err != nil {
			return err
		}
		defer grpc.Stop(srv)
	}

	return server.Start(ctx, ":"+a.Config.Port, k.Handler())
}
