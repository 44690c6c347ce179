package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-futures-backend/internal/config"
	myGRPC "github.com/MKhiriev/go-futures-backend/internal/handler/grpc"
	"github.com/MKhiriev/go-futures-backend/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")

	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown flips the health service to NOT_SERVING first so that probes see
// the drain, then waits for in-flight calls until ctx is done.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
