package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/stellarcredit/credit-service/pkg/auth"
	"github.com/stellarcredit/credit-service/pkg/observability"
	"github.com/stellarcredit/credit-service/pkg/tlsutil"
)

// Server wraps the gRPC server with credit service handlers.
type Server struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	handler      *CreditHandler
	port         int
	logger       *slog.Logger
}

// NewServer creates a new gRPC server with the provided handler.
//
// Reads stay public: GetScore, GetLoan, and GetLoanOffers are served without
// an identity proof. Every write requires one; the use cases then check the
// proven identity against the identity each operation acts on.
func NewServer(
	handler *CreditHandler,
	port int,
	logger *slog.Logger,
	jwtService *auth.JWTService,
	rpcMetrics *observability.RPCMetrics,
) *Server {
	authInterceptor := auth.UnaryAuthInterceptor(jwtService, []string{
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
		"/stellarcredit.credit.v1.CreditService/GetScore",
		"/stellarcredit.credit.v1.CreditService/GetLoan",
		"/stellarcredit.credit.v1.CreditService/GetLoanOffers",
	})

	interceptors := []grpc.UnaryServerInterceptor{authInterceptor}
	if rpcMetrics != nil {
		interceptors = append([]grpc.UnaryServerInterceptor{metricsInterceptor(rpcMetrics)}, interceptors...)
	}

	serverOpts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(interceptors...)}

	// Optional TLS: set GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE to enable.
	if certFile, keyFile := os.Getenv("GRPC_TLS_CERT_FILE"), os.Getenv("GRPC_TLS_KEY_FILE"); certFile != "" && keyFile != "" {
		creds, err := tlsutil.ServerTLSConfig(certFile, keyFile)
		if err != nil {
			logger.Error("failed to load TLS credentials, starting without TLS", "error", err)
		} else {
			serverOpts = append(serverOpts, grpc.Creds(creds))
			logger.Info("gRPC TLS enabled", "cert", certFile, "key", keyFile)
		}
	}

	grpcServer := grpc.NewServer(serverOpts...)
	healthServer := health.NewServer()

	// Register health check service.
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register the CreditService handler.
	RegisterCreditServiceServer(grpcServer, handler)

	// Only enable reflection when GRPC_REFLECTION=true.
	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(grpcServer)
	}

	return &Server{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		handler:      handler,
		port:         port,
		logger:       logger,
	}
}

// Start begins listening for gRPC connections.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	s.logger.Info("gRPC server starting", "port", s.port)

	// Mark the service as healthy.
	s.healthServer.SetServingStatus("credit-service", healthpb.HealthCheckResponse_SERVING)

	if err := s.grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the gRPC server.
func (s *Server) Stop() {
	s.logger.Info("stopping gRPC server")
	s.healthServer.SetServingStatus("credit-service", healthpb.HealthCheckResponse_NOT_SERVING)
	s.grpcServer.GracefulStop()
}

// GRPCServer returns the underlying grpc.Server for additional registration.
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpcServer
}

// metricsInterceptor records per-method request counts and latencies.
func metricsInterceptor(rpcMetrics *observability.RPCMetrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		rpcMetrics.Record(ctx, info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}
