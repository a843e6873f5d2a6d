package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type recordedRPC struct {
	method string
	code   string
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedRPC
}

func (f *fakeRecorder) RecordRPC(method, code string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedRPC{method: method, code: code})
}

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/rating.v1.RatingService/GetSession"}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := LoggingInterceptor(zaptest.NewLogger(t))

	t.Run("successful request", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
			return "success", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	})

	t.Run("rejected request", func(t *testing.T) {
		_, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.InvalidArgument, "bad cycle")
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("failed request", func(t *testing.T) {
		_, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.Internal, "database error")
		})
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

func TestMetricsInterceptor(t *testing.T) {
	rec := &fakeRecorder{}
	interceptor := MetricsInterceptor(rec)

	_, _ = interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	_, _ = interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "no template")
	})

	assert.Equal(t, []recordedRPC{
		{method: testInfo.FullMethod, code: "OK"},
		{method: testInfo.FullMethod, code: "NotFound"},
	}, rec.calls)
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(zaptest.NewLogger(t))

	resp, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(WithPort(70000))
	assert.ErrorContains(t, err, "invalid port")
}

func TestServerBuilderWithLogging(t *testing.T) {
	rec := &fakeRecorder{}
	server, err := New(
		WithPort(0),
		WithLogger(zaptest.NewLogger(t)),
		WithLogging(true),
		WithMetrics(rec),
	)
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	require.NotNil(t, server.grpcServer)
	require.NotNil(t, server.healthServer)

	server.Start()

	conn, err := grpc.NewClient(server.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "/grpc.health.v1.Health/Check", rec.calls[0].method)
}

func TestServiceHealth(t *testing.T) {
	server, err := New(WithPort(0))
	require.NoError(t, err)
	defer server.Shutdown(context.Background())

	server.RegisterServiceWithHealth("rating.v1.RatingService", func(s *grpc.Server) {})
	server.Start()

	conn, err := grpc.NewClient(server.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client := healthpb.NewHealthClient(conn)

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "rating.v1.RatingService"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	server.SetServiceHealth("rating.v1.RatingService", healthpb.HealthCheckResponse_NOT_SERVING)
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: "rating.v1.RatingService"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}
