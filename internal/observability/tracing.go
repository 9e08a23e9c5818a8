package observability

import (
	"context"
	"fmt"

	"github.com/prefeitura-rio/app-cpf/internal/config"
	"github.com/prefeitura-rio/app-cpf/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "app-cpf"
	serviceVersion = "v1.0.0"
)

var (
	tracerProvider *sdktrace.TracerProvider
)

// InitTracer installs an OTLP tracer provider configured from cfg.
// A nil config or disabled tracing leaves the global no-op provider in place.
func InitTracer(cfg *config.Config) error {
	if cfg == nil || !cfg.TracingEnabled {
		logging.Logger.Info("tracing is disabled")
		return nil
	}

	ctx := context.Background()

	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
			semconv.DeploymentEnvironmentKey.String(cfg.Environment),
		),
	)
	if err != nil {
		_ = exporter.Shutdown(ctx)
		return fmt.Errorf("failed to create resource: %w", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, batcherOptions(cfg)...),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logging.Logger.Info("tracer initialized",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.Int("max_export_batch_size", cfg.TracingMaxExportBatchSize),
		zap.Int("max_queue_size", cfg.TracingMaxQueueSize),
		zap.Duration("batch_timeout", cfg.TracingBatchTimeout),
	)
	return nil
}

func batcherOptions(cfg *config.Config) []sdktrace.BatchSpanProcessorOption {
	return []sdktrace.BatchSpanProcessorOption{
		sdktrace.WithMaxExportBatchSize(cfg.TracingMaxExportBatchSize),
		sdktrace.WithBatchTimeout(cfg.TracingBatchTimeout),
		sdktrace.WithMaxQueueSize(cfg.TracingMaxQueueSize),
	}
}

// ShutdownTracer flushes pending spans and stops the exporter
func ShutdownTracer(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}

	err := tracerProvider.Shutdown(ctx)
	tracerProvider = nil
	if err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}
	return nil
}
