package core

import (
	"context"

	"portal/internal/configuration"
	"portal/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

// NewTelemetry sets up trace export to an OTLP/HTTP collector and returns a
// shutdown function. An empty endpoint disables export entirely.
func NewTelemetry(ctx context.Context, config models.TracingConfiguration) func(context.Context) error {
	if config.Endpoint == "" {
		return func(context.Context) error { return nil }
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(config.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		zap.L().Fatal("Failed to create trace exporter", zap.Error(err))
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(configuration.AppName),
		),
	)
	if err != nil {
		zap.L().Fatal("Failed to build telemetry resource", zap.Error(err))
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	zap.L().Info("Trace export enabled", zap.String("endpoint", config.Endpoint))
	return provider.Shutdown
}
