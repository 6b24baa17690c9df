package main

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// newMeterProvider returns a provider that writes engine metrics as JSON to w
// when shutdown is called. Disabled metrics yield a no-op provider.
func newMeterProvider(w io.Writer, enabled bool) (metric.MeterProvider, func(context.Context) error, error) {
	if !enabled {
		return noop.NewMeterProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}
	res := resource.NewSchemaless(attribute.String("service.name", "gridpath"))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)

	return mp, mp.Shutdown, nil
}
