package observability

import (
	"context"
	"fmt"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records domain metrics through OpenTelemetry, exported
// on the Prometheus registry. The zero value is a no-op recorder.
type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	scoreCounter  otelmetric.Int64Counter
	scoreValue    otelmetric.Int64Histogram
}

// New registers the exporter on the default Prometheus registry.
func New(serviceName string) (*Observability, error) {
	return NewWithRegisterer(serviceName, promclient.DefaultRegisterer)
}

// NewWithRegisterer registers the exporter on reg.
func NewWithRegisterer(serviceName string, reg promclient.Registerer) (*Observability, error) {
	exporter, err := prometheus.New(prometheus.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	scoreCounter, err := meter.Int64Counter(
		"credit.scores.computed",
		otelmetric.WithDescription("Number of credit scores computed"),
	)
	if err != nil {
		return nil, err
	}

	scoreValue, err := meter.Int64Histogram(
		"credit.score.value",
		otelmetric.WithDescription("Distribution of computed credit scores"),
		otelmetric.WithExplicitBucketBoundaries(300, 400, 500, 600, 700, 800, 850),
	)
	if err != nil {
		return nil, err
	}

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		scoreCounter:  scoreCounter,
		scoreValue:    scoreValue,
	}, nil
}

// RecordScore counts one computed score by risk level.
func (o *Observability) RecordScore(ctx context.Context, riskLevel string, score int) {
	if o == nil || o.scoreCounter == nil {
		return
	}
	attrs := otelmetric.WithAttributes(attribute.String("risk_level", riskLevel))
	o.scoreCounter.Add(ctx, 1, attrs)
	o.scoreValue.Record(ctx, int64(score), attrs)
}

func (o *Observability) Shutdown() {
	if o == nil || o.meterProvider == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = o.meterProvider.Shutdown(ctx)
}
