package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	quotesCreated    metric.Int64Counter
	quoteTransitions metric.Int64Counter
	reportsGenerated metric.Int64Counter
	documentsRender  metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "colorhaus"
	}
	meter := provider.Meter(name)

	quotesCreated, err := meter.Int64Counter("colorhaus_quotes_created_total")
	if err != nil {
		return nil, err
	}
	quoteTransitions, err := meter.Int64Counter("colorhaus_quote_transitions_total")
	if err != nil {
		return nil, err
	}
	reportsGenerated, err := meter.Int64Counter("colorhaus_reports_generated_total")
	if err != nil {
		return nil, err
	}
	documentsRender, err := meter.Int64Counter("colorhaus_documents_rendered_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		quotesCreated:    quotesCreated,
		quoteTransitions: quoteTransitions,
		reportsGenerated: reportsGenerated,
		documentsRender:  documentsRender,
	}, nil
}

// RecordQuoteCreated increments quote creation counts.
func (m *Metrics) RecordQuoteCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.quotesCreated.Add(ctx, 1)
}

// RecordQuoteTransition increments lifecycle transition counts.
func (m *Metrics) RecordQuoteTransition(ctx context.Context, from, to string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("from_status", strings.TrimSpace(from)),
		attribute.String("to_status", strings.TrimSpace(to)),
	)
	m.quoteTransitions.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordReportGenerated increments report generation counts.
func (m *Metrics) RecordReportGenerated(ctx context.Context, period string, cached bool) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("period", strings.TrimSpace(period)),
		attribute.Bool("cached", cached),
	)
	m.reportsGenerated.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordDocumentRendered increments PDF render counts.
func (m *Metrics) RecordDocumentRendered(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("kind", strings.TrimSpace(kind)))
	m.documentsRender.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"from_status": {},
	"to_status":   {},
	"period":      {},
	"cached":      {},
	"kind":        {},
	"status_code": {},
	"endpoint":    {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
