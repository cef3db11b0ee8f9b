package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
)

func TestInit_Disabled(t *testing.T) {
	t.Parallel()

	p, err := Init(t.Context(), config.TelemetryConfig{Enabled: false, Exporter: "bogus"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if p.Tracer != nil || p.Meter != nil || p.Metrics != nil {
		t.Errorf("Init() = %+v, want empty providers", p)
	}
	if err := p.Shutdown(t.Context()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// Not parallel: Init installs global providers.
func TestInit_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := Init(ctx, config.TelemetryConfig{Enabled: true, Exporter: ExporterStdout, ServiceName: "board-test"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { _ = p.Shutdown(ctx) })

	if p.Metrics == nil || p.Metrics.StatusTransitions == nil {
		t.Fatal("Init() did not register the board instruments")
	}
	if otel.GetTracerProvider() != p.Tracer {
		t.Error("global TracerProvider not installed")
	}
	fields := otel.GetTextMapPropagator().Fields()
	if len(fields) == 0 || fields[0] != "traceparent" {
		t.Errorf("propagator fields = %v, want traceparent first", fields)
	}
}

func TestInit_RejectsBadExporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{name: "unknown exporter", cfg: config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}},
		{name: "otlp without endpoint", cfg: config.TelemetryConfig{Enabled: true, Exporter: ExporterOTLP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Init(t.Context(), tt.cfg); err == nil {
				t.Error("Init() error = nil, want error")
			}
		})
	}
}

func TestCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint     string
		wantHost     string
		wantInsecure bool
	}{
		{endpoint: "http://otel-collector:4318", wantHost: "otel-collector:4318", wantInsecure: true},
		{endpoint: "https://collector.example.com", wantHost: "collector.example.com", wantInsecure: false},
		{endpoint: "localhost:4318", wantHost: "localhost:4318", wantInsecure: true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()
			host, insecure, err := collector(tt.endpoint)
			if err != nil {
				t.Fatalf("collector() error = %v", err)
			}
			if host != tt.wantHost || insecure != tt.wantInsecure {
				t.Errorf("collector() = (%q, %v), want (%q, %v)", host, insecure, tt.wantHost, tt.wantInsecure)
			}
		})
	}
}

func TestNewMetrics_BoardCounters(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	m, err := NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "board-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	ctx := t.Context()
	m.ProjectsCreated.Add(ctx, 2)
	m.StatusTransitions.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			if sum, ok := metric.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					got[metric.Name] += dp.Value
				}
			}
		}
	}
	if got["board.projects.created"] != 2 || got["board.status.transitions"] != 1 {
		t.Errorf("counters = %v, want created=2 transitions=1", got)
	}
}
