package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// NavigationMetrics counts menu resolutions that were served from the static fallback.
type NavigationMetrics struct {
	fallbacks metric.Int64Counter
}

// NewNavigationMetrics registers the navigation instruments on meter, or on the global provider when
// meter is nil.
func NewNavigationMetrics(meter metric.Meter) (*NavigationMetrics, error) {
	if meter == nil {
		meter = otel.Meter(instrumentation)
	}
	fallbacks, err := meter.Int64Counter(
		"storefront.navigation.fallbacks",
		metric.WithDescription("Menu resolutions served from the static fallback menu"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, fmt.Errorf("observability: register navigation fallback counter: %w", err)
	}
	return &NavigationMetrics{fallbacks: fallbacks}, nil
}

// RecordFallback increments the fallback counter for menuType with the given reason.
func (m *NavigationMetrics) RecordFallback(ctx context.Context, menuType, reason string) {
	if m == nil || m.fallbacks == nil {
		return
	}
	m.fallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("menu.type", menuType),
		attribute.String("reason", reason),
	))
}
