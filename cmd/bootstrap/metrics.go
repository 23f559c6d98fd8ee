package bootstrap

import (
	"payment-intention-service/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) *metrics.Metrics {
			return metrics.New(reg)
		},
	),
)
