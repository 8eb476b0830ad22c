package out

import (
	"context"

	"statdeck/internal/modules/analytics/domain"
)

// MetricsSource is the remote analytics API.
type MetricsSource interface {
	DashboardStats(ctx context.Context) (domain.Snapshot, error)
	TimeSeries(ctx context.Context) (domain.Series, error)
}
