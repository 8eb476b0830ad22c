package out

import (
	"context"
	"fmt"

	"statdeck/internal/modules/analytics/domain"
	analyticsout "statdeck/internal/modules/analytics/port/out"
)

const (
	SeriesPath         = "/api/analytics"
	DashboardStatsPath = "/api/analytics/dashboard-stats"
)

type jsonGetter interface {
	GetJSON(ctx context.Context, path string, out any) error
}

type HTTPMetricsSource struct {
	client jsonGetter
}

func NewHTTPMetricsSource(client jsonGetter) analyticsout.MetricsSource {
	return &HTTPMetricsSource{client: client}
}

func (s *HTTPMetricsSource) DashboardStats(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := s.client.GetJSON(ctx, DashboardStatsPath, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return snap, nil
}

func (s *HTTPMetricsSource) TimeSeries(ctx context.Context) (domain.Series, error) {
	var series domain.Series
	if err := s.client.GetJSON(ctx, SeriesPath, &series); err != nil {
		return nil, fmt.Errorf("analytics series: %w", err)
	}
	return series, nil
}
