package in

import (
	"context"

	"statdeck/internal/modules/analytics/dto"
)

type Usecase interface {
	DashboardStats(ctx context.Context) (dto.SnapshotOutput, error)
	TimeSeries(ctx context.Context) (dto.SeriesOutput, error)
	Dashboard(ctx context.Context) (dto.DashboardOutput, error)
	Detail(ctx context.Context) (dto.DetailOutput, error)
	Report(ctx context.Context) (string, error)
}
