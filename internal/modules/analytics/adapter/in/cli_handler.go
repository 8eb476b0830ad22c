package in

import (
	"context"

	"statdeck/internal/modules/analytics/dto"
	analyticsin "statdeck/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.DashboardStats(ctx)
}

func (h CLIHandler) Series(ctx context.Context) (dto.SeriesOutput, error) {
	return h.usecase.TimeSeries(ctx)
}

func (h CLIHandler) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	return h.usecase.Dashboard(ctx)
}

func (h CLIHandler) Detail(ctx context.Context) (dto.DetailOutput, error) {
	return h.usecase.Detail(ctx)
}

func (h CLIHandler) Report(ctx context.Context) (string, error) {
	return h.usecase.Report(ctx)
}
