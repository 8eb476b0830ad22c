package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"statdeck/internal/modules/analytics/domain"
	"statdeck/internal/modules/analytics/dto"
	analyticsin "statdeck/internal/modules/analytics/port/in"
	analyticsout "statdeck/internal/modules/analytics/port/out"
	"statdeck/internal/modules/analytics/service"
)

type Interactor struct {
	svc    *service.AnalyticsService
	source analyticsout.MetricsSource
}

func NewInteractor(svc *service.AnalyticsService, source analyticsout.MetricsSource) analyticsin.Usecase {
	return &Interactor{svc: svc, source: source}
}

func (i *Interactor) DashboardStats(ctx context.Context) (dto.SnapshotOutput, error) {
	snap, err := i.source.DashboardStats(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return i.svc.Snapshot(snap), nil
}

func (i *Interactor) TimeSeries(ctx context.Context) (dto.SeriesOutput, error) {
	series, err := i.source.TimeSeries(ctx)
	if err != nil {
		return dto.SeriesOutput{}, err
	}
	return i.svc.Series(series), nil
}

// Dashboard fetches the snapshot and the series concurrently; the first
// failure cancels the other request and fails the whole load.
func (i *Interactor) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	snap, series, err := i.fetchBoth(ctx)
	if err != nil {
		return dto.DashboardOutput{}, err
	}
	return dto.DashboardOutput{Stats: i.svc.Snapshot(snap), Series: i.svc.Series(series)}, nil
}

func (i *Interactor) Detail(ctx context.Context) (dto.DetailOutput, error) {
	series, err := i.source.TimeSeries(ctx)
	if err != nil {
		return dto.DetailOutput{}, err
	}
	return i.svc.Detail(series), nil
}

func (i *Interactor) Report(ctx context.Context) (string, error) {
	snap, series, err := i.fetchBoth(ctx)
	if err != nil {
		return "", err
	}
	return i.svc.Report(snap, series), nil
}

func (i *Interactor) fetchBoth(ctx context.Context) (domain.Snapshot, domain.Series, error) {
	var (
		snap   domain.Snapshot
		series domain.Series
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = i.source.DashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		series, err = i.source.TimeSeries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, nil, err
	}
	return snap, series, nil
}
