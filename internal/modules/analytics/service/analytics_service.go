package service

import (
	"fmt"
	"strings"

	"statdeck/internal/modules/analytics/domain"
	"statdeck/internal/modules/analytics/dto"
)

// reportDays caps the per-day table in the markdown report.
const reportDays = 7

type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

func (s *AnalyticsService) Snapshot(snap domain.Snapshot) dto.SnapshotOutput {
	conversion := domain.ConversionRate(snap.TotalOrders, snap.TotalVisitors)
	aov := domain.AverageOrderValue(snap.TotalRevenue, snap.TotalOrders)
	return dto.SnapshotOutput{
		TotalRevenue:       snap.TotalRevenue,
		TotalOrders:        snap.TotalOrders,
		TotalVisitors:      snap.TotalVisitors,
		NewUsers:           snap.NewUsers,
		ReturningUsers:     snap.ReturningUsers,
		BounceRate:         snap.BounceRate,
		AvgSessionDuration: snap.AvgSessionDuration,
		ConversionRate:     metric(conversion, conversion.Percent()),
		AverageOrderValue:  metric(aov, aov.Currency()),
		Cards: []dto.CardOutput{
			card("Total Revenue", domain.FormatCurrency(snap.TotalRevenue)),
			card("Total Orders", domain.FormatCount(snap.TotalOrders)),
			card("Conversion Rate", conversion.Percent()),
			card("Avg Order Value", aov.Currency()),
			card("New Users", domain.FormatCount(snap.NewUsers)),
			card("Bounce Rate", fmt.Sprintf("%.2f%%", snap.BounceRate)),
			card("Avg Session Duration", domain.FormatDuration(snap.AvgSessionDuration)),
		},
	}
}

func (s *AnalyticsService) Series(series domain.Series) dto.SeriesOutput {
	points := make([]dto.PointOutput, 0, len(series))
	for _, p := range series {
		points = append(points, point(p))
	}
	return dto.SeriesOutput{Points: points}
}

// Detail builds the analytics screen: latest-day cards and the device split.
func (s *AnalyticsService) Detail(series domain.Series) dto.DetailOutput {
	out := dto.DetailOutput{Series: s.Series(series)}
	latest, ok := series.Latest()
	if !ok {
		return out
	}
	out.HasLatest = true
	out.Latest = point(latest)
	out.Cards = []dto.CardOutput{
		card("New Users", domain.FormatCount(latest.NewUsers)),
		card("Returning Users", domain.FormatCount(latest.ReturningUsers)),
		card("Conversion Rate", latest.ConversionRate().Percent()),
	}
	total := latest.Devices.Total()
	for _, d := range []struct {
		name  string
		count float64
	}{
		{"Desktop", latest.Devices.Desktop},
		{"Mobile", latest.Devices.Mobile},
		{"Tablet", latest.Devices.Tablet},
	} {
		share := domain.Share(d.count, total)
		out.Devices = append(out.Devices, dto.DeviceShareOutput{Name: d.name, Count: d.count, Share: metric(share, share.Percent())})
	}
	return out
}

// Report renders the dashboard as markdown.
func (s *AnalyticsService) Report(snap domain.Snapshot, series domain.Series) string {
	stats := s.Snapshot(snap)
	var sb strings.Builder
	sb.WriteString("# Analytics report\n\n")
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	for _, c := range stats.Cards {
		fmt.Fprintf(&sb, "| %s | %s |\n", c.Title, c.Value)
	}
	if len(series) == 0 {
		sb.WriteString("\n_No daily analytics data._\n")
		return sb.String()
	}
	sb.WriteString("\n## Recent days\n\n")
	sb.WriteString("| Date | Revenue | Visitors | Orders | Conversion |\n|---|---|---|---|---|\n")
	for i, p := range series {
		if i == reportDays {
			break
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			p.Date.Label(),
			domain.FormatCurrency(p.Revenue),
			domain.FormatCount(p.Visitors),
			domain.FormatCount(p.Orders),
			p.ConversionRate().Percent(),
		)
	}
	return sb.String()
}

func point(p domain.Point) dto.PointOutput {
	conversion := p.ConversionRate()
	return dto.PointOutput{
		Date:               p.Date.Time,
		Label:              p.Date.Label(),
		Revenue:            p.Revenue,
		Visitors:           p.Visitors,
		Orders:             p.Orders,
		AvgSessionDuration: p.AvgSessionDuration,
		NewUsers:           p.NewUsers,
		ReturningUsers:     p.ReturningUsers,
		ConversionRate:     metric(conversion, conversion.Percent()),
		Desktop:            p.Devices.Desktop,
		Mobile:             p.Devices.Mobile,
		Tablet:             p.Devices.Tablet,
	}
}

func metric(m domain.Metric, display string) dto.MetricOutput {
	return dto.MetricOutput{Value: m.Value, Valid: m.Valid, Display: display}
}

func card(title, value string) dto.CardOutput {
	return dto.CardOutput{Title: title, Value: value, Available: value != domain.NotAvailable}
}
