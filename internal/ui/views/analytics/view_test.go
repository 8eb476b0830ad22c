package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	analyticsdto "statdeck/internal/modules/analytics/dto"
	"statdeck/internal/ui/theme"
)

type fakePort struct {
	out analyticsdto.DetailOutput
	err error
}

func (f fakePort) Detail(context.Context) (analyticsdto.DetailOutput, error) { return f.out, f.err }

func load(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	_ = m.Show(context.Background())
	// Show hands out sequence 1 on a fresh model.
	data, err := m.port.Detail(context.Background())
	m, _ = m.Update(LoadedMsg{Seq: 1, Data: data, Err: err})
	return m
}

func TestEmptySeriesShowsPlaceholder(t *testing.T) {
	t.Parallel()
	m := load(t, New(fakePort{}, zap.NewNop()))
	if view := m.View(theme.For(false)); !strings.Contains(view, EmptyText) {
		t.Fatalf("expected %q in:\n%s", EmptyText, view)
	}
}

func TestLatestCardsAndDevices(t *testing.T) {
	t.Parallel()
	out := analyticsdto.DetailOutput{
		HasLatest: true,
		Latest:    analyticsdto.PointOutput{Label: "3/2/2026"},
		Series: analyticsdto.SeriesOutput{Points: []analyticsdto.PointOutput{
			{Label: "3/2/2026", AvgSessionDuration: 200},
			{Label: "3/1/2026", AvgSessionDuration: 100},
		}},
		Cards: []analyticsdto.CardOutput{
			{Title: "New Users", Value: "40", Available: true},
			{Title: "Returning Users", Value: "60", Available: true},
			{Title: "Conversion Rate", Value: "N/A"},
		},
		Devices: []analyticsdto.DeviceShareOutput{
			{Name: "Desktop", Count: 4, Share: analyticsdto.MetricOutput{Value: 50, Valid: true, Display: "50.00%"}},
			{Name: "Mobile", Count: 3, Share: analyticsdto.MetricOutput{Value: 37.5, Valid: true, Display: "37.50%"}},
			{Name: "Tablet", Count: 1, Share: analyticsdto.MetricOutput{Value: 12.5, Valid: true, Display: "12.50%"}},
		},
	}
	m := load(t, New(fakePort{out: out}, zap.NewNop()))
	view := m.View(theme.For(true))
	for _, want := range []string{"latest: 3/2/2026", "Returning Users", "N/A", "Session Duration", "Device Distribution", "37.50%"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFailureUsesStaticText(t *testing.T) {
	t.Parallel()
	m := load(t, New(fakePort{err: errors.New("status 500")}, zap.NewNop()))
	if m.Err() != ErrorText {
		t.Fatalf("err = %q", m.Err())
	}
}
