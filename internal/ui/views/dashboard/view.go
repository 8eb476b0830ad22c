package dashboard

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	analyticsdto "statdeck/internal/modules/analytics/dto"
	"statdeck/internal/ui/components"
	"statdeck/internal/ui/theme"
)

// ErrorText is shown in place of the dashboard when a load fails.
const ErrorText = "Failed to fetch analytics data"

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Dashboard(ctx context.Context) (analyticsdto.DashboardOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Seq  uint64
	Data analyticsdto.DashboardOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	logger  *zap.Logger
	fetch   components.Fetch
	spinner spinner.Model
	loading bool
	err     string
	data    analyticsdto.DashboardOutput
	loaded  bool
	width   int
	height  int
}

func New(port Port, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{port: port, logger: logger.Named("dashboard"), spinner: sp}
}

// Show starts a fresh load; whatever was displayed before is dropped.
func (m *Model) Show(ctx context.Context) tea.Cmd {
	fetchCtx, seq := m.fetch.Begin(ctx)
	m.loading = true
	m.loaded = false
	m.err = ""
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		data, err := port.Dashboard(fetchCtx)
		return LoadedMsg{Seq: seq, Data: data, Err: err}
	})
}

// Hide cancels the in-flight load. Its result, if it still arrives, is
// ignored.
func (m *Model) Hide() {
	m.fetch.Cancel()
	m.loading = false
}

func (m Model) Loading() bool { return m.loading }

func (m Model) Err() string { return m.err }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		if !m.fetch.Current(msg.Seq) {
			return m, nil
		}
		m.fetch.Done(msg.Seq)
		m.loading = false
		if msg.Err != nil {
			if !errors.Is(msg.Err, context.Canceled) {
				m.logger.Error("load dashboard", zap.Error(msg.Err))
			}
			m.err = ErrorText
			return m, nil
		}
		m.data = msg.Data
		m.loaded = true

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View(st theme.Styles) string {
	switch {
	case m.loading:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading dashboard…")
	case m.err != "":
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.Bad.Render(m.err))
	case !m.loaded:
		return ""
	}

	cards := make([]components.Card, len(m.data.Stats.Cards))
	for i, c := range m.data.Stats.Cards {
		cards[i] = components.Card{Title: c.Title, Value: c.Value, Available: c.Available}
	}
	split := min(4, len(cards))

	points := components.OldestFirst(m.data.Series.Points)
	chartW := max(m.width-4, 10)

	var sb strings.Builder
	sb.WriteString(st.Title.Render("Dashboard") + "\n\n")
	sb.WriteString(components.CardRow(st, cards[:split], m.width) + "\n")
	sb.WriteString(components.CardRow(st, cards[split:], m.width) + "\n\n")

	sb.WriteString(st.Title.Render("Revenue Trend") + "\n")
	if len(points) == 0 {
		sb.WriteString(st.Muted.Render("No revenue data") + "\n")
	} else {
		line := components.Sparkline(components.Values(points, func(p analyticsdto.PointOutput) float64 { return p.Revenue }), chartW)
		sb.WriteString(lipgloss.NewStyle().Foreground(st.Palette.Green).Render(line) + "\n")
		sb.WriteString(st.Muted.Render(points[max(len(points)-chartW, 0)].Label+" … "+points[len(points)-1].Label) + "\n")
	}

	sb.WriteString("\n" + st.Title.Render("Visitors vs Orders") + "\n")
	sb.WriteString(visitorsVsOrders(st, points, chartW-14))
	return sb.String()
}

// visitorsVsOrders draws the most recent week as paired bars on one scale.
func visitorsVsOrders(st theme.Styles, points []analyticsdto.PointOutput, width int) string {
	if len(points) == 0 {
		return st.Muted.Render("No traffic data")
	}
	recent := points[max(len(points)-7, 0):]
	bars := make([]components.Bar, 0, 2*len(recent))
	for _, p := range recent {
		bars = append(bars,
			components.Bar{Label: p.Label + " V", Value: p.Visitors, Note: humanize.Commaf(p.Visitors), Color: st.Palette.Sapphire},
			components.Bar{Label: " O", Value: p.Orders, Note: humanize.Commaf(p.Orders), Color: st.Palette.Peach},
		)
	}
	return components.Bars(bars, width)
}
