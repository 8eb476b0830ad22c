package analytics

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	analyticsdto "statdeck/internal/modules/analytics/dto"
	"statdeck/internal/ui/components"
	"statdeck/internal/ui/theme"
)

const (
	ErrorText = "Failed to fetch analytics data"
	EmptyText = "No analytics data"
)

type Port interface {
	Detail(ctx context.Context) (analyticsdto.DetailOutput, error)
}

type LoadedMsg struct {
	Seq  uint64
	Data analyticsdto.DetailOutput
	Err  error
}

type Model struct {
	port    Port
	logger  *zap.Logger
	fetch   components.Fetch
	spinner spinner.Model
	loading bool
	err     string
	data    analyticsdto.DetailOutput
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
	return Model{port: port, logger: logger.Named("analytics"), spinner: sp}
}

func (m *Model) Show(ctx context.Context) tea.Cmd {
	fetchCtx, seq := m.fetch.Begin(ctx)
	m.loading = true
	m.loaded = false
	m.err = ""
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		data, err := port.Detail(fetchCtx)
		return LoadedMsg{Seq: seq, Data: data, Err: err}
	})
}

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
				m.logger.Error("load analytics detail", zap.Error(msg.Err))
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
			m.spinner.View()+" Loading analytics…")
	case m.err != "":
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.Bad.Render(m.err))
	case !m.loaded:
		return ""
	case !m.data.HasLatest:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.Muted.Render(EmptyText))
	}

	cards := make([]components.Card, len(m.data.Cards))
	for i, c := range m.data.Cards {
		cards[i] = components.Card{Title: c.Title, Value: c.Value, Available: c.Available}
	}
	chartW := max(m.width-4, 10)
	points := components.OldestFirst(m.data.Series.Points)

	var sb strings.Builder
	sb.WriteString(st.Title.Render("Analytics") + "  " + st.Muted.Render("latest: "+m.data.Latest.Label) + "\n\n")
	sb.WriteString(components.CardRow(st, cards, m.width) + "\n\n")

	sb.WriteString(st.Title.Render("Session Duration") + "\n")
	line := components.Sparkline(components.Values(points, func(p analyticsdto.PointOutput) float64 { return p.AvgSessionDuration }), chartW)
	sb.WriteString(lipgloss.NewStyle().Foreground(st.Palette.Lavender).Render(line) + "\n\n")

	sb.WriteString(st.Title.Render("Device Distribution") + "\n")
	colors := []lipgloss.Color{st.Palette.Sapphire, st.Palette.Green, st.Palette.Peach}
	bars := make([]components.Bar, 0, len(m.data.Devices))
	for i, d := range m.data.Devices {
		bars = append(bars, components.Bar{
			Label: d.Name,
			Value: d.Count,
			Note:  d.Share.Display,
			Color: colors[i%len(colors)],
		})
	}
	sb.WriteString(components.Bars(bars, chartW-20))
	return sb.String()
}
