package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	usersdto "statdeck/internal/modules/users/dto"
	"statdeck/internal/ui/components"
	"statdeck/internal/ui/theme"
)

const (
	ErrorText = "Failed to fetch users"
	EmptyText = "No users"
)

type Port interface {
	ListUsers(ctx context.Context) (usersdto.ListOutput, error)
}

type LoadedMsg struct {
	Seq  uint64
	Data usersdto.ListOutput
	Err  error
}

type Model struct {
	port    Port
	logger  *zap.Logger
	fetch   components.Fetch
	spinner spinner.Model
	table   table.Model
	loading bool
	err     string
	data    usersdto.ListOutput
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
	t := table.New(table.WithColumns(columns(100)), table.WithFocused(true), table.WithHeight(10))
	return Model{port: port, logger: logger.Named("users"), spinner: sp, table: t}
}

func columns(width int) []table.Column {
	w := max(width-8, 60)
	return []table.Column{
		{Title: "Name", Width: w * 22 / 100},
		{Title: "Email", Width: w * 30 / 100},
		{Title: "Role", Width: w * 14 / 100},
		{Title: "Status", Width: w * 12 / 100},
		{Title: "Last Active", Width: w * 22 / 100},
	}
}

func (m *Model) Show(ctx context.Context) tea.Cmd {
	fetchCtx, seq := m.fetch.Begin(ctx)
	m.loading = true
	m.loaded = false
	m.err = ""
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		data, err := port.ListUsers(fetchCtx)
		return LoadedMsg{Seq: seq, Data: data, Err: err}
	})
}

func (m *Model) Hide() {
	m.fetch.Cancel()
	m.loading = false
}

func (m Model) Loading() bool { return m.loading }

func (m Model) Err() string { return m.err }

// Rows is what the table currently holds.
func (m Model) Rows() []table.Row { return m.table.Rows() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(m.width))
		m.table.SetHeight(max(m.height-6, 3))
		return m, nil

	case LoadedMsg:
		if !m.fetch.Current(msg.Seq) {
			return m, nil
		}
		m.fetch.Done(msg.Seq)
		m.loading = false
		if msg.Err != nil {
			if !errors.Is(msg.Err, context.Canceled) {
				m.logger.Error("load users", zap.Error(msg.Err))
			}
			m.err = ErrorText
			return m, nil
		}
		m.data = msg.Data
		m.loaded = true
		rows := make([]table.Row, 0, len(msg.Data.Users))
		for _, u := range msg.Data.Users {
			rows = append(rows, table.Row{u.Name, u.Email, u.Role, u.Status, u.LastActive})
		}
		m.table.SetRows(rows)
		m.table.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.loaded {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View(st theme.Styles) string {
	switch {
	case m.loading:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading users…")
	case m.err != "":
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.Bad.Render(m.err))
	case !m.loaded:
		return ""
	case len(m.data.Users) == 0:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.Muted.Render(EmptyText))
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(st.Palette.Surface1).
		BorderBottom(true).
		Foreground(st.Palette.Sapphire).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(st.Palette.Base).
		Background(st.Palette.Lavender)
	t := m.table
	t.SetStyles(styles)

	summary := fmt.Sprintf("%d users  %s  %s",
		len(m.data.Users),
		st.Good.Render(fmt.Sprintf("%d active", m.data.Active)),
		st.Muted.Render(fmt.Sprintf("%d inactive", m.data.Inactive)))
	return st.Title.Render("Users") + "  " + summary + "\n\n" + t.View()
}
