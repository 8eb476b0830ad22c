package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	authdto "statdeck/internal/modules/auth/dto"
	apperrors "statdeck/internal/platform/errors"
	"statdeck/internal/ui/theme"
)

type Port interface {
	Authenticate(ctx context.Context, input authdto.CredentialsInput) (authdto.SessionOutput, error)
}

// DoneMsg carries the outcome of a login attempt. The shell acts on success;
// the view renders failures inline.
type DoneMsg struct {
	Session authdto.SessionOutput
	Err     error
}

type Model struct {
	port       Port
	logger     *zap.Logger
	email      textinput.Model
	password   textinput.Model
	spinner    spinner.Model
	focus      int
	submitting bool
	err        string
	width      int
	height     int
}

func New(port Port, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Prompt = "Email    "

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Prompt = "Password "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{port: port, logger: logger.Named("login"), email: email, password: password, spinner: sp}
}

// Reset clears the form for a fresh login and focuses the email field.
func (m *Model) Reset() tea.Cmd {
	m.email.SetValue("")
	m.password.SetValue("")
	m.err = ""
	m.submitting = false
	m.focus = 0
	m.password.Blur()
	return m.email.Focus()
}

func (m Model) Err() string { return m.err }

func (m Model) Submitting() bool { return m.submitting }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DoneMsg:
		m.submitting = false
		if msg.Err != nil {
			m.err = describe(msg.Err)
			m.password.SetValue("")
		}
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down", "shift+tab", "up":
			return m, m.switchFocus()
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchFocus() tea.Cmd {
	if m.focus == 0 {
		m.focus = 1
		m.email.Blur()
		return m.password.Focus()
	}
	m.focus = 0
	m.password.Blur()
	return m.email.Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	input := authdto.CredentialsInput{
		Email:    strings.TrimSpace(m.email.Value()),
		Password: m.password.Value(),
	}
	if input.Email == "" || input.Password == "" {
		m.err = "Email and password are required"
		return m, nil
	}
	m.submitting = true
	m.err = ""
	port, logger := m.port, m.logger
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := port.Authenticate(context.Background(), input)
		if err != nil {
			logger.Warn("login failed", zap.String("email", input.Email), zap.Error(err))
		}
		return DoneMsg{Session: out, Err: err}
	})
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "Email and password are required"
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return "Invalid email or password"
	case errors.Is(err, apperrors.ErrUnavailable):
		return "Server unavailable, try again later"
	default:
		return "Login failed"
	}
}

func (m Model) View(st theme.Styles) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render("Sign in to statdeck") + "\n\n")
	sb.WriteString(m.email.View() + "\n")
	sb.WriteString(m.password.View() + "\n\n")
	switch {
	case m.submitting:
		sb.WriteString(m.spinner.View() + " Signing in…")
	case m.err != "":
		sb.WriteString(st.Bad.Render(m.err))
	default:
		sb.WriteString(st.Muted.Render("tab: switch field  enter: sign in  ctrl+c: quit"))
	}
	box := st.PaneActive.Width(52).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
