package app

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	analyticsdto "statdeck/internal/modules/analytics/dto"
	authdto "statdeck/internal/modules/auth/dto"
	usersdto "statdeck/internal/modules/users/dto"
	"statdeck/internal/ui/components"
	loginview "statdeck/internal/ui/views/login"
	"statdeck/internal/ui/views/placeholder"
	settingsview "statdeck/internal/ui/views/settings"
)

type fakeAuth struct {
	restore authdto.RestoreOutput
	logouts atomic.Int32
}

func (f *fakeAuth) Authenticate(context.Context, authdto.CredentialsInput) (authdto.SessionOutput, error) {
	return authdto.SessionOutput{UserName: "Ada", Token: "tok"}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts.Add(1)
	return nil
}

func (f *fakeAuth) Restore(context.Context) (authdto.RestoreOutput, error) { return f.restore, nil }

type fakeAnalytics struct{}

func (fakeAnalytics) Dashboard(context.Context) (analyticsdto.DashboardOutput, error) {
	return analyticsdto.DashboardOutput{}, nil
}

func (fakeAnalytics) Detail(context.Context) (analyticsdto.DetailOutput, error) {
	return analyticsdto.DetailOutput{}, nil
}

type fakeUsers struct{}

func (fakeUsers) ListUsers(context.Context) (usersdto.ListOutput, error) { return usersdto.ListOutput{}, nil }

func newModel(t *testing.T, auth *fakeAuth, opts Options) Model {
	t.Helper()
	m := NewModel(context.Background(), auth, fakeAnalytics{}, fakeUsers{}, opts, zaptest.NewLogger(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+l":
			msg = tea.KeyMsg{Type: tea.KeyCtrlL}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = update(t, m, msg)
	}
	return m
}

// signedIn returns a model that restored a session for Ada.
func signedIn(t *testing.T, auth *fakeAuth, opts Options) Model {
	t.Helper()
	auth.restore = authdto.RestoreOutput{Authenticated: true, Session: authdto.SessionOutput{UserName: "Ada", Token: "tok"}}
	m, _ := update(t, newModel(t, auth, opts), restoredMsg{out: auth.restore})
	if !m.Authenticated() {
		t.Fatal("restore should sign in")
	}
	return m
}

// drain runs cmd and every batch it expands into.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestStartupWithoutSessionShowsLoginOnly(t *testing.T) {
	t.Parallel()
	m, _ := update(t, newModel(t, &fakeAuth{}, Options{}), restoredMsg{})
	if m.Authenticated() {
		t.Fatal("no stored session must leave the shell signed out")
	}
	view := m.View()
	if !strings.Contains(view, "Sign in") || strings.Contains(view, "Logged in as") {
		t.Fatalf("expected the login view only:\n%s", view)
	}
}

func TestDiscardedSessionIsReported(t *testing.T) {
	t.Parallel()
	m, _ := update(t, newModel(t, &fakeAuth{}, Options{}), restoredMsg{out: authdto.RestoreOutput{Discarded: true}})
	if m.Authenticated() || !strings.Contains(m.status, "cleared") {
		t.Fatalf("discarded session should be signed out with a notice, status=%q", m.status)
	}
}

func TestRestoredSessionShowsDefaultScreenAndUser(t *testing.T) {
	t.Parallel()
	m := signedIn(t, &fakeAuth{}, Options{})
	if m.ActiveScreen() != "dashboard" {
		t.Fatalf("active = %q", m.ActiveScreen())
	}
	if view := m.View(); !strings.Contains(view, "Logged in as Ada") {
		t.Fatalf("sidebar should name the user:\n%s", view)
	}
}

func TestLoginSuccessEntersStartScreen(t *testing.T) {
	t.Parallel()
	m, _ := update(t, newModel(t, &fakeAuth{}, Options{StartScreen: "users"}), restoredMsg{})
	m, _ = update(t, m, loginview.DoneMsg{Session: authdto.SessionOutput{UserName: "Grace", Token: "t"}})
	if !m.Authenticated() || m.ActiveScreen() != "users" {
		t.Fatalf("expected users screen after login, got auth=%v screen=%q", m.Authenticated(), m.ActiveScreen())
	}
}

func TestNavigationKeys(t *testing.T) {
	t.Parallel()
	m := signedIn(t, &fakeAuth{}, Options{})

	m = press(t, m, "3")
	if m.ActiveScreen() != "users" {
		t.Fatalf("digit 3 should open users, got %q", m.ActiveScreen())
	}
	m = press(t, m, "tab")
	if m.ActiveScreen() != "settings" {
		t.Fatalf("tab should advance to settings, got %q", m.ActiveScreen())
	}
	m = press(t, m, "tab")
	if m.ActiveScreen() != "dashboard" {
		t.Fatalf("tab should wrap to dashboard, got %q", m.ActiveScreen())
	}
	m = press(t, m, "esc", "down", "enter")
	if m.ActiveScreen() != "analytics" {
		t.Fatalf("sidebar down+enter should open analytics, got %q", m.ActiveScreen())
	}
}

func TestLogoutFromAnyScreen(t *testing.T) {
	t.Parallel()
	for _, via := range []string{"ctrl+l", "sidebar", "palette"} {
		t.Run(via, func(t *testing.T) {
			auth := &fakeAuth{}
			m := signedIn(t, auth, Options{})
			m = press(t, m, "2")

			var cmd tea.Cmd
			switch via {
			case "ctrl+l":
				m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
			case "sidebar":
				m = press(t, m, "esc", "up", "up")
				m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			case "palette":
				m, cmd = update(t, m, components.PaletteSubmitMsg{Input: "logout"})
			}

			if m.Authenticated() {
				t.Fatal("logout must leave the signed-in state")
			}
			if m.ActiveScreen() != "dashboard" {
				t.Fatalf("screen should reset to default, got %q", m.ActiveScreen())
			}
			drain(cmd)
			if auth.logouts.Load() != 1 {
				t.Fatalf("expected one Logout call, got %d", auth.logouts.Load())
			}
			if view := m.View(); !strings.Contains(view, "Sign in") {
				t.Fatalf("expected login view after logout:\n%s", view)
			}
		})
	}
}

func TestUnknownScreenRendersPlaceholder(t *testing.T) {
	t.Parallel()
	m := signedIn(t, &fakeAuth{}, Options{})
	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "goto reports"})
	if !m.Authenticated() || m.ActiveScreen() != "reports" {
		t.Fatalf("unknown screen should keep the shell signed in, got %q", m.ActiveScreen())
	}
	if view := m.View(); !strings.Contains(view, placeholder.Text) {
		t.Fatalf("expected placeholder:\n%s", view)
	}
	m = press(t, m, "tab")
	if m.ActiveScreen() != "dashboard" {
		t.Fatalf("tab from placeholder should land on dashboard, got %q", m.ActiveScreen())
	}
}

func TestUnknownDefaultScreenStillSignsIn(t *testing.T) {
	t.Parallel()
	m := signedIn(t, &fakeAuth{}, Options{DefaultScreen: "nowhere"})
	if m.ActiveScreen() != "nowhere" || !strings.Contains(m.View(), placeholder.Text) {
		t.Fatal("unknown default screen should render the placeholder")
	}
}

func TestThemeToggleAndSettingsMessage(t *testing.T) {
	t.Parallel()
	m := signedIn(t, &fakeAuth{}, Options{Dark: false})
	m = press(t, m, "t")
	if !m.Dark() {
		t.Fatal("t should switch to dark")
	}
	m, _ = update(t, m, settingsview.SetThemeMsg{Dark: false})
	if m.Dark() {
		t.Fatal("settings message should switch back to light")
	}
	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "theme"})
	if !m.Dark() {
		t.Fatal("palette theme should toggle")
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m := signedIn(t, &fakeAuth{}, Options{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should produce tea.QuitMsg")
	}
}
