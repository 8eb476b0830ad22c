package settings

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTogglesAndLanguageCycle(t *testing.T) {
	t.Parallel()
	m := New()
	_ = m.Show(context.Background())

	m, _ = m.Update(key("enter")) // notifications off
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter")) // email updates off
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("enter"))

	got := m.Local()
	if got.Notifications || got.EmailUpdates {
		t.Fatalf("toggles not applied: %+v", got)
	}
	if got.Language != "es" {
		t.Fatalf("en→es→fr→en→es expected es, got %q", got.Language)
	}
}

func TestDarkModeRowAsksShell(t *testing.T) {
	t.Parallel()
	m := New()
	m.SetDark(true)
	_ = m.Show(context.Background())
	m, _ = m.Update(key("down"))
	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("dark mode toggle should emit a command")
	}
	msg, ok := cmd().(SetThemeMsg)
	if !ok || msg.Dark {
		t.Fatalf("expected SetThemeMsg{Dark:false}, got %#v", msg)
	}
}

func TestShowResetsLocalState(t *testing.T) {
	t.Parallel()
	m := New()
	_ = m.Show(context.Background())
	m, _ = m.Update(key("enter"))
	if m.Local().Notifications {
		t.Fatal("toggle should apply")
	}
	_ = m.Show(context.Background())
	if m.Local() != defaults() {
		t.Fatalf("Show should reset to defaults, got %+v", m.Local())
	}
}
