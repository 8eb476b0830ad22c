package settings

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"statdeck/internal/ui/theme"
)

// SetThemeMsg asks the shell to switch the shared theme.
type SetThemeMsg struct{ Dark bool }

type row int

const (
	rowNotifications row = iota
	rowDarkMode
	rowEmailUpdates
	rowLanguage
	rowCount
)

type language struct {
	Code  string
	Label string
}

var languages = []language{
	{Code: "en", Label: "English"},
	{Code: "es", Label: "Spanish"},
	{Code: "fr", Label: "French"},
}

// Local holds the settings that live only while the screen is shown.
type Local struct {
	Notifications bool
	EmailUpdates  bool
	Language      string
}

func defaults() Local {
	return Local{Notifications: true, EmailUpdates: true, Language: "en"}
}

type Model struct {
	local  Local
	dark   bool
	cursor row
	width  int
	height int
}

func New() Model {
	return Model{local: defaults()}
}

// Show resets the screen-local settings. There is nothing to fetch.
func (m *Model) Show(context.Context) tea.Cmd {
	m.local = defaults()
	m.cursor = rowNotifications
	return nil
}

func (m *Model) Hide() {}

// SetDark mirrors the shell's theme so the Dark Mode row reads true.
func (m *Model) SetDark(dark bool) { m.dark = dark }

func (m Model) Local() Local { return m.local }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = (m.cursor + rowCount - 1) % rowCount
		case "down", "j":
			m.cursor = (m.cursor + 1) % rowCount
		case "enter", " ":
			return m.activate(1)
		case "left", "h":
			if m.cursor == rowLanguage {
				return m.activate(-1)
			}
		case "right", "l":
			if m.cursor == rowLanguage {
				return m.activate(1)
			}
		}
	}
	return m, nil
}

func (m Model) activate(step int) (Model, tea.Cmd) {
	switch m.cursor {
	case rowNotifications:
		m.local.Notifications = !m.local.Notifications
	case rowEmailUpdates:
		m.local.EmailUpdates = !m.local.EmailUpdates
	case rowLanguage:
		m.local.Language = cycle(m.local.Language, step)
	case rowDarkMode:
		dark := !m.dark
		return m, func() tea.Msg { return SetThemeMsg{Dark: dark} }
	}
	return m, nil
}

func cycle(code string, step int) string {
	idx := 0
	for i, l := range languages {
		if l.Code == code {
			idx = i
			break
		}
	}
	idx = (idx + step + len(languages)) % len(languages)
	return languages[idx].Code
}

func languageLabel(code string) string {
	for _, l := range languages {
		if l.Code == code {
			return l.Label
		}
	}
	return code
}

func (m Model) View(st theme.Styles) string {
	type line struct {
		title, hint, value string
		on                 bool
	}
	toggle := func(on bool) string {
		if on {
			return "[on ]"
		}
		return "[off]"
	}
	lines := []line{
		{"Notifications", "Receive notifications about updates", toggle(m.local.Notifications), m.local.Notifications},
		{"Dark Mode", "Enable dark mode interface", toggle(m.dark), m.dark},
		{"Email Updates", "Receive email updates about activity", toggle(m.local.EmailUpdates), m.local.EmailUpdates},
		{"Language", "←/→ to change", "‹ " + languageLabel(m.local.Language) + " ›", true},
	}

	var sb strings.Builder
	sb.WriteString(st.Title.Render("Settings") + "\n\n")
	for i, l := range lines {
		marker := "  "
		title := l.title
		if row(i) == m.cursor {
			marker = "› "
			title = st.Selected.Render(title)
		}
		value := st.Muted.Render(l.value)
		if l.on {
			value = st.Good.Render(l.value)
		}
		sb.WriteString(marker + title + "  " + value + "\n")
		sb.WriteString("    " + st.Muted.Render(l.hint) + "\n\n")
	}
	sb.WriteString(st.Muted.Render("enter/space: toggle"))
	return sb.String()
}
