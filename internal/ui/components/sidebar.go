package components

import (
	"strings"

	"statdeck/internal/ui/theme"
)

// Sidebar is the navigation column: screen entries, a logout entry and the
// signed-in user.
type Sidebar struct {
	Items   []string
	Cursor  int
	Active  int
	Focused bool
	User    string
}

func (s *Sidebar) Up() {
	if len(s.Items) == 0 {
		return
	}
	s.Cursor = (s.Cursor + len(s.Items) - 1) % len(s.Items)
}

func (s *Sidebar) Down() {
	if len(s.Items) == 0 {
		return
	}
	s.Cursor = (s.Cursor + 1) % len(s.Items)
}

func (s Sidebar) View(st theme.Styles, height int) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render("statdeck") + "\n\n")
	for i, item := range s.Items {
		marker := "  "
		if s.Focused && i == s.Cursor {
			marker = "› "
		}
		label := marker + item
		switch {
		case i == s.Active:
			sb.WriteString(st.Selected.Render(label))
		case s.Focused && i == s.Cursor:
			sb.WriteString(st.Hot.Render(label))
		default:
			sb.WriteString(label)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + st.Muted.Render("Logged in as "+s.User))

	border := st.Pane
	if s.Focused {
		border = st.PaneActive
	}
	return border.Width(22).Height(max(height-4, 1)).Render(sb.String())
}
