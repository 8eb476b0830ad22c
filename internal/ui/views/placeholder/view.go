package placeholder

import (
	"github.com/charmbracelet/lipgloss"

	"statdeck/internal/ui/theme"
)

const Text = "Screen under construction"

// View renders the stand-in for a screen name the shell does not know.
func View(st theme.Styles, name string, width, height int) string {
	body := st.Title.Render(Text) + "\n" + st.Muted.Render("no screen named \""+name+"\"")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
