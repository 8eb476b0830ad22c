package components

import (
	"github.com/charmbracelet/lipgloss"

	"statdeck/internal/ui/theme"
)

// Card is one headline number.
type Card struct {
	Title     string
	Value     string
	Available bool
}

// CardRow lays cards side by side sharing width evenly. Unavailable values
// are dimmed.
func CardRow(st theme.Styles, cards []Card, width int) string {
	if len(cards) == 0 {
		return ""
	}
	cardW := width/len(cards) - 2
	if cardW < 14 {
		cardW = 14
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		value := st.Hot.Render(c.Value)
		if !c.Available {
			value = st.Muted.Render(c.Value)
		}
		rendered = append(rendered, st.Card.Width(cardW).Render(st.Muted.Render(c.Title)+"\n"+value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
