package report

import "github.com/charmbracelet/lipgloss"

// role names what a piece of report text is, independent of its color.
type role int

const (
	roleSuccess  role = iota // "Generated"
	rolePath                 // stylesheet paths
	roleSelector             // selectors and rule details
	roleNotice               // skipped and ignored icons
	roleFailure              // error prefix
)

// palette maps roles to ANSI colors. Lipgloss degrades them to what the terminal supports.
var palette = map[role]lipgloss.Style{
	roleSuccess:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	rolePath:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	roleSelector: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	roleNotice:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	roleFailure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
}

// paint renders text in the style of its role, or returns it unchanged without colors.
func (r *Reporter) paint(ro role, text string) string {
	style, ok := palette[ro]
	if !r.useColors || !ok {
		return text
	}
	return style.Render(text)
}
