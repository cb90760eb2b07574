package console

import "github.com/charmbracelet/lipgloss"

// Styles are built from one renderer so --no-color strips every colour at once.
type Styles struct {
	Header    lipgloss.Style
	Info      lipgloss.Style
	Score     lipgloss.Style
	Move      lipgloss.Style
	Key       lipgloss.Style
	Prompt    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Active    lipgloss.Style
	Players   [2]lipgloss.Style
}

// NewStyles returns the palette rendered through r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),

		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Score: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Move: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),

		Key: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),

		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),

		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Active: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),

		Players: [2]lipgloss.Style{
			r.NewStyle().Foreground(lipgloss.Color("#5DADE2")).Bold(true),
			r.NewStyle().Foreground(lipgloss.Color("#C39BD3")).Bold(true),
		},
	}
}
