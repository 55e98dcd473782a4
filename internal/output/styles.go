package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the semantic output types.
type Styles struct {
	Info       lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Header     lipgloss.Style
	Parameter  lipgloss.Style
	Kind       lipgloss.Style
	Expression lipgloss.Style
	Missing    lipgloss.Style
	Muted      lipgloss.Style
}

// DefaultStyles returns the default Templar output styles.
func DefaultStyles() *Styles {
	return &Styles{
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Header:     lipgloss.NewStyle().Bold(true),
		Parameter:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Kind:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Expression: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Missing:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
