// ABOUTME: Shared lipgloss styles for consistent CLI output
// ABOUTME: Defines colors, table styles, and status indicators

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Green   = lipgloss.Color("#10B981")
	Amber   = lipgloss.Color("#F59E0B")
	Red     = lipgloss.Color("#EF4444")
	Muted   = lipgloss.Color("#6B7280")
	Text    = lipgloss.Color("#F9FAFB")
	Surface = lipgloss.Color("#374151")

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Table styles
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Muted)

	MetricName = lipgloss.NewStyle().
			Foreground(Muted)

	MetricValue = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Bar chart
	Bar = lipgloss.NewStyle().
		Foreground(Primary)

	BarLabel = lipgloss.NewStyle().
			Foreground(Muted)
)
