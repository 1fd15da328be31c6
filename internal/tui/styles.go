package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#E50914")
	muted  = lipgloss.Color("#8C8C8C")

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	subtleStyle = lipgloss.NewStyle().Foreground(muted)

	ratingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C518"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Width(cardWidth).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(accent).
				Bold(true)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTabStyle = tabStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(accent)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1)
)
