package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — green-phosphor CRT with amber highlights
var (
	Primary   = lipgloss.Color("#33FF66") // Phosphor Green
	Secondary = lipgloss.Color("#FFB000") // Amber
	Error     = lipgloss.Color("#FF4444") // Signal Red
	Text      = lipgloss.Color("#CCFFCC") // Pale Green
	TextDim   = lipgloss.Color("#4D8A5C") // Dim Green
	BgDark    = lipgloss.Color("#0A0F0A") // Near Black
	BgCard    = lipgloss.Color("#101910") // Dark Green-Black
	Border    = lipgloss.Color("#1F4D2E") // Deep Green
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
