// Package summary shows the end-of-day result once all four slots are
// answered: the pizza tracker, the outcome tier, and each slot's
// trail message.
package summary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deepdish/chicagotrail/internal/game"
	"github.com/deepdish/chicagotrail/internal/screen"
	"github.com/deepdish/chicagotrail/internal/ui/components"
	"github.com/deepdish/chicagotrail/internal/ui/layout"
	"github.com/deepdish/chicagotrail/internal/ui/theme"
)

// SummaryScreen is a read-only projection of a completed session.
type SummaryScreen struct {
	state *game.State
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a session state.
func New(state *game.State) *SummaryScreen {
	return &SummaryScreen{state: state}
}

func (s *SummaryScreen) Title() string {
	return "Trail's End"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "enter":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	outcome := game.OutcomeFor(s.state.Score())

	title := theme.Title.Render(outcome.Title)
	message := theme.Subtitle.Render(outcome.Message)

	var slotLines []string
	for _, r := range s.state.Results {
		mark := theme.Incorrect.Render("✖")
		if r.Correct {
			mark = theme.Correct.Render("★")
		}
		slotLines = append(slotLines, mark+" "+theme.Body.Render(r.Message))
	}

	card := theme.Card.Render(strings.Join([]string{
		title,
		message,
		"",
		strings.Join(slotLines, "\n"),
	}, "\n"))

	footer := theme.Card.Render(strings.Join([]string{
		theme.Hint.Render("The trail continues tomorrow..."),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("Come back for a new challenge!"),
	}, "\n"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		components.PizzaProgress(s.state.Results),
		"",
		card,
		"",
		footer,
	)
	return layout.Center(content, width, height)
}
