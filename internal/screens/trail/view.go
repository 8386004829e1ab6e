package trail

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deepdish/chicagotrail/internal/game"
	"github.com/deepdish/chicagotrail/internal/ui/components"
	"github.com/deepdish/chicagotrail/internal/ui/layout"
	"github.com/deepdish/chicagotrail/internal/ui/theme"
)

func (s *TrailScreen) View(width, height int) string {
	switch {
	case s.fetchErr != "":
		return s.renderError(width, height)
	case s.loading:
		return s.renderLoading(width, height)
	case s.session.Revealing():
		return s.renderReveal(width, height)
	case !s.session.State().HasQuestions():
		return s.renderLoading(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func (s *TrailScreen) renderLoading(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Body.Render("Loading today's trail challenge..."),
		"",
		s.spin.View(),
	)
	return layout.Center(content, width, height)
}

func (s *TrailScreen) renderError(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Incorrect.Render(s.fetchErr),
		"",
		s.retry.View(),
	)
	return layout.Center(content, width, height)
}

func (s *TrailScreen) renderQuestion(width, height int) string {
	state := s.session.State()
	amber := lipgloss.NewStyle().Foreground(theme.Secondary)

	header := amber.Render(fmt.Sprintf("── DAILY TRAIL CHALLENGE %d/%d ──",
		state.CurrentIndex+1, game.SlotCount))

	card := theme.Card.Render(strings.Join([]string{
		header,
		"",
		s.answers.View(),
	}, "\n"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		components.PizzaProgress(state.Results),
		"",
		card,
	)
	return layout.Center(content, width, height)
}

func (s *TrailScreen) renderReveal(width, height int) string {
	state := s.session.State()

	var verdict, message string
	if s.lastResult != nil {
		if s.lastResult.Correct {
			verdict = theme.Correct.Render("★ CORRECT ★")
		} else {
			verdict = theme.Incorrect.Render("✖ WRONG ✖")
		}
		message = theme.Subtitle.Render(s.lastResult.Message)
	}

	card := theme.Card.Render(strings.Join([]string{
		s.answers.View(),
		verdict,
		message,
		"",
		theme.Hint.Render("Checking the trail map..."),
	}, "\n"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		components.PizzaProgress(state.Results),
		"",
		card,
	)
	return layout.Center(content, width, height)
}
