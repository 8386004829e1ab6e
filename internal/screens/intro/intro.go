// Package intro shows the daily mission transmission before the
// questions begin.
package intro

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deepdish/chicagotrail/internal/mission"
	"github.com/deepdish/chicagotrail/internal/router"
	"github.com/deepdish/chicagotrail/internal/screen"
	"github.com/deepdish/chicagotrail/internal/ui/components"
	"github.com/deepdish/chicagotrail/internal/ui/layout"
	"github.com/deepdish/chicagotrail/internal/ui/theme"
)

// Transmission lines appear one at a time on these delays.
var stepDelays = []time.Duration{
	800 * time.Millisecond,
	2200 * time.Millisecond,
	3800 * time.Millisecond,
}

type stepMsg int

// IntroScreen reveals the mission line by line, then offers the
// HIT THE TRAIL button.
type IntroScreen struct {
	mission      mission.Mission
	dateKey      string
	step         int
	button       components.Button
	trailFactory func() screen.Screen
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen for the date that will transition to the
// screen produced by trailFactory.
func New(dateKey string, trailFactory func() screen.Screen) *IntroScreen {
	s := &IntroScreen{
		mission:      mission.Generate(dateKey),
		dateKey:      dateKey,
		trailFactory: trailFactory,
	}
	s.button = components.NewButton("HIT THE TRAIL", true, s.transition)
	return s
}

func (s *IntroScreen) Title() string {
	return "Daily Mission"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	if s.step < len(stepDelays) {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Hit the trail"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(stepDelays))
	for i, d := range stepDelays {
		step := i + 1
		cmds[i] = tea.Tick(d, func(time.Time) tea.Msg {
			return stepMsg(step)
		})
	}
	return tea.Batch(cmds...)
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		if int(msg) > s.step {
			s.step = int(msg)
		}
		return s, nil

	case tea.KeyMsg:
		if s.step < len(stepDelays) {
			return s, nil
		}
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *IntroScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	trail := s.trailFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: trail}
	}
}

func (s *IntroScreen) View(width, height int) string {
	amber := lipgloss.NewStyle().Foreground(theme.Secondary)
	glow := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	lines := []string{
		amber.Render("── INCOMING TRANSMISSION ──"),
		"",
		theme.Body.Render(fmt.Sprintf("%s needs you to bring corner pieces of pizza!",
			glow.Render(s.mission.Character))),
	}

	if s.step >= 1 {
		lines = append(lines, "",
			theme.Hint.Render("You are currently at ")+glow.Render(s.mission.StartLocation))
	}
	if s.step >= 2 {
		lines = append(lines,
			theme.Hint.Render("Meet them at ")+glow.Render(s.mission.EndLocation))
	}
	if s.step >= 3 {
		lines = append(lines, "",
			theme.Hint.Render("Answer trivia questions along the trail to earn your slices!"),
			"",
			s.button.View())
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return layout.Center(card, width, height)
}
