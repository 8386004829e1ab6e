// Package trail runs the four-question daily round: fetching the
// batch, collecting answers, and pausing on each reveal.
package trail

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/deepdish/chicagotrail/internal/game"
	"github.com/deepdish/chicagotrail/internal/router"
	"github.com/deepdish/chicagotrail/internal/screen"
	"github.com/deepdish/chicagotrail/internal/screens/summary"
	"github.com/deepdish/chicagotrail/internal/trivia"
	"github.com/deepdish/chicagotrail/internal/ui/components"
	"github.com/deepdish/chicagotrail/internal/ui/layout"
)

// TrailScreen implements screen.Screen for the active round.
type TrailScreen struct {
	session    *game.Session
	answers    components.AnswerList
	spin       spinner.Model
	retry      components.Button
	loading    bool
	fetchErr   string
	lastResult *game.QuestionResult
}

var _ screen.Screen = (*TrailScreen)(nil)
var _ screen.KeyHintProvider = (*TrailScreen)(nil)

// New creates a TrailScreen for the date, restoring any stored
// progress for that day.
func New(repo game.Repo, source trivia.Source, dateKey string) *TrailScreen {
	s := &TrailScreen{
		session: game.LoadOrInit(context.Background(), repo, source, dateKey),
		spin:    components.NewSpinner(),
	}
	s.retry = components.NewButton("TRY AGAIN", true, s.startFetch)
	return s
}

func (s *TrailScreen) Title() string {
	return "Daily Trail Challenge"
}

func (s *TrailScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.fetchErr != "":
		return []layout.KeyHint{
			{Key: "Enter", Description: "Try again"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case s.loading || s.session.Revealing():
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (s *TrailScreen) Init() tea.Cmd {
	if s.session.State().Completed {
		return s.showSummary()
	}
	if s.session.State().HasQuestions() {
		s.resetAnswers()
		return nil
	}
	return tea.Batch(s.spin.Tick, s.startFetch())
}

func (s *TrailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsFetchedMsg:
		return s.handleFetched(msg)

	case revealDoneMsg:
		return s.handleRevealDone()

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *TrailScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading || s.session.Revealing() {
		return s, nil
	}

	if s.fetchErr != "" {
		var cmd tea.Cmd
		s.retry, cmd = s.retry.Update(msg)
		return s, cmd
	}

	if !s.session.State().HasQuestions() {
		return s, nil
	}

	var cmd tea.Cmd
	s.answers, cmd = s.answers.Update(msg)
	if !s.answers.Submitted {
		return s, cmd
	}
	return s, s.submit(s.answers.ChosenIndex)
}

// startFetch kicks off the one-shot question fetch.
func (s *TrailScreen) startFetch() tea.Cmd {
	s.loading = true
	s.fetchErr = ""
	fetch := func() tea.Msg {
		return questionsFetchedMsg{Err: s.session.FetchQuestions(context.Background())}
	}
	return tea.Batch(s.spin.Tick, fetch)
}

func (s *TrailScreen) handleFetched(msg questionsFetchedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.fetchErr = "The trail is impassable... Try again later."
		return s, nil
	}
	s.resetAnswers()
	return s, nil
}

// submit records the chosen answer and starts the reveal pause.
func (s *TrailScreen) submit(idx int) tea.Cmd {
	result, err := s.session.SubmitAnswer(context.Background(), idx)
	if err != nil {
		s.fetchErr = "Could not save your progress. Try again."
		return nil
	}
	if result == nil {
		return nil
	}
	s.lastResult = result
	return tea.Tick(game.RevealDelay, func(time.Time) tea.Msg {
		return revealDoneMsg{}
	})
}

func (s *TrailScreen) handleRevealDone() (screen.Screen, tea.Cmd) {
	s.session.FinishReveal()
	s.lastResult = nil
	if s.session.State().Completed {
		return s, s.showSummary()
	}
	s.resetAnswers()
	return s, nil
}

// resetAnswers builds the answer list for the current question.
func (s *TrailScreen) resetAnswers() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}
	s.answers = components.NewAnswerList(q.Text, q.Options, q.CorrectIndex)
}

func (s *TrailScreen) showSummary() tea.Cmd {
	state := s.session.State()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(state)}
	}
}
