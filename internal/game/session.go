package game

import (
	"context"
	"fmt"
	"time"

	"github.com/deepdish/chicagotrail/internal/trivia"
)

// RevealDelay is the pause after an answer during which the correctness
// feedback is shown and further submissions are rejected. The caller
// drives the transition: schedule a timer for RevealDelay, then call
// FinishReveal. Cancel the timer if the session stops being observed.
const RevealDelay = 1500 * time.Millisecond

// Session drives one day's four-question round. All mutating
// operations persist the full state synchronously before returning, so
// a session interrupted mid-round resumes at the last answered slot.
//
// A Session has exactly one caller at a time: input is disabled during
// the reveal pause, and the fetch is guarded by the cached-questions
// check, so no two mutations are ever in flight together.
type Session struct {
	repo      Repo
	source    trivia.Source
	state     *State
	revealing bool
}

// LoadOrInit returns the session for dateKey, restoring stored state
// when it exists and matches the date. A stored entry for a different
// date, a missing entry, or an unreadable one all produce a fresh
// session: stale or corrupt state is treated as absent, never
// repaired.
func LoadOrInit(ctx context.Context, repo Repo, source trivia.Source, dateKey string) *Session {
	s := &Session{repo: repo, source: source}

	state, err := repo.Load(ctx, dateKey)
	if err == nil && state != nil && state.Date == dateKey && state.valid() {
		s.state = state
		return s
	}

	s.state = NewState(dateKey)
	return s
}

// State returns the current session state. Callers treat it as
// read-only; all mutation goes through Session methods.
func (s *Session) State() *State {
	return s.state
}

// Revealing reports whether a reveal pause is in progress.
func (s *Session) Revealing() bool {
	return s.revealing
}

// CurrentQuestion returns the question awaiting an answer, or nil if
// the session is completed or questions are not yet fetched.
func (s *Session) CurrentQuestion() *trivia.Question {
	if s.state.Completed || !s.state.HasQuestions() {
		return nil
	}
	return &s.state.Questions[s.state.CurrentIndex]
}

// FetchQuestions fetches and caches the day's question batch. It is an
// idempotent no-op once questions are cached for the session's date.
// On failure the questions stay empty and the error is returned for
// the caller to surface with a retry option; there is no automatic
// retry.
func (s *Session) FetchQuestions(ctx context.Context) error {
	if s.state.HasQuestions() {
		return nil
	}

	questions, err := s.source.Questions(ctx, s.state.Date, SlotCount)
	if err != nil {
		return fmt.Errorf("fetch questions: %w", err)
	}

	s.state.Questions = questions
	if err := s.repo.Save(ctx, s.state); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// SubmitAnswer records an answer for the current slot: it marks the
// slot answered, samples a flavor message, advances the index (or
// completes the session on the last slot), persists the state, and
// starts the reveal pause. The returned result is the slot that was
// just written.
//
// A nil result with a nil error means the submission was rejected as a
// no-op: session already completed, reveal in progress, questions not
// fetched, or index out of range. Rejections are silent because the
// presentation layer only offers valid inputs.
func (s *Session) SubmitAnswer(ctx context.Context, idx int) (*QuestionResult, error) {
	if s.state.Completed || s.revealing || !s.state.HasQuestions() {
		return nil, nil
	}
	q := s.state.Questions[s.state.CurrentIndex]
	if idx < 0 || idx >= len(q.Options) {
		return nil, nil
	}

	correct := idx == q.CorrectIndex
	selected := idx
	result := QuestionResult{
		Answered:       true,
		Correct:        correct,
		SelectedAnswer: &selected,
		Message:        randomMessage(correct),
	}
	s.state.Results[s.state.CurrentIndex] = result

	if s.state.CurrentIndex == SlotCount-1 {
		s.state.Completed = true
	} else {
		s.state.CurrentIndex++
	}

	if err := s.repo.Save(ctx, s.state); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.revealing = true
	return &result, nil
}

// FinishReveal ends the reveal pause, re-enabling submissions. Called
// by the UI timer after RevealDelay; calling it with no reveal in
// progress is a no-op.
func (s *Session) FinishReveal() {
	s.revealing = false
}
