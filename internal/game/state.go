// Package game implements the daily session state machine: one
// four-question trivia round per calendar day, persisted after every
// mutation so an interrupted session resumes at the last answered slot.
package game

import (
	"github.com/deepdish/chicagotrail/internal/trivia"
)

// SlotCount is the number of question slots in a daily session.
const SlotCount = trivia.QuestionsPerDay

// QuestionResult records the outcome of one question slot. A slot is
// written exactly once, on first answer submission, and never mutated
// afterwards.
type QuestionResult struct {
	Answered       bool   `json:"answered"`
	Correct        bool   `json:"correct"`
	SelectedAnswer *int   `json:"selectedAnswer"`
	Message        string `json:"message"`
}

// State is the root persisted entity for one calendar day's session.
// The JSON encoding is field-for-field; there is no version field, so
// any incompatible stored shape is discarded by the date-mismatch rule.
type State struct {
	Date         string            `json:"date"`
	Questions    []trivia.Question `json:"questions"`
	Results      []QuestionResult  `json:"results"`
	CurrentIndex int               `json:"currentIndex"`
	Completed    bool              `json:"completed"`
}

// NewState constructs a fresh session for the given date key: no
// questions cached, all four slots unanswered, pointing at slot 0.
func NewState(dateKey string) *State {
	return &State{
		Date:         dateKey,
		Questions:    []trivia.Question{},
		Results:      make([]QuestionResult, SlotCount),
		CurrentIndex: 0,
		Completed:    false,
	}
}

// AnsweredCount returns how many slots have been answered.
func (s *State) AnsweredCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Answered {
			n++
		}
	}
	return n
}

// Score returns the number of correctly answered slots.
func (s *State) Score() int {
	n := 0
	for _, r := range s.Results {
		if r.Answered && r.Correct {
			n++
		}
	}
	return n
}

// HasQuestions reports whether the question batch has been fetched and
// cached for this session's date.
func (s *State) HasQuestions() bool {
	return len(s.Questions) > 0
}

// valid reports whether a loaded state has the shape this package
// writes: answered slots form a prefix, the index sits on the first
// unanswered slot while incomplete, completion means all slots
// answered, and answers only exist once questions are cached.
// Anything else came from a corrupt or incompatible entry and is
// treated as absent.
func (s *State) valid() bool {
	if s.Date == "" || len(s.Results) != SlotCount {
		return false
	}
	if len(s.Questions) != 0 && len(s.Questions) != SlotCount {
		return false
	}

	answered := 0
	for i, r := range s.Results {
		if r.Answered {
			if i != answered {
				return false // gap in the answered prefix
			}
			answered++
		}
	}

	if s.Completed != (answered == SlotCount) {
		return false
	}
	if s.Completed {
		// Index is meaningless once completed; just keep it in range.
		if s.CurrentIndex < 0 || s.CurrentIndex > SlotCount {
			return false
		}
	} else if s.CurrentIndex != answered {
		return false
	}
	if answered > 0 && len(s.Questions) == 0 {
		return false
	}
	return true
}
