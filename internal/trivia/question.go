package trivia

import "context"

// QuestionsPerDay is the number of questions in a daily session.
const QuestionsPerDay = 4

// OptionsPerQuestion is the number of multiple-choice options.
const OptionsPerQuestion = 4

// Question is one multiple-choice trivia question. The JSON field names
// are the wire format shared by the serve endpoint, the LLM tool call,
// and the persisted session, so they must not change.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Source supplies the day's questions. The game treats it as an opaque
// supplier: any failure is surfaced as a single retryable error.
type Source interface {
	// Questions returns count questions for the given date key.
	Questions(ctx context.Context, dateKey string, count int) ([]Question, error)
}
