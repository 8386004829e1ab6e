package trivia

import "fmt"

// ValidationError describes a generated batch that failed structural
// checks. Retryable distinguishes "the model produced a bad batch, ask
// again" from "the request itself is wrong".
type ValidationError struct {
	Reason    string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question validation failed: %s", e.Reason)
}

// validateBatch runs structural checks over a generated batch: right
// count, exactly 4 non-empty distinct options per question, index in
// range, non-empty text.
func validateBatch(questions []Question, wantCount int) error {
	if len(questions) != wantCount {
		return &ValidationError{
			Reason:    fmt.Sprintf("got %d questions, want %d", len(questions), wantCount),
			Retryable: true,
		}
	}

	for i, q := range questions {
		if q.Text == "" {
			return &ValidationError{
				Reason:    fmt.Sprintf("question %d has empty text", i),
				Retryable: true,
			}
		}
		if len(q.Options) != OptionsPerQuestion {
			return &ValidationError{
				Reason:    fmt.Sprintf("question %d has %d options, want %d", i, len(q.Options), OptionsPerQuestion),
				Retryable: true,
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return &ValidationError{
				Reason:    fmt.Sprintf("question %d correctIndex %d out of range", i, q.CorrectIndex),
				Retryable: true,
			}
		}

		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt == "" {
				return &ValidationError{
					Reason:    fmt.Sprintf("question %d has an empty option", i),
					Retryable: true,
				}
			}
			if seen[opt] {
				return &ValidationError{
					Reason:    fmt.Sprintf("question %d has duplicate option %q", i, opt),
					Retryable: true,
				}
			}
			seen[opt] = true
		}
	}

	return nil
}
