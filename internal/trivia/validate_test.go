package trivia

import "testing"

func goodBatch() []Question {
	return []Question{
		{Text: "Which river flows backwards?", Options: []string{"Chicago River", "Des Plaines", "Calumet", "Fox"}, CorrectIndex: 0},
		{Text: "What team plays at Wrigley Field?", Options: []string{"White Sox", "Cubs", "Bears", "Fire"}, CorrectIndex: 1},
		{Text: "Which street is the Magnificent Mile on?", Options: []string{"State", "Wacker", "Michigan Avenue", "Clark"}, CorrectIndex: 2},
		{Text: "What is the Willis Tower's old name?", Options: []string{"Hancock", "Tribune", "Aon", "Sears Tower"}, CorrectIndex: 3},
	}
}

func TestValidateBatchAccepts(t *testing.T) {
	if err := validateBatch(goodBatch(), 4); err != nil {
		t.Fatalf("validateBatch(good) = %v, want nil", err)
	}
}

func TestValidateBatchRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Question) []Question
	}{
		{"wrong count", func(qs []Question) []Question { return qs[:3] }},
		{"empty text", func(qs []Question) []Question { qs[0].Text = ""; return qs }},
		{"three options", func(qs []Question) []Question { qs[1].Options = qs[1].Options[:3]; return qs }},
		{"index too high", func(qs []Question) []Question { qs[2].CorrectIndex = 4; return qs }},
		{"negative index", func(qs []Question) []Question { qs[2].CorrectIndex = -1; return qs }},
		{"empty option", func(qs []Question) []Question { qs[3].Options[1] = ""; return qs }},
		{"duplicate option", func(qs []Question) []Question { qs[3].Options[1] = qs[3].Options[0]; return qs }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBatch(tt.mutate(goodBatch()), 4)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if !verr.Retryable {
				t.Errorf("ValidationError.Retryable = false, want true")
			}
		})
	}
}
