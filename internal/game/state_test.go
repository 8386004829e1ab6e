package game

import (
	"context"
	"testing"
)

// midRoundState builds a state with the first n slots answered, the
// way the session writes it.
func midRoundState(dateKey string, n int) *State {
	st := NewState(dateKey)
	st.Questions = fourQuestions()
	for i := 0; i < n; i++ {
		selected := i % 4
		st.Results[i] = QuestionResult{
			Answered:       true,
			Correct:        true,
			SelectedAnswer: &selected,
			Message:        "You found a shortcut through Lower Wacker!",
		}
	}
	if n == SlotCount {
		st.CurrentIndex = SlotCount - 1
		st.Completed = true
	} else {
		st.CurrentIndex = n
	}
	return st
}

func TestLoadOrInitRestoresWellFormedStates(t *testing.T) {
	tests := []struct {
		name     string
		answered int
	}{
		{"fresh", 0},
		{"mid round", 2},
		{"completed", SlotCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryRepo()
			want := midRoundState("2024-01-01", tt.answered)
			if err := repo.Save(context.Background(), want); err != nil {
				t.Fatalf("Save: %v", err)
			}

			s := LoadOrInit(context.Background(), repo, &stubSource{}, "2024-01-01")
			got := s.State()
			if got.AnsweredCount() != tt.answered {
				t.Errorf("answered = %d, want %d", got.AnsweredCount(), tt.answered)
			}
			if got.Completed != want.Completed {
				t.Errorf("completed = %v, want %v", got.Completed, want.Completed)
			}
			if tt.answered > 0 && !got.HasQuestions() {
				t.Error("restored state lost its questions")
			}
		})
	}
}

// Stored rows that parse but violate the session's invariants are
// discarded on load, never repaired.
func TestLoadOrInitRejectsTamperedStates(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(*State)
	}{
		{"gap in answered prefix", func(st *State) {
			st.Results[0].Answered = false
		}},
		{"index ahead of answered count", func(st *State) {
			st.CurrentIndex = 3
		}},
		{"index behind answered count", func(st *State) {
			st.CurrentIndex = 1
		}},
		{"index past last slot while incomplete", func(st *State) {
			st.CurrentIndex = SlotCount
		}},
		{"completed with unanswered slots", func(st *State) {
			st.Completed = true
		}},
		{"all answered but not completed", func(st *State) {
			for i := range st.Results {
				st.Results[i].Answered = true
			}
			st.CurrentIndex = SlotCount
		}},
		{"answers without cached questions", func(st *State) {
			st.Questions = nil
		}},
		{"wrong slot count", func(st *State) {
			st.Results = st.Results[:2]
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryRepo()
			st := midRoundState("2024-01-01", 2)
			tt.tamper(st)
			if err := repo.Save(context.Background(), st); err != nil {
				t.Fatalf("Save: %v", err)
			}

			s := LoadOrInit(context.Background(), repo, &stubSource{}, "2024-01-01")
			got := s.State()
			if got.AnsweredCount() != 0 || got.HasQuestions() || got.Completed || got.CurrentIndex != 0 {
				t.Errorf("tampered state was restored: %+v", got)
			}
		})
	}
}
