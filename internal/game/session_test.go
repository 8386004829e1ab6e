package game

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/deepdish/chicagotrail/internal/trivia"
)

type stubSource struct {
	questions []trivia.Question
	err       error
	calls     int
}

func (s *stubSource) Questions(_ context.Context, _ string, _ int) ([]trivia.Question, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}

func fourQuestions() []trivia.Question {
	qs := make([]trivia.Question, SlotCount)
	for i := range qs {
		qs[i] = trivia.Question{
			Text:         fmt.Sprintf("Question %d?", i+1),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: i % 4,
		}
	}
	return qs
}

// readySession returns a session with questions already fetched and
// cached, sharing the given repo.
func readySession(t *testing.T, repo Repo, dateKey string) *Session {
	t.Helper()
	s := LoadOrInit(context.Background(), repo, &stubSource{questions: fourQuestions()}, dateKey)
	if err := s.FetchQuestions(context.Background()); err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}
	return s
}

// answer submits idx for the current slot and immediately ends the
// reveal, for tests that don't care about the pause.
func answer(t *testing.T, s *Session, idx int) *QuestionResult {
	t.Helper()
	res, err := s.SubmitAnswer(context.Background(), idx)
	if err != nil {
		t.Fatalf("SubmitAnswer(%d): %v", idx, err)
	}
	s.FinishReveal()
	return res
}

func TestLoadOrInitFresh(t *testing.T) {
	s := LoadOrInit(context.Background(), NewMemoryRepo(), &stubSource{}, "2024-01-01")

	st := s.State()
	if st.Date != "2024-01-01" {
		t.Errorf("date = %q", st.Date)
	}
	if len(st.Questions) != 0 {
		t.Errorf("fresh session has %d questions", len(st.Questions))
	}
	if len(st.Results) != SlotCount {
		t.Fatalf("results len = %d, want %d", len(st.Results), SlotCount)
	}
	for i, r := range st.Results {
		if r.Answered {
			t.Errorf("slot %d answered in fresh session", i)
		}
	}
	if st.CurrentIndex != 0 || st.Completed {
		t.Errorf("currentIndex=%d completed=%v", st.CurrentIndex, st.Completed)
	}
}

func TestLoadOrInitExpiry(t *testing.T) {
	repo := NewMemoryRepo()
	old := readySession(t, repo, "2024-01-01")
	answer(t, old, 0)

	s := LoadOrInit(context.Background(), repo, &stubSource{}, "2024-01-02")
	st := s.State()
	if st.Date != "2024-01-02" {
		t.Errorf("date = %q", st.Date)
	}
	if st.CurrentIndex != 0 || st.Completed || st.AnsweredCount() != 0 {
		t.Errorf("stale session leaked into fresh state: %+v", st)
	}

	// The old day's entry is superseded, not purged.
	if _, err := repo.Load(context.Background(), "2024-01-01"); err != nil {
		t.Errorf("old session purged: %v", err)
	}
}

func TestLoadOrInitMalformedStored(t *testing.T) {
	repo := NewMemoryRepo()
	// A state with the wrong number of result slots can only come from
	// a corrupt or incompatible entry.
	bad := &State{Date: "2024-01-01", Results: make([]QuestionResult, 2)}
	if err := repo.Save(context.Background(), bad); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s := LoadOrInit(context.Background(), repo, &stubSource{}, "2024-01-01")
	if got := len(s.State().Results); got != SlotCount {
		t.Errorf("results len = %d, want fresh state with %d", got, SlotCount)
	}
}

func TestFetchQuestionsIdempotent(t *testing.T) {
	src := &stubSource{questions: fourQuestions()}
	s := LoadOrInit(context.Background(), NewMemoryRepo(), src, "2024-01-01")

	if err := s.FetchQuestions(context.Background()); err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}
	if err := s.FetchQuestions(context.Background()); err != nil {
		t.Fatalf("second FetchQuestions: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
	if got := len(s.State().Questions); got != SlotCount {
		t.Errorf("cached %d questions, want %d", got, SlotCount)
	}
}

func TestFetchQuestionsFailureThenRetry(t *testing.T) {
	src := &stubSource{err: errors.New("the trail is impassable")}
	s := LoadOrInit(context.Background(), NewMemoryRepo(), src, "2024-01-01")

	if err := s.FetchQuestions(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if s.State().HasQuestions() {
		t.Fatal("questions cached despite fetch failure")
	}

	// An answer before questions exist is rejected.
	if res := answer(t, s, 0); res != nil {
		t.Fatal("SubmitAnswer accepted without questions")
	}

	// Explicit retry succeeds and populates exactly one batch.
	src.err = nil
	src.questions = fourQuestions()
	if err := s.FetchQuestions(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got := len(s.State().Questions); got != SlotCount {
		t.Errorf("cached %d questions, want %d", got, SlotCount)
	}
}

func TestSubmitAnswerAdvances(t *testing.T) {
	s := readySession(t, NewMemoryRepo(), "2024-01-01")

	res := answer(t, s, 0) // correctIndex of slot 0 is 0
	if res == nil {
		t.Fatal("submission rejected")
	}
	if !res.Correct {
		t.Error("correct answer marked wrong")
	}
	if res.SelectedAnswer == nil || *res.SelectedAnswer != 0 {
		t.Errorf("selectedAnswer = %v", res.SelectedAnswer)
	}
	if !containsMessage(correctMessages, res.Message) {
		t.Errorf("message %q not from the correct pool", res.Message)
	}

	st := s.State()
	if st.CurrentIndex != 1 {
		t.Errorf("currentIndex = %d, want 1", st.CurrentIndex)
	}
	if st.Completed {
		t.Error("completed after one answer")
	}
}

func TestSubmitAnswerWrong(t *testing.T) {
	s := readySession(t, NewMemoryRepo(), "2024-01-01")

	res := answer(t, s, 3) // slot 0 expects 0
	if res == nil {
		t.Fatal("submission rejected")
	}
	if res.Correct {
		t.Error("wrong answer marked correct")
	}
	if !containsMessage(wrongMessages, res.Message) {
		t.Errorf("message %q not from the wrong pool", res.Message)
	}
}

func TestSubmitAnswerRejectedDuringReveal(t *testing.T) {
	s := readySession(t, NewMemoryRepo(), "2024-01-01")

	if _, err := s.SubmitAnswer(context.Background(), 0); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !s.Revealing() {
		t.Fatal("reveal not started")
	}

	before := *s.State()
	res, err := s.SubmitAnswer(context.Background(), 1)
	if err != nil {
		t.Fatalf("SubmitAnswer during reveal: %v", err)
	}
	if res != nil {
		t.Error("submission accepted during reveal")
	}
	if !reflect.DeepEqual(before, *s.State()) {
		t.Error("state mutated by rejected submission")
	}

	s.FinishReveal()
	if res := answer(t, s, 1); res == nil {
		t.Error("submission rejected after reveal ended")
	}
}

func TestSubmitAnswerRejectedOutOfRange(t *testing.T) {
	s := readySession(t, NewMemoryRepo(), "2024-01-01")

	for _, idx := range []int{-1, 4, 99} {
		before := *s.State()
		res, err := s.SubmitAnswer(context.Background(), idx)
		if err != nil {
			t.Fatalf("SubmitAnswer(%d): %v", idx, err)
		}
		if res != nil {
			t.Errorf("SubmitAnswer(%d) accepted", idx)
		}
		if !reflect.DeepEqual(before, *s.State()) {
			t.Errorf("SubmitAnswer(%d) mutated state", idx)
		}
	}
}

func TestSubmitAnswerRejectedWhenCompleted(t *testing.T) {
	s := readySession(t, NewMemoryRepo(), "2024-01-01")
	for i := 0; i < SlotCount; i++ {
		answer(t, s, i%4)
	}
	if !s.State().Completed {
		t.Fatal("session not completed")
	}

	before := *s.State()
	res, err := s.SubmitAnswer(context.Background(), 0)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res != nil {
		t.Error("submission accepted after completion")
	}
	if !reflect.DeepEqual(before, *s.State()) {
		t.Error("state mutated after completion")
	}
}

func TestPerfectRun(t *testing.T) {
	s := readySession(t, NewMemoryRepo(), "2024-01-01")
	for i := 0; i < SlotCount; i++ {
		res := answer(t, s, i%4) // matches each slot's correctIndex
		if res == nil || !res.Correct {
			t.Fatalf("slot %d: res=%+v", i, res)
		}
	}

	st := s.State()
	if !st.Completed {
		t.Error("not completed after four answers")
	}
	if st.Score() != 4 {
		t.Errorf("score = %d, want 4", st.Score())
	}
	if out := OutcomeFor(st.Score()); out.Tier != TierBest {
		t.Errorf("tier = %v, want TierBest", out.Tier)
	}
}

func TestCompletedIffAllAnswered(t *testing.T) {
	s := readySession(t, NewMemoryRepo(), "2024-01-01")
	for i := 0; i < SlotCount; i++ {
		if got := s.State().Completed; got != (s.State().AnsweredCount() == SlotCount) {
			t.Fatalf("after %d answers: completed=%v answered=%d", i, got, s.State().AnsweredCount())
		}
		if !s.State().Completed && s.State().CurrentIndex != s.State().AnsweredCount() {
			t.Fatalf("currentIndex %d != answered count %d", s.State().CurrentIndex, s.State().AnsweredCount())
		}
		answer(t, s, 0)
	}
	if !s.State().Completed {
		t.Error("not completed with all slots answered")
	}
}

func TestInterruptAndResume(t *testing.T) {
	repo := NewMemoryRepo()
	s := readySession(t, repo, "2024-01-01")
	answer(t, s, 0)

	// Simulate closing and reopening the app on the same day.
	resumed := LoadOrInit(context.Background(), repo, &stubSource{}, "2024-01-01")
	st := resumed.State()
	if !st.Results[0].Answered {
		t.Error("slot 0 lost across reload")
	}
	if st.CurrentIndex != 1 || st.Completed {
		t.Errorf("currentIndex=%d completed=%v", st.CurrentIndex, st.Completed)
	}
	if !st.HasQuestions() {
		t.Error("cached questions lost across reload")
	}
	if err := resumed.FetchQuestions(context.Background()); err != nil {
		t.Fatalf("FetchQuestions on resume: %v", err)
	}
	if got := len(st.Questions); got != SlotCount {
		t.Errorf("questions duplicated or dropped: %d", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	s := readySession(t, repo, "2024-01-01")
	answer(t, s, 0)
	answer(t, s, 2)

	loaded, err := repo.Load(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(s.State(), loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, s.State())
	}
}

func TestOutcomeTiers(t *testing.T) {
	tiers := map[int]Tier{
		4: TierBest,
		3: TierGood,
		2: TierPoor,
		1: TierPoor,
		0: TierWorst,
	}
	for score, want := range tiers {
		if got := OutcomeFor(score).Tier; got != want {
			t.Errorf("OutcomeFor(%d).Tier = %v, want %v", score, got, want)
		}
	}
}

func containsMessage(pool []string, msg string) bool {
	for _, m := range pool {
		if m == msg {
			return true
		}
	}
	return false
}
