package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// memorySink collects events in memory, optionally failing every append.
type memorySink struct {
	events []RequestEvent
	err    error
}

func (s *memorySink) AppendLLMRequest(_ context.Context, ev RequestEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func TestLogging_RecordsSuccessfulRequest(t *testing.T) {
	sink := &memorySink{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	})
	p := WithLogging(mock, sink)

	ctx := WithPurpose(context.Background(), "question-gen")
	resp, err := p.Generate(ctx, Request{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}

	if len(sink.events) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.RequestID == "" {
		t.Error("event has empty request ID")
	}
	if ev.Purpose != "question-gen" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if !ev.Success || ev.ErrorMessage != "" {
		t.Errorf("success = %v, errorMessage = %q", ev.Success, ev.ErrorMessage)
	}
	if ev.InputTokens != 10 || ev.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailedRequest(t *testing.T) {
	sink := &memorySink{}
	mock := NewMockProvider(MockResponse{Err: &ErrQuotaExhausted{}})
	p := WithLogging(mock, sink)

	_, err := p.Generate(context.Background(), Request{})
	var quota *ErrQuotaExhausted
	if !errors.As(err, &quota) {
		t.Fatalf("err = %v, want ErrQuotaExhausted", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.events))
	}
	if sink.events[0].Success {
		t.Error("event marked success for failed request")
	}
	if sink.events[0].ErrorMessage == "" {
		t.Error("event has empty error message for failed request")
	}
}

func TestLogging_SinkFailureDoesNotFailRequest(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, sink)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp == nil {
		t.Fatal("nil response")
	}
}

func TestLogging_UniqueRequestIDs(t *testing.T) {
	sink := &memorySink{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithLogging(mock, sink)

	for i := 0; i < 2; i++ {
		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("Generate #%d: %v", i, err)
		}
	}
	if sink.events[0].RequestID == sink.events[1].RequestID {
		t.Errorf("request IDs not unique: %q", sink.events[0].RequestID)
	}
}
