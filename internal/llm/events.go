package llm

import "context"

// RequestEvent captures one completed LLM request for the event log.
type RequestEvent struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventSink receives request events. The logging middleware reports
// sink failures on stderr and never fails the request over them, so
// implementations may be best-effort.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}
