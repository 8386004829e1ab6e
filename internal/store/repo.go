package store

import (
	"context"
	"time"

	"github.com/deepdish/chicagotrail/internal/llm"
)

// LLMRequestEvent is a stored event row.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	llm.RequestEvent
}

// EventRepo provides append and read access to LLM request events.
// The append side is the llm.EventSink contract, so an EventRepo plugs
// straight into the provider logging middleware.
type EventRepo interface {
	llm.EventSink

	// RecentLLMRequests returns up to limit events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}
