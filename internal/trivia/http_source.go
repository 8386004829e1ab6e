package trivia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPSource fetches questions from a remote Question Source endpoint
// (the `chicagotrail serve` API, or anything speaking its wire format).
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource for the given base URL,
// e.g. "http://localhost:8080".
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type questionsRequest struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Questions requests count questions for the date key. Any non-success
// response collapses into a single error: the caller only needs to know
// the fetch failed and may be retried.
func (s *HTTPSource) Questions(ctx context.Context, dateKey string, count int) ([]Question, error) {
	body, err := json.Marshal(questionsRequest{Date: dateKey, Count: count})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/daily-trivia", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("question source unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("question source error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("question source error: status %d", resp.StatusCode)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	if err := validateBatch(questions, count); err != nil {
		return nil, err
	}

	return questions, nil
}
