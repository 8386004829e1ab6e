package trivia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPSourceQuestions(t *testing.T) {
	var gotReq questionsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/daily-trivia", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(goodBatch()))
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL)
	qs, err := src.Questions(context.Background(), "2024-01-01", 4)
	require.NoError(t, err)
	require.Len(t, qs, 4)
	require.Equal(t, "2024-01-01", gotReq.Date)
	require.Equal(t, 4, gotReq.Count)
}

func TestHTTPSourceErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Rate limited — try again shortly."})
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL)
	_, err := src.Questions(context.Background(), "2024-01-01", 4)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Rate limited")
}

func TestHTTPSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // ensure connection refused

	src := NewHTTPSource(srv.URL)
	_, err := src.Questions(context.Background(), "2024-01-01", 4)
	require.Error(t, err)
}

func TestHTTPSourceRejectsShortBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(goodBatch()[:2])
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL)
	_, err := src.Questions(context.Background(), "2024-01-01", 4)
	require.Error(t, err)
}
