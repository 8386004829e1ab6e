package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/deepdish/chicagotrail/internal/config"
	"github.com/deepdish/chicagotrail/internal/llm"
	"github.com/deepdish/chicagotrail/internal/mission"
	"github.com/deepdish/chicagotrail/internal/trivia"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func toolBatch(t *testing.T) json.RawMessage {
	t.Helper()
	qs := make([]trivia.Question, trivia.QuestionsPerDay)
	for i := range qs {
		qs[i] = trivia.Question{
			Text:         fmt.Sprintf("Question %d?", i+1),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: i % 4,
		}
	}
	data, err := json.Marshal(map[string]any{"questions": qs})
	require.NoError(t, err)
	return data
}

func postTrivia(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/daily-trivia", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func newTestServer(mock *llm.MockProvider) *Server {
	return New(config.Default(), trivia.NewLLMSource(mock, trivia.DefaultConfig()))
}

func TestDailyTrivia(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: toolBatch(t)})
	srv := newTestServer(mock)

	w := postTrivia(t, srv, `{"date":"2024-01-01","count":4}`)
	require.Equal(t, http.StatusOK, w.Code)

	var questions []trivia.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, trivia.QuestionsPerDay)
	require.Len(t, questions[0].Options, trivia.OptionsPerQuestion)
}

func TestDailyTriviaCachedPerDate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: toolBatch(t)})
	srv := newTestServer(mock)

	first := postTrivia(t, srv, `{"date":"2024-01-01","count":4}`)
	require.Equal(t, http.StatusOK, first.Code)

	// Second request for the same date is served from cache; the
	// provider queue is empty, so a second generation would fail.
	second := postTrivia(t, srv, `{"date":"2024-01-01","count":4}`)
	require.Equal(t, http.StatusOK, second.Code)
	require.JSONEq(t, first.Body.String(), second.Body.String())
	require.Equal(t, 1, mock.CallCount())
}

func TestDailyTriviaDefaultsToToday(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: toolBatch(t)})
	srv := newTestServer(mock)

	w := postTrivia(t, srv, `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, mock.CallCount())
	require.Contains(t, mock.Calls[0].Messages[0].Content, mission.TodayKey())
}

func TestDailyTriviaRateLimited(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	srv := newTestServer(mock)

	w := postTrivia(t, srv, `{"date":"2024-01-01","count":4}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.JSONEq(t, `{"error":"Rate limited — try again shortly."}`, w.Body.String())
}

func TestDailyTriviaQuotaExhausted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrQuotaExhausted{Err: errors.New("402")}})
	srv := newTestServer(mock)

	w := postTrivia(t, srv, `{"date":"2024-01-01","count":4}`)
	require.Equal(t, http.StatusPaymentRequired, w.Code)
	require.JSONEq(t, `{"error":"AI credits depleted."}`, w.Body.String())
}

func TestDailyTriviaGenericFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("gateway down")})
	srv := newTestServer(mock)

	w := postTrivia(t, srv, `{"date":"2024-01-01","count":4}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.NotEmpty(t, payload["error"])
}

func TestDailyTriviaBadRequest(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider())

	w := postTrivia(t, srv, `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postTrivia(t, srv, `{"date":"2024-01-01","count":7}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissionEndpoint(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/api/mission?date=2024-01-01", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var m mission.Mission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	require.Equal(t, mission.Generate("2024-01-01"), m)
	require.NotEqual(t, m.StartLocation, m.EndLocation)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
