package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numberninja/numberninja/internal/question"
)

type staticTokens struct{ token string }

func (s staticTokens) IDToken(ctx context.Context) (string, error) { return s.token, nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, staticTokens{token: "tok-123"}, zerolog.Nop())
}

func TestCreateSession(t *testing.T) {
	var gotAuth string
	var gotBody CreateSessionRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sessions/create", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"sessionId": "sess-42"})
	})

	id, err := c.CreateSession(context.Background(), CreateSessionRequest{
		Mode:        "practice",
		Operations:  []question.Operation{question.Addition},
		TermA:       Range{Min: 1, Max: 10},
		TermB:       Range{Min: 1, Max: 10},
		FirebaseUID: "uid-1",
		TimeLimit:   60,
	})
	require.NoError(t, err)
	assert.Equal(t, "sess-42", id)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "uid-1", gotBody.FirebaseUID)
	assert.Equal(t, 60, gotBody.TimeLimit)
}

func TestCreateSession_EmptyID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := c.CreateSession(context.Background(), CreateSessionRequest{})
	require.Error(t, err)
}

func TestGetQuestions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/questions/sess-42/questions", r.URL.Path)
		json.NewEncoder(w).Encode([]question.RawQuestion{
			{NumberA: 3, NumberB: 4, Operation: question.Addition, CorrectAnswer: 7},
			{NumberA: 8, NumberB: 2, Operation: question.Division, CorrectAnswer: 4},
		})
	})

	qs, err := c.GetQuestions(context.Background(), "sess-42")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, 7, qs[0].CorrectAnswer)
	assert.Equal(t, question.Division, qs[1].Operation)
}

func TestSubmitAnswers(t *testing.T) {
	var gotBody struct {
		Answers []Answer `json:"answers"`
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/questions/sess-42/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(SubmitResult{CorrectAnswers: 1, TotalQuestions: 2, TotalTime: 30})
	})

	res, err := c.SubmitAnswers(context.Background(), "sess-42", []Answer{
		{QuestionIndex: 0, SelectedAnswer: "7", IsCorrect: true, TimeTaken: 10, NumberA: 3, NumberB: 4, Operation: question.Addition},
		{QuestionIndex: 1, SelectedAnswer: "", IsCorrect: false, TimeTaken: 10, NumberA: 8, NumberB: 2, Operation: question.Division},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Len(t, gotBody.Answers, 2)
	assert.Equal(t, "7", gotBody.Answers[0].SelectedAnswer)
}

func TestErrorMapping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.GetQuestions(context.Background(), "sess-42")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := c.GetQuestions(context.Background(), "sess-42")
	require.Error(t, err)
}

func TestEndSession(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/sessions/sess-42/end", r.URL.Path)
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.EndSession(context.Background(), "sess-42"))
	assert.True(t, called)
}
