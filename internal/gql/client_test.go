package gql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/autowatch/internal/testutil"
)

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) { o.events = append(o.events, e) }

func TestClient_Do_Success(t *testing.T) {
	srv := testutil.NewGraphQLServer(t, func(req testutil.GraphQLRequest) (any, string) {
		return map[string]any{"me": map[string]any{"id": 42}}, ""
	})

	obs := &recordingObserver{}
	c := NewClient(Options{
		Endpoint: srv.URL,
		Token:    "tok-123",
		Timeout:  time.Second,
		Headers:  map[string]string{"X-Run-Id": "run-1"},
		Observer: obs,
	})

	var out struct {
		Me struct {
			ID int `json:"id"`
		} `json:"me"`
	}
	err := c.Do(context.Background(), Call{
		Operation: "GetMe",
		Query:     "query GetMe { me { id } }",
		Variables: map[string]any{"a": 1},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 42, out.Me.ID)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer tok-123", reqs[0].Header.Get("Authorization"))
	assert.Equal(t, "run-1", reqs[0].Header.Get("X-Run-Id"))
	assert.NotEmpty(t, reqs[0].Header.Get("X-Request-Id"))
	assert.Equal(t, "GetMe", reqs[0].Operation())
	assert.EqualValues(t, 1, reqs[0].Variables["a"])

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "GetMe", obs.events[0].Operation)
	assert.Equal(t, reqs[0].Header.Get("X-Request-Id"), obs.events[0].RequestID)
}

func TestClient_Do_GraphQLError(t *testing.T) {
	srv := testutil.NewGraphQLServer(t, func(req testutil.GraphQLRequest) (any, string) {
		return nil, "not authorized"
	})

	obs := &recordingObserver{}
	c := NewClient(Options{Endpoint: srv.URL, Token: "t", Observer: obs})

	var out map[string]any
	err := c.Do(context.Background(), Call{Operation: "GetMe", Query: "query GetMe { me { id } }"}, &out)

	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "not authorized")
	assert.Contains(t, err.Error(), "GetMe")
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "REQUEST_FAILED", obs.events[0].ErrorCode)
}

func TestClient_Do_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL, Token: "t"})

	var out map[string]any
	err := c.Do(context.Background(), Call{Operation: "GetMe", Query: "query GetMe { me { id } }"}, &out)

	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_Do_Non200WithJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"jwt expired"}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	c := NewClient(Options{Endpoint: srv.URL, Token: "t", Observer: obs})

	var out struct {
		VideoProgress *string `json:"videoProgress"`
	}
	err := c.Do(context.Background(), Call{Operation: "videoProgress", Query: "query videoProgress { videoProgress }"}, &out)

	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "jwt expired")
	require.Len(t, obs.events, 1)
	assert.Equal(t, "REQUEST_FAILED", obs.events[0].ErrorCode)
}

func TestClient_Do_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL, Token: "t", Timeout: 50 * time.Millisecond})

	var out map[string]any
	err := c.Do(context.Background(), Call{Operation: "GetMe", Query: "query GetMe { me { id } }"}, &out)

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Do_Unavailable(t *testing.T) {
	obs := &recordingObserver{}
	c := NewClient(Options{Endpoint: "http://127.0.0.1:1", Token: "t", Timeout: time.Second, Observer: obs})

	var out map[string]any
	err := c.Do(context.Background(), Call{Operation: "GetMe", Query: "query GetMe { me { id } }"}, &out)

	assert.ErrorIs(t, err, ErrUnavailable)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "UNAVAILABLE", obs.events[0].ErrorCode)
}

func TestClient_Do_DebugHook(t *testing.T) {
	srv := testutil.NewGraphQLServer(t, func(req testutil.GraphQLRequest) (any, string) {
		return map[string]any{}, ""
	})

	var lines []string
	c := NewClient(Options{Endpoint: srv.URL, Token: "t", Debug: func(s string) { lines = append(lines, s) }})

	var out map[string]any
	require.NoError(t, c.Do(context.Background(), Call{Operation: "GetMe", Query: "query GetMe { me { id } }"}, &out))
	assert.NotEmpty(t, lines)
}

func TestBearerHTTPClient_SetsHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	resp, err := BearerHTTPClient("abc", nil).Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer abc", got)
}

func TestBearerHTTPClient_RejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"errors":[]}`))
	}))
	defer srv.Close()

	_, err := BearerHTTPClient("abc", nil).Get(srv.URL)
	assert.ErrorIs(t, err, ErrRequestFailed)
}
