package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
)

var operationName = regexp.MustCompile(`^\s*(?:query|mutation)\s+(\w+)`)

// GraphQLRequest is one request received by a GraphQLServer.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
	Header    http.Header    `json:"-"`
}

// Operation returns the operation name declared in the document.
func (r GraphQLRequest) Operation() string {
	m := operationName.FindStringSubmatch(r.Query)
	if m == nil {
		return ""
	}
	return m[1]
}

// GraphQLResponder returns the data object for a request, or a non-empty
// errMsg to answer with a GraphQL errors array instead.
type GraphQLResponder func(req GraphQLRequest) (data any, errMsg string)

// GraphQLServer is an httptest server that speaks the GraphQL-over-HTTP JSON
// shape and records every request.
type GraphQLServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []GraphQLRequest
}

// NewGraphQLServer starts a server closed on test cleanup.
func NewGraphQLServer(t *testing.T, respond GraphQLResponder) *GraphQLServer {
	t.Helper()
	s := &GraphQLServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GraphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Header = r.Header.Clone()

		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		data, errMsg := respond(req)
		body := map[string]any{"data": data}
		if errMsg != "" {
			body = map[string]any{
				"data":   nil,
				"errors": []map[string]any{{"message": errMsg}},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns every request received so far.
func (s *GraphQLServer) Requests() []GraphQLRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GraphQLRequest(nil), s.requests...)
}

// Calls returns the requests for one operation name.
func (s *GraphQLServer) Calls(operation string) []GraphQLRequest {
	var out []GraphQLRequest
	for _, r := range s.Requests() {
		if r.Operation() == operation {
			out = append(out, r)
		}
	}
	return out
}
