package gql

import "errors"

var (
	// ErrUnavailable indicates the endpoint could not be reached.
	ErrUnavailable = errors.New("graphql endpoint unavailable")

	// ErrTimeout indicates the call exceeded the configured timeout.
	ErrTimeout = errors.New("graphql request timed out")

	// ErrRequestFailed covers non-200 responses, undecodable bodies and
	// GraphQL-level errors. The server's message is kept in the wrapped error.
	ErrRequestFailed = errors.New("graphql request failed")
)
