package proxy

import (
	"encoding/json"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// StatusCode is the HTTP status the kind is reported with.
func (k Kind) StatusCode() int {
	if k == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

const (
	msgInvalidParams = "Invalid search parameters"
	msgAuthFailed    = "Authentication failed with Amadeus API"
	msgSearchFailed  = "Failed to search flights"
)

// Error is the only error type Search returns. Message is safe to show to
// clients; Detail and Details carry upstream diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Details json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(message string, details json.RawMessage, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details, Err: err}
}

func authenticationError(err error) *Error {
	return &Error{Kind: KindAuthentication, Message: msgAuthFailed, Err: err}
}

func upstreamError(detail string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: msgSearchFailed, Detail: detail, Err: err}
}

// rawDetails keeps upstream bodies that are valid JSON and quotes the rest.
func rawDetails(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
