package trello

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIError is returned when the Trello API responds with a non-success
// HTTP status. It carries the status code and the full response so
// callers can inspect headers and body for diagnostics.
//
// Transport-level failures (DNS, connection refused, timeout) are not
// wrapped in APIError; they propagate from the underlying HTTP client
// unchanged so callers can tell the two failure modes apart.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Status is the HTTP status line, e.g. "404 Not Found".
	Status string

	// Header contains the response headers.
	Header http.Header

	// Body contains the raw response body.
	Body []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("trello: HTTP error: %d", e.StatusCode)
}

// newAPIError builds an APIError from a resty response.
func newAPIError(resp *resty.Response) *APIError {
	return &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
}
