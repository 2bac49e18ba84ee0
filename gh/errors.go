package gh

import (
	"fmt"
	"net/http"
)

// RequestFailedError is returned when the API answers with a non-2xx status.
// The response body is not inspected.
type RequestFailedError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *RequestFailedError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("failed to fetch %s: HTTP %s", e.URL, status)
}

// TransportError wraps DNS, connection and TLS failures, as well as errors
// while reading the response body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a successful response body is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response body is not valid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
