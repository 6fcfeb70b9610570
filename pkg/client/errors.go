package client

import "fmt"

// NetworkError wraps a transport-level failure: connection refused, DNS,
// timeout. The request never produced a usable HTTP response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ResponseError means the server answered but the response was unusable:
// a non-2xx status, or a body that failed to decode as JSON.
type ResponseError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad response from %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("bad response from %s: status %d", e.URL, e.StatusCode)
}

func (e *ResponseError) Unwrap() error { return e.Err }
