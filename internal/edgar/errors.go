package edgar

import "fmt"

// TransportError reports a network failure or an unexpected HTTP status from
// the SEC archive. 403/404 responses on index and document fetches are not
// transport errors; they mean "no data available" and yield empty results.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("received non-OK status code %d from %s", e.StatusCode, e.URL)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FormatError reports a response body that could not be decoded into the
// shape the SEC publishes.
type FormatError struct {
	URL string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
