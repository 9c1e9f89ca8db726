/*
Package edgar fetches and filters SEC EDGAR daily filing indexes, extracts
8-K item disclosures from raw submission text, and selects the primary
human-readable document inside a submission.
*/
package edgar

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultArchivesBase is the root of the SEC EDGAR archive.
	DefaultArchivesBase = "https://www.sec.gov/Archives"

	// DefaultTickersURL is the bulk ticker to CIK mapping feed.
	DefaultTickersURL = "https://www.sec.gov/files/company_tickers.json"

	// DefaultTimeout bounds every request made to the SEC.
	DefaultTimeout = 30 * time.Second
)

// Client talks to the SEC EDGAR archive. The SEC requires a descriptive
// User-Agent with contact info on every request.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	archivesBase string
	tickersURL   string
}

// NewClient creates a Client with the given User-Agent and the default
// archive endpoints and timeout.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		userAgent:    userAgent,
		archivesBase: DefaultArchivesBase,
		tickersURL:   DefaultTickersURL,
	}
}

// ArchivesBase returns the archive root URL the client is configured with.
func (c *Client) ArchivesBase() string {
	return c.archivesBase
}

// get performs a GET with the configured User-Agent and returns the response
// body. A 403/404 response returns ("", false, nil): the archive omits index
// files for non-trading days, so "not found" is not a failure. Any other
// non-2xx status or network error is a *TransportError.
func (c *Client) get(ctx context.Context, url string) (body string, found bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false, &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, &TransportError{URL: url, Err: err}
	}
	return string(data), true, nil
}

// FetchDocument retrieves the full raw submission text for a filing.
// Missing documents (403/404) yield an empty string, not an error.
func (c *Client) FetchDocument(ctx context.Context, rawURL string) (string, error) {
	body, _, err := c.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return body, nil
}
