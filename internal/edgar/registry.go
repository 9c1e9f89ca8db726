package edgar

import (
	"context"
	"encoding/json"
	"strings"
)

// tickerEntry is one record of the SEC bulk ticker feed. The feed is a JSON
// object keyed by row number; keys are irrelevant.
type tickerEntry struct {
	CIK    json.Number `json:"cik_str"`
	Ticker string      `json:"ticker"`
}

// FetchTickerMap fetches the SEC ticker to CIK mapping and its reverse.
// Entries missing either field are dropped; later duplicates overwrite
// earlier ones. The mapping is built once per run and read-only after.
func (c *Client) FetchTickerMap(ctx context.Context) (tickerToCIK, cikToTicker map[string]string, err error) {
	body, found, err := c.get(ctx, c.tickersURL)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, &TransportError{URL: c.tickersURL, StatusCode: 404}
	}

	var entries map[string]tickerEntry
	if err := json.Unmarshal([]byte(body), &entries); err != nil {
		return nil, nil, &FormatError{URL: c.tickersURL, Err: err}
	}

	tickerToCIK = make(map[string]string, len(entries))
	cikToTicker = make(map[string]string, len(entries))

	for _, entry := range entries {
		ticker := strings.ToUpper(strings.TrimSpace(entry.Ticker))
		cik := strings.TrimSpace(entry.CIK.String())
		if ticker == "" || cik == "" {
			continue
		}
		tickerToCIK[ticker] = cik
		cikToTicker[cik] = ticker
	}

	return tickerToCIK, cikToTicker, nil
}

// ResolveCIKs maps the given tickers through tickerToCIK, returning the set
// of resolved CIKs and the tickers that could not be resolved.
func ResolveCIKs(tickers []string, tickerToCIK map[string]string) (ciks map[string]bool, missing []string) {
	ciks = make(map[string]bool, len(tickers))
	for _, t := range tickers {
		if cik, ok := tickerToCIK[t]; ok {
			ciks[cik] = true
		} else {
			missing = append(missing, t)
		}
	}
	return ciks, missing
}
