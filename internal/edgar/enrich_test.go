package edgar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swardson/edgarwatch/internal/types"
)

const sampleSubmission = `<SEC-DOCUMENT>0000320193-24-000050.txt
<DOCUMENT>
<TYPE>8-K
<SEQUENCE>1
<FILENAME>form8k.htm
<TEXT>
Item 5.02: Departure of Directors
The Chief Financial Officer resigned effective June 1, 2024.
</TEXT>
</DOCUMENT>
<DOCUMENT>
<TYPE>EX-99.1
<SEQUENCE>2
<FILENAME>press.htm
<TEXT>
press release body
</TEXT>
</DOCUMENT>
`

func TestEnrichFilings8K(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleSubmission))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	filings := []types.Filing{{
		CIK:       "320193",
		FormType:  "8-K",
		Accession: "0000320193-24-000050",
		URL:       srv.URL + "/edgar/data/320193/000032019324000050/0000320193-24-000050-index.html",
		RawURL:    srv.URL + "/edgar/data/320193/0000320193-24-000050.txt",
	}}

	enriched := client.EnrichFilings(context.Background(), filings,
		map[string]string{"320193": "AAPL"}, ItemDescriptions, PriorityItems)
	require.Len(t, enriched, 1)

	f := enriched[0]
	assert.Equal(t, "AAPL", f.Ticker)
	require.Len(t, f.Items, 1)
	assert.Equal(t, "5.02", f.Items[0].Item)
	assert.True(t, f.Items[0].IsPriority)
	// Browser URL upgraded from the index page to the primary document.
	assert.Equal(t, srv.URL+"/edgar/data/320193/000032019324000050/form8k.htm", f.URL)
}

func TestEnrichFilingsNon8KSkipsFetch(t *testing.T) {
	fetched := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetched = true
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	filings := []types.Filing{{
		CIK:      "320193",
		FormType: "DEF 14A",
		URL:      srv.URL + "/index.html",
		RawURL:   srv.URL + "/raw.txt",
	}}

	enriched := client.EnrichFilings(context.Background(), filings,
		map[string]string{}, ItemDescriptions, PriorityItems)
	require.Len(t, enriched, 1)

	f := enriched[0]
	assert.False(t, fetched)
	assert.Equal(t, "???", f.Ticker)
	// Processed filings always carry a non-nil item list.
	assert.NotNil(t, f.Items)
	assert.Empty(t, f.Items)
	assert.Equal(t, srv.URL+"/index.html", f.URL)
}

func TestEnrichFilingsIsolatesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "bad") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(sampleSubmission))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	filings := []types.Filing{
		{CIK: "1", FormType: "8-K", Accession: "bad-acc", URL: srv.URL + "/bad-index.html", RawURL: srv.URL + "/bad.txt"},
		{CIK: "320193", FormType: "8-K", Accession: "0000320193-24-000050", RawURL: srv.URL + "/good.txt"},
	}

	enriched := client.EnrichFilings(context.Background(), filings,
		map[string]string{"320193": "AAPL"}, ItemDescriptions, PriorityItems)
	require.Len(t, enriched, 2)

	// The failing filing keeps an empty item list and its index URL.
	assert.NotNil(t, enriched[0].Items)
	assert.Empty(t, enriched[0].Items)
	assert.Equal(t, srv.URL+"/bad-index.html", enriched[0].URL)

	// The healthy filing is unaffected.
	require.Len(t, enriched[1].Items, 1)
	assert.Equal(t, "AAPL", enriched[1].Ticker)
}

func TestEnrichFilingsPreservesInputOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleSubmission))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	var filings []types.Filing
	for i := 0; i < 20; i++ {
		filings = append(filings, types.Filing{
			CIK:       fmt.Sprintf("%d", i),
			FormType:  "8-K",
			Accession: fmt.Sprintf("000-%02d-000", i),
			RawURL:    srv.URL + fmt.Sprintf("/doc-%d.txt", i),
		})
	}

	enriched := client.EnrichFilings(context.Background(), filings,
		map[string]string{}, ItemDescriptions, PriorityItems)
	require.Len(t, enriched, 20)

	for i, f := range enriched {
		assert.Equal(t, fmt.Sprintf("%d", i), f.CIK)
	}
}
