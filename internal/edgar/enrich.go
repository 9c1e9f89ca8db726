package edgar

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/swardson/edgarwatch/internal/types"
)

// enrichConcurrency limits in-flight document fetches to stay well inside
// the SEC's fair-access rate guidance.
const enrichConcurrency = 5

// EnrichFilings resolves each filing's ticker and, for the 8-K family,
// fetches the raw submission to extract item disclosures and upgrade the
// browser URL to the primary document. Filings are enriched independently;
// results keep input order regardless of completion order, and a failure on
// one filing is logged without aborting the rest.
func (c *Client) EnrichFilings(ctx context.Context, filings []types.Filing, cikToTicker map[string]string, descriptions map[string]string, priority map[string]bool) []types.Filing {
	enriched := make([]types.Filing, len(filings))

	var wg sync.WaitGroup
	sem := make(chan struct{}, enrichConcurrency)

	total := len(filings)
	processedCount := 0
	var processedMutex sync.Mutex

	for i, filing := range filings {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, f types.Filing) {
			defer wg.Done()
			defer func() { <-sem }()

			processedMutex.Lock()
			processedCount++
			log.Printf("Processing... %d/%d (%s %s)", processedCount, total, f.FormType, f.CompanyName)
			processedMutex.Unlock()

			enriched[i] = c.enrichFiling(ctx, f, cikToTicker, descriptions, priority)
		}(i, filing)
	}
	wg.Wait()

	return enriched
}

func (c *Client) enrichFiling(ctx context.Context, f types.Filing, cikToTicker map[string]string, descriptions map[string]string, priority map[string]bool) types.Filing {
	f.Ticker = cikToTicker[f.CIK]
	if f.Ticker == "" {
		f.Ticker = "???"
	}

	// Item extraction only applies to the 8-K family; other forms carry no
	// numbered items, but still get a non-nil list to mark them processed.
	f.Items = []types.FilingItem{}
	if !strings.Contains(f.FormType, "8-K") {
		return f
	}

	content, err := c.FetchDocument(ctx, f.RawURL)
	if err != nil {
		log.Printf("Error fetching %s (%s): %v", f.Ticker, f.Accession, err)
		return f
	}

	f.Items = ExtractItems(content, descriptions, priority)

	// Point the browser link at the actual filing document when possible
	// instead of the directory listing.
	folderURL := fmt.Sprintf("%s/edgar/data/%s/%s/", c.archivesBase, f.CIK, strings.ReplaceAll(f.Accession, "-", ""))
	if primary := PrimaryDocumentFilename(content, f.FormType); primary != "" {
		f.URL = folderURL + primary
	} else {
		f.URL = folderURL + f.Accession + "-index.html"
	}

	return f
}
