package edgar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swardson/edgarwatch/internal/types"
)

// DailyIndexURL builds the URL of the master daily index for a date.
func (c *Client) DailyIndexURL(date time.Time) string {
	quarter := (int(date.Month())-1)/3 + 1
	return fmt.Sprintf("%s/edgar/daily-index/%d/QTR%d/master.%s.idx",
		c.archivesBase, date.Year(), quarter, date.Format("20060102"))
}

// FetchDailyIndex downloads and parses the master index for a date. A
// missing index (403/404, e.g. weekends and holidays) yields an empty slice.
//
// Index lines are pipe-delimited: CIK|Company Name|Form Type|Date Filed|Filename.
// Lines without a pipe or with fewer than 5 fields are header/footer
// boilerplate and are skipped. No further validation happens here; records
// that never match a watched CIK and form are filtered out downstream.
func (c *Client) FetchDailyIndex(ctx context.Context, date time.Time) ([]types.Filing, error) {
	url := c.DailyIndexURL(date)

	body, found, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var filings []types.Filing
	for _, line := range strings.Split(body, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 5 {
			continue
		}

		cik, companyName, formType, dateFiled := parts[0], parts[1], parts[2], parts[3]
		filename := strings.TrimRight(parts[4], "\r")

		segments := strings.Split(filename, "/")
		accession := strings.TrimSuffix(segments[len(segments)-1], ".txt")

		folderURL := fmt.Sprintf("%s/edgar/data/%s/%s/", c.archivesBase, cik, strings.ReplaceAll(accession, "-", ""))
		// Prefer the filing's HTML index page over the bare directory listing.
		indexURL := folderURL + accession + "-index.html"
		rawURL := c.archivesBase + "/" + filename

		filings = append(filings, types.Filing{
			CIK:         cik,
			CompanyName: companyName,
			FormType:    formType,
			DateFiled:   dateFiled,
			Filename:    filename,
			Accession:   accession,
			URL:         indexURL,
			RawURL:      rawURL,
		})
	}

	return filings, nil
}

// FilterFilings keeps the filings whose form type and CIK are both watched.
// Exact membership, no normalization; order is preserved.
func FilterFilings(filings []types.Filing, ciks map[string]bool, forms map[string]bool) []types.Filing {
	var matched []types.Filing
	for _, f := range filings {
		if forms[f.FormType] && ciks[f.CIK] {
			matched = append(matched, f)
		}
	}
	return matched
}
