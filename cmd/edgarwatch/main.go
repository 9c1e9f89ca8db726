package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/swardson/edgarwatch/internal/ai"
	"github.com/swardson/edgarwatch/internal/config"
	"github.com/swardson/edgarwatch/internal/edgar"
	"github.com/swardson/edgarwatch/internal/notify"
	"github.com/swardson/edgarwatch/internal/report"
	"github.com/swardson/edgarwatch/internal/types"
	"github.com/swardson/edgarwatch/internal/watchlist"
)

var (
	tickersCSV      = flag.String("tickers-csv", "", "Path to a CSV with a Ticker column (default: tickers.csv, or TICKERS_CSV)")
	tickerColumn    = flag.String("ticker-column", "Ticker", "CSV column name that contains tickers")
	formsFlag       = flag.String("forms", strings.Join(edgar.DefaultForms, ","), "Comma-separated form types to include")
	dateFlag        = flag.String("date", "", "Report date YYYY-MM-DD. If omitted, searches backward from today")
	lookbackDays    = flag.Int("lookback-days", 7, "How many days back to search when -date is not set")
	includeWeekends = flag.Bool("include-weekends", false, "Also check Sat/Sun when searching backward")
	output          = flag.String("output", "", "Output HTML file (default: sec_report_YYYY-MM-DD.html)")
	assetsDir       = flag.String("assets-dir", "assets", "Folder with logo/favicon files to copy next to the report")
	title           = flag.String("title", "SEC Filing Summary Report", "HTML report title")
	userAgent       = flag.String("user-agent", "", "SEC-compliant User-Agent string (default: SEC_USER_AGENT)")
)

func init() {
	flag.StringVar(tickersCSV, "t", "", "(-t) Path to the ticker CSV (shorthand)")
	flag.StringVar(dateFlag, "d", "", "(-d) Report date YYYY-MM-DD (shorthand)")
	flag.StringVar(output, "o", "", "(-o) Output HTML file (shorthand)")

	flag.Usage = func() {
		fmt.Printf("Usage of %s:\n", "edgarwatch")

		order := []string{
			"tickers-csv",
			"ticker-column",
			"forms",
			"date",
			"lookback-days",
			"include-weekends",
			"output",
			"assets-dir",
			"title",
			"user-agent",
		}

		for _, name := range order {
			f := flag.CommandLine.Lookup(name)
			if f != nil {
				fmt.Printf("  -%s\n", f.Name)
				fmt.Printf("    %s\n", f.Usage)
			}
		}
	}
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return 2
	}

	ua := strings.TrimSpace(*userAgent)
	if ua == "" {
		ua = strings.TrimSpace(cfg.UserAgent)
	}
	if ua == "" {
		// Keep running, but warn loudly. SEC wants contact info in the UA.
		ua = "edgarwatch (set SEC_USER_AGENT with your email)"
		fmt.Println("WARNING: No SEC_USER_AGENT set. You should set it to include contact info.")
		fmt.Println(`Example: export SEC_USER_AGENT="edgarwatch (you@example.com)"`)
		fmt.Println()
	}

	csvPath := *tickersCSV
	if csvPath == "" {
		csvPath = cfg.TickersCSV
	}
	if csvPath == "" {
		csvPath = "tickers.csv"
	}
	if _, err := os.Stat(csvPath); err != nil {
		fmt.Printf("Ticker CSV not found: %s\n", csvPath)
		fmt.Println("Tip: create a CSV with a 'Ticker' column (e.g. AAPL, MSFT, ...)")
		return 2
	}

	tickers, err := watchlist.LoadTickers(csvPath, *tickerColumn)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", csvPath, err)
		return 2
	}
	if len(tickers) == 0 {
		fmt.Printf("No tickers found in %s. Check the column name.\n", csvPath)
		return 2
	}

	forms := make(map[string]bool)
	for _, form := range strings.Split(*formsFlag, ",") {
		if form = strings.TrimSpace(form); form != "" {
			forms[form] = true
		}
	}

	fmt.Printf("Loaded %d tickers · Forms: %s\n", len(tickers), *formsFlag)

	ctx := context.Background()
	client := edgar.NewClient(ua)

	fmt.Println("Fetching SEC ticker→CIK mapping...")
	tickerToCIK, cikToTicker, err := client.FetchTickerMap(ctx)
	if err != nil {
		fmt.Printf("Error fetching ticker mapping: %v\n", err)
		return 1
	}

	ciks, missing := edgar.ResolveCIKs(tickers, tickerToCIK)
	fmt.Printf("Mapped %d tickers to CIKs\n", len(ciks))
	if len(missing) > 0 {
		if len(missing) > 10 {
			missing = missing[:10]
		}
		fmt.Printf("Warning: could not find CIKs for (showing up to 10): %s\n", strings.Join(missing, ", "))
	}

	filings, reportDate, code := findIndex(ctx, client)
	if code != 0 {
		return code
	}
	if len(filings) == 0 || reportDate == "" {
		fmt.Println("No filings found in the requested window.")
		return 0
	}

	matches := edgar.FilterFilings(filings, ciks, forms)
	fmt.Printf("Matched %d filings for your tickers/forms\n", len(matches))

	fmt.Printf("Fetching content for %d filings (8-K only for item extraction)...\n", len(matches))
	enriched := client.EnrichFilings(ctx, matches, cikToTicker, edgar.ItemDescriptions, edgar.PriorityItems)

	entries := buildEntries(ctx, client, cfg, enriched)

	out := *output
	if out == "" {
		out = fmt.Sprintf("sec_report_%s.html", reportDate)
	}

	doc, err := report.Write(entries, reportDate, *title, out, *assetsDir, edgar.PriorityItems)
	if err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return 1
	}

	if cfg.EmailEnabled() {
		emailConfig := notify.EmailConfig{
			SMTPServer: cfg.SMTP.Server,
			SMTPPort:   cfg.SMTP.Port,
			SMTPUser:   cfg.SMTP.User,
			SMTPPass:   cfg.SMTP.Pass,
			FromEmail:  cfg.SMTP.From,
			ToEmail:    cfg.SMTP.To,
			Enabled:    true,
		}
		if emailConfig.FromEmail == "" {
			emailConfig.FromEmail = emailConfig.SMTPUser
		}

		sender := notify.NewSender(emailConfig)
		if err := sender.Send(notify.BuildReportMessage(entries, reportDate, doc)); err != nil {
			log.Printf("Warning: report email failed: %v", err)
		}
	}

	priorityCount := 0
	for _, f := range enriched {
		if f.HasPriorityItems() {
			priorityCount++
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total filings: %d\n", len(enriched))
	fmt.Printf("Priority filings: %d\n", priorityCount)
	fmt.Printf("Report saved to: %s\n", out)
	return 0
}

// findIndex resolves which date to report on. With -date, that day's index
// is fetched directly; otherwise the lookback window is probed backward
// from today until a non-empty index turns up, skipping weekends unless
// -include-weekends is set.
func findIndex(ctx context.Context, client *edgar.Client) (filings []types.Filing, reportDate string, code int) {
	if *dateFlag != "" {
		dt, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			fmt.Println("Invalid -date. Use YYYY-MM-DD.")
			return nil, "", 2
		}

		fmt.Printf("Downloading index: %s\n", client.DailyIndexURL(dt))
		filings, err = client.FetchDailyIndex(ctx, dt)
		if err != nil {
			fmt.Printf("Error fetching daily index: %v\n", err)
			return nil, "", 1
		}
		return filings, dt.Format("2006-01-02"), 0
	}

	for daysAgo := 0; daysAgo < *lookbackDays; daysAgo++ {
		dt := time.Now().AddDate(0, 0, -daysAgo)
		if (dt.Weekday() == time.Saturday || dt.Weekday() == time.Sunday) && !*includeWeekends {
			continue
		}

		fmt.Printf("Checking %s ...\n", dt.Format("2006-01-02"))
		dayFilings, err := client.FetchDailyIndex(ctx, dt)
		if err != nil {
			fmt.Printf("Error fetching daily index: %v\n", err)
			return nil, "", 1
		}
		if len(dayFilings) > 0 {
			reportDate = dt.Format("2006-01-02")
			fmt.Printf("Found filings for %s\n", reportDate)
			return dayFilings, reportDate, 0
		}
	}
	return nil, "", 0
}

// buildEntries pairs each enriched filing with an optional Gemini analysis.
// Analysis only runs for priority filings and only when an API key is
// configured; failures degrade to a report entry without analysis.
func buildEntries(ctx context.Context, client *edgar.Client, cfg *config.Config, enriched []types.Filing) []report.Entry {
	entries := make([]report.Entry, 0, len(enriched))
	for _, f := range enriched {
		var analysis *ai.Analysis

		if cfg.GeminiAPIKey != "" && f.HasPriorityItems() {
			content, err := client.FetchDocument(ctx, f.RawURL)
			if err != nil {
				log.Printf("Warning: failed to fetch %s for analysis: %v", f.Accession, err)
			} else if content != "" {
				analysis, err = ai.Summarize(f.Ticker, f.FormType, content, cfg.GeminiAPIKey, cfg.GeminiModel)
				if err != nil {
					log.Printf("Warning: AI summary failed for %s: %v", f.Ticker, err)
				}
			}
		}

		entries = append(entries, report.NewEntry(client.ArchivesBase(), f, analysis))
	}
	return entries
}
