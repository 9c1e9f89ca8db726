package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swardson/edgarwatch/internal/report"
	"github.com/swardson/edgarwatch/internal/types"
)

func TestBuildReportMessage(t *testing.T) {
	filing := types.Filing{
		CIK:         "320193",
		CompanyName: "Apple Inc",
		FormType:    "8-K",
		DateFiled:   "2024-05-02",
		Accession:   "0000320193-24-000050",
		Ticker:      "AAPL",
		URL:         "https://www.sec.gov/Archives/edgar/data/320193/000032019324000050/form8k.htm",
		Items: []types.FilingItem{{
			Item:        "5.02",
			Description: "Departure/Appointment of Directors or Officers",
			Context:     "The CFO resigned.",
			IsPriority:  true,
		}},
	}
	entries := []report.Entry{report.NewEntry("https://www.sec.gov/Archives", filing, nil)}

	msg := BuildReportMessage(entries, "2024-05-02", "<html>report</html>")

	assert.Equal(t, "SEC Filings 2024-05-02: 1 matched (1 priority)", msg.Subject)
	assert.Equal(t, "<html>report</html>", msg.HTML)
	assert.Contains(t, msg.Text, "AAPL - Apple Inc (8-K)")
	assert.Contains(t, msg.Text, "[!] Item 5.02")
	assert.Contains(t, msg.Text, "The CFO resigned.")
}

func TestBuildReportMessageEmpty(t *testing.T) {
	msg := BuildReportMessage(nil, "2024-05-02", "<html></html>")

	assert.Equal(t, "SEC Filings 2024-05-02: 0 matched (0 priority)", msg.Subject)
	assert.Contains(t, msg.Text, "No filings matched")
}

func TestSenderDisabledIsNoop(t *testing.T) {
	sender := NewSender(EmailConfig{Enabled: false})
	err := sender.Send(&RenderedMessage{Subject: "x", Text: "y"})
	require.NoError(t, err)
}
