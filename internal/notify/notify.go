/*
Package notify delivers the generated filing report by email.
*/
package notify

import (
	"fmt"
	"log"
	"strings"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/swardson/edgarwatch/internal/report"
)

// EmailConfig holds SMTP configuration for sending the report.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
	Enabled    bool
}

// RenderedMessage is an email ready for delivery, with an HTML body and a
// plain text alternative for clients that don't render HTML.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// BuildReportMessage wraps the rendered HTML report into an email message.
func BuildReportMessage(entries []report.Entry, reportDate, htmlDoc string) *RenderedMessage {
	priorityCount := 0
	for _, e := range entries {
		if e.Filing.HasPriorityItems() {
			priorityCount++
		}
	}

	subject := fmt.Sprintf("SEC Filings %s: %d matched (%d priority)", reportDate, len(entries), priorityCount)

	return &RenderedMessage{
		Subject: subject,
		Text:    renderPlainText(entries, reportDate),
		HTML:    htmlDoc,
	}
}

// renderPlainText produces a readable text-only version of the report.
func renderPlainText(entries []report.Entry, reportDate string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("SEC filing report for %s\n", reportDate))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(entries) == 0 {
		sb.WriteString("No filings matched your tickers and forms.\n")
		return sb.String()
	}

	for _, e := range entries {
		f := e.Filing
		sb.WriteString(fmt.Sprintf("%s - %s (%s)\n", f.Ticker, f.CompanyName, f.FormType))
		sb.WriteString(fmt.Sprintf("Filed: %s\n", f.DateFiled))
		sb.WriteString(fmt.Sprintf("URL: %s\n", f.URL))

		for _, item := range f.Items {
			marker := " "
			if item.IsPriority {
				marker = "!"
			}
			sb.WriteString(fmt.Sprintf("  [%s] Item %s: %s\n", marker, item.Item, item.Description))
			if item.Context != "" {
				sb.WriteString(fmt.Sprintf("      %s\n", item.Context))
			}
		}

		if e.Analysis != nil && len(e.Analysis.Summary) > 0 {
			sb.WriteString("  AI Summary:\n")
			for _, s := range e.Analysis.Summary {
				sb.WriteString(fmt.Sprintf("   - %s\n", s))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Sender delivers messages via SMTP.
type Sender struct {
	cfg EmailConfig
}

// NewSender creates a sender with the given SMTP configuration.
func NewSender(cfg EmailConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers an email with HTML body and plain text fallback.
func (s *Sender) Send(msg *RenderedMessage) error {
	if !s.cfg.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.FromEmail)
	m.SetHeader("To", s.cfg.ToEmail)
	m.SetHeader("Subject", msg.Subject)

	if msg.HTML != "" && msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else if msg.HTML != "" {
		m.SetBody("text/html", msg.HTML)
	} else {
		m.SetBody("text/plain", msg.Text)
	}

	dialer := gomail.NewDialer(s.cfg.SMTPServer, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("Email error: failed to send to %s (Subject: %s): %v", s.cfg.ToEmail, msg.Subject, err)
		return err
	}

	log.Printf("Email sent: %s", msg.Subject)
	return nil
}
