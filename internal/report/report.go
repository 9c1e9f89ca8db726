/*
Package report renders the matched filings into a static, styled HTML report.
*/
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/swardson/edgarwatch/internal/ai"
	"github.com/swardson/edgarwatch/internal/types"
)

var reportTemplate = template.Must(template.New("report").Parse(reportHTMLTemplate))

// Entry is one filing in the report, with its optional AI analysis and the
// link back to the filing's document index page.
type Entry struct {
	Filing   types.Filing
	Analysis *ai.Analysis
	IndexURL string
}

// NewEntry builds a report entry for a filing.
func NewEntry(archivesBase string, filing types.Filing, analysis *ai.Analysis) Entry {
	return Entry{
		Filing:   filing,
		Analysis: analysis,
		IndexURL: fmt.Sprintf("%s/edgar/data/%s/%s/%s-index.html",
			archivesBase, filing.CIK, strings.ReplaceAll(filing.Accession, "-", ""), filing.Accession),
	}
}

type reportData struct {
	Title            string
	ReportDate       string
	TotalFilings     int
	FormsPresent     string
	PriorityItemList string
	PriorityEntries  []Entry
	OtherEntries     []Entry
	AssetsRel        string
	LogoSrc          string
}

// Render produces the HTML report document. Everything injected into the
// page goes through html/template's contextual escaping, so broken markup
// in extracted snippets can never break the report.
func Render(entries []Entry, reportDate, title, assetsRel string, priorityItems map[string]bool) (string, error) {
	data := reportData{
		Title:        title,
		ReportDate:   reportDate,
		TotalFilings: len(entries),
		AssetsRel:    assetsRel,
	}

	if assetsRel != "" {
		data.LogoSrc = assetsRel + "/android-chrome-192x192.png"
	}

	formsPresent := make(map[string]bool)
	for _, e := range entries {
		formsPresent[e.Filing.FormType] = true
		if e.Filing.HasPriorityItems() {
			data.PriorityEntries = append(data.PriorityEntries, e)
		} else {
			data.OtherEntries = append(data.OtherEntries, e)
		}
	}
	data.FormsPresent = joinSorted(formsPresent)
	data.PriorityItemList = joinSorted(priorityItems)

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}

// Write renders the report and writes it to outputPath, copying the assets
// directory (if any) next to it first.
func Write(entries []Entry, reportDate, title, outputPath, assetsDir string, priorityItems map[string]bool) (string, error) {
	assetsRel, err := copyAssets(assetsDir, outputPath)
	if err != nil {
		return "", err
	}

	doc, err := Render(entries, reportDate, title, assetsRel, priorityItems)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", outputPath, err)
	}
	return doc, nil
}

// copyAssets copies asset files (favicons/logos) next to the generated
// report and returns the relative assets folder name. A missing assets
// directory is not an error; the report simply renders without icons.
func copyAssets(assetsDir, outputPath string) (string, error) {
	if assetsDir == "" {
		return "", nil
	}
	info, err := os.Stat(assetsDir)
	if err != nil || !info.IsDir() {
		return "", nil
	}

	destDir := filepath.Join(filepath.Dir(outputPath), filepath.Base(assetsDir))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create assets directory %s: %w", destDir, err)
	}

	files, err := os.ReadDir(assetsDir)
	if err != nil {
		return "", fmt.Errorf("failed to read assets directory %s: %w", assetsDir, err)
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(assetsDir, file.Name()), filepath.Join(destDir, file.Name())); err != nil {
			return "", err
		}
	}

	return filepath.Base(assetsDir), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open asset %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create asset %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy asset %s: %w", src, err)
	}
	return nil
}

func joinSorted(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
