package edgar

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// An EDGAR submission text file concatenates pseudo-SGML <DOCUMENT> blocks,
// each carrying <TYPE>, <FILENAME> and usually <SEQUENCE> descriptor lines.
var (
	documentSplitPattern = regexp.MustCompile(`(?i)</DOCUMENT>`)
	typePattern          = regexp.MustCompile(`(?i)<TYPE>\s*([^\n<]+)`)
	filenamePattern      = regexp.MustCompile(`(?i)<FILENAME>\s*([^\n<]+)`)
	sequencePattern      = regexp.MustCompile(`(?i)<SEQUENCE>\s*(\d+)`)
)

type documentCandidate struct {
	docType  string
	filename string
	sequence int
	isHTML   bool
}

// PrimaryDocumentFilename finds the main filing document inside the full
// submission text so the report can link straight to the primary HTML
// filing (e.g. the 8-K itself) instead of the directory listing. Returns ""
// when no document block carries both a type and a filename.
//
// Candidates are ranked by: declared type matches the filing's form type
// (amendment suffix "/A" ignored), then HTML over non-HTML filenames, then
// declared sequence order. Blocks without a sequence sort last.
func PrimaryDocumentFilename(submissionText, formType string) string {
	if submissionText == "" {
		return ""
	}

	desired := map[string]bool{strings.ToUpper(formType): true}
	if suffixless := strings.TrimSuffix(strings.ToUpper(formType), "/A"); suffixless != "" {
		desired[suffixless] = true
	}

	var candidates []documentCandidate
	for _, block := range documentSplitPattern.Split(submissionText, -1) {
		typeMatch := typePattern.FindStringSubmatch(block)
		filenameMatch := filenamePattern.FindStringSubmatch(block)
		if typeMatch == nil || filenameMatch == nil {
			continue
		}

		docType := strings.ToUpper(strings.TrimSpace(typeMatch[1]))
		filename := strings.TrimSpace(filenameMatch[1])

		sequence := 9999
		if seqMatch := sequencePattern.FindStringSubmatch(block); seqMatch != nil {
			if n, err := strconv.Atoi(seqMatch[1]); err == nil {
				sequence = n
			}
		}

		lower := strings.ToLower(filename)
		isHTML := strings.HasSuffix(lower, ".htm") || strings.HasSuffix(lower, ".html")

		candidates = append(candidates, documentCandidate{
			docType:  docType,
			filename: filename,
			sequence: sequence,
			isHTML:   isHTML,
		})
	}

	if len(candidates) == 0 {
		return ""
	}

	rank := func(c documentCandidate) (int, int, int) {
		typeRank := 1
		if desired[c.docType] {
			typeRank = 0
		}
		htmlRank := 1
		if c.isHTML {
			htmlRank = 0
		}
		return typeRank, htmlRank, c.sequence
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		it, ih, is := rank(candidates[i])
		jt, jh, js := rank(candidates[j])
		if it != jt {
			return it < jt
		}
		if ih != jh {
			return ih < jh
		}
		return is < js
	})

	return candidates[0].filename
}
