package edgar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func submissionBlock(docType, filename, sequence string) string {
	block := "<DOCUMENT>\n<TYPE>" + docType + "\n"
	if sequence != "" {
		block += "<SEQUENCE>" + sequence + "\n"
	}
	block += "<FILENAME>" + filename + "\n<TEXT>\nbody\n</TEXT>\n</DOCUMENT>\n"
	return block
}

func TestPrimaryDocumentPrefersMatchingType(t *testing.T) {
	submission := submissionBlock("EX-10.1", "ex.htm", "2") +
		submissionBlock("8-K", "form8k.htm", "1")

	assert.Equal(t, "form8k.htm", PrimaryDocumentFilename(submission, "8-K"))
}

func TestPrimaryDocumentAmendmentSuffixInsensitive(t *testing.T) {
	submission := submissionBlock("GRAPHIC", "chart.jpg", "1") +
		submissionBlock("8-K", "form8k.htm", "2")

	assert.Equal(t, "form8k.htm", PrimaryDocumentFilename(submission, "8-K/A"))
}

func TestPrimaryDocumentPrefersHTMLOverOther(t *testing.T) {
	submission := submissionBlock("EX-99.1", "press.txt", "1") +
		submissionBlock("EX-99.2", "press.html", "2")

	assert.Equal(t, "press.html", PrimaryDocumentFilename(submission, "8-K"))
}

func TestPrimaryDocumentFallsBackToSequence(t *testing.T) {
	submission := submissionBlock("EX-99.2", "second.htm", "4") +
		submissionBlock("EX-99.1", "first.htm", "3")

	assert.Equal(t, "first.htm", PrimaryDocumentFilename(submission, "10-K"))
}

func TestPrimaryDocumentMissingSequenceSortsLast(t *testing.T) {
	submission := submissionBlock("8-K", "nosequence.htm", "") +
		submissionBlock("8-K", "sequenced.htm", "5")

	assert.Equal(t, "sequenced.htm", PrimaryDocumentFilename(submission, "8-K"))
}

func TestPrimaryDocumentIgnoresIncompleteBlocks(t *testing.T) {
	// A block with a type but no filename never qualifies.
	submission := "<DOCUMENT>\n<TYPE>8-K\n<TEXT>\nbody\n</TEXT>\n</DOCUMENT>\n" +
		submissionBlock("EX-10.1", "exhibit.htm", "2")

	assert.Equal(t, "exhibit.htm", PrimaryDocumentFilename(submission, "8-K"))
}

func TestPrimaryDocumentNoCandidates(t *testing.T) {
	assert.Equal(t, "", PrimaryDocumentFilename("no document markers here", "8-K"))
	assert.Equal(t, "", PrimaryDocumentFilename("", "8-K"))
}

func TestPrimaryDocumentCaseInsensitiveMarkers(t *testing.T) {
	submission := "<document>\n<type>8-k\n<sequence>1\n<filename>form8k.htm\n</document>\n"

	assert.Equal(t, "form8k.htm", PrimaryDocumentFilename(submission, "8-K"))
}
