package edgar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItemsBasic(t *testing.T) {
	content := "Item 5.02: Departure of Director\n" + strings.Repeat("The board accepted the resignation. ", 20)

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "5.02", item.Item)
	assert.Equal(t, "Departure/Appointment of Directors or Officers", item.Description)
	assert.True(t, item.IsPriority)
	assert.NotEmpty(t, item.Context)
	assert.LessOrEqual(t, len([]rune(item.Context)), 303)
}

func TestExtractItemsEmptyInput(t *testing.T) {
	items := ExtractItems("", ItemDescriptions, PriorityItems)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExtractItemsFirstOccurrenceWins(t *testing.T) {
	// Pad sections beyond the context window so snippets cannot overlap.
	pad := strings.Repeat("z ", 300)
	content := "Item 5.02: first mention\nalpha context here " + pad +
		"\nItem 9.01 - exhibits\nsome exhibit text " + pad +
		"\nItem 5.02: second mention\nbeta context here\n"

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 2)

	assert.Equal(t, "5.02", items[0].Item)
	assert.Contains(t, items[0].Context, "alpha context")
	assert.NotContains(t, items[0].Context, "beta context")
	assert.Equal(t, "9.01", items[1].Item)
}

func TestExtractItemsSortedByItemNumber(t *testing.T) {
	content := "Item 9.01: Financial Statements\nbody\n" +
		"Item 2.02 — Results of Operations\nbody\n" +
		"Item 1.01: Entry into Material Agreement\nbody\n"

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 3)

	assert.Equal(t, "1.01", items[0].Item)
	assert.Equal(t, "2.02", items[1].Item)
	assert.Equal(t, "9.01", items[2].Item)
}

func TestExtractItemsCaseAndPunctuationVariants(t *testing.T) {
	content := "ITEM 7.01 - Regulation FD Disclosure\nbody text\n" +
		"item 8.01:Other Events\nmore body text\n"

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 2)
	assert.Equal(t, "7.01", items[0].Item)
	assert.Equal(t, "8.01", items[1].Item)
	assert.False(t, items[0].IsPriority)
}

func TestExtractItemsUnknownItemDescription(t *testing.T) {
	content := "Item 6.03: something unusual\ncontext body\n"

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 1)
	assert.Equal(t, "Other Item", items[0].Description)
	assert.False(t, items[0].IsPriority)
}

func TestExtractItemsStripsCompleteTags(t *testing.T) {
	content := "Item 2.05: restructuring\n" +
		"<div style=\"font-weight:bold\">The company</div> announced <b>a plan</b> to exit operations."

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 1)

	context := items[0].Context
	assert.NotContains(t, context, "<div")
	assert.NotContains(t, context, "<b>")
	assert.Contains(t, context, "The company")
	assert.Contains(t, context, "a plan")
}

func TestExtractItemsDropsTagCutByWindow(t *testing.T) {
	// Pad so the 500-char window ends in the middle of the <font> tag.
	padding := strings.Repeat("x", contextWindow-10)
	content := "Item 5.02: heading\n" + padding + `<font color="#ff0000" style="something long">hidden</font>`

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 1)

	context := items[0].Context
	assert.NotContains(t, context, "<")
	assert.NotContains(t, context, "font")
}

func TestExtractItemsTruncatesLongContext(t *testing.T) {
	content := "Item 8.01: Other Events\n" + strings.Repeat("a", 600)

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 1)

	context := items[0].Context
	assert.True(t, strings.HasSuffix(context, "..."))
	assert.Len(t, []rune(context), 303)
}

func TestExtractItemsCollapsesWhitespace(t *testing.T) {
	content := "Item 8.01: Other Events\nThe   company\n\n\tannounced\r\n  a dividend."

	items := ExtractItems(content, ItemDescriptions, PriorityItems)
	require.Len(t, items, 1)
	assert.Equal(t, "The company announced a dividend.", items[0].Context)
}

func TestExtractItemsIdempotent(t *testing.T) {
	content := "Item 5.02: Departure\n<p>The CFO resigned effective   June 1.</p>\n" +
		"Item 9.01: Exhibits\nExhibit 99.1 press release\n"

	first := ExtractItems(content, ItemDescriptions, PriorityItems)
	second := ExtractItems(content, ItemDescriptions, PriorityItems)
	assert.Equal(t, first, second)
}

func TestExtractItemsSubstituteCatalog(t *testing.T) {
	descriptions := map[string]string{"1.23": "Custom Item"}
	priority := map[string]bool{"1.23": true}

	content := "Item 1.23: something\ncontext\nItem 5.02: departure\ncontext\n"

	items := ExtractItems(content, descriptions, priority)
	require.Len(t, items, 2)
	assert.Equal(t, "Custom Item", items[0].Description)
	assert.True(t, items[0].IsPriority)
	assert.Equal(t, "Other Item", items[1].Description)
	assert.False(t, items[1].IsPriority)
}
