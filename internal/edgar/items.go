package edgar

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/swardson/edgarwatch/internal/types"
)

const (
	// contextWindow is how much raw text is captured after an item heading.
	contextWindow = 500
	// contextLimit is the maximum snippet length kept after cleanup.
	contextLimit = 300
)

// Match "Item 5.02:" etc. Filings vary in punctuation and spacing after the
// item number, and the heading line may carry trailing title text.
var itemPattern = regexp.MustCompile(`(?i)item\s*(\d+\.\d+)[:\s\-—]+([^\n]+)?`)

var whitespacePattern = regexp.MustCompile(`[\n\t\r\s\xA0]+`)

// ExtractItems scans raw 8-K submission text for numbered item headings and
// returns one FilingItem per distinct item number, in ascending item order.
// The first textual occurrence of an item number wins; repeats (tables of
// contents, exhibits) are skipped.
//
// descriptions and priority are lookup tables for the report; unmapped item
// numbers get the description "Other Item".
func ExtractItems(content string, descriptions map[string]string, priority map[string]bool) []types.FilingItem {
	itemsFound := []types.FilingItem{}
	if content == "" {
		return itemsFound
	}

	seen := make(map[string]bool)

	for _, match := range itemPattern.FindAllStringSubmatchIndex(content, -1) {
		itemNum := content[match[2]:match[3]]
		if seen[itemNum] {
			continue
		}

		// Grab a bounded window of text after the heading line.
		start := match[1]
		end := start + contextWindow
		if end > len(content) {
			end = len(content)
		}
		context := cleanContext(content[start:end])

		desc, ok := descriptions[itemNum]
		if !ok {
			desc = "Other Item"
		}

		itemsFound = append(itemsFound, types.FilingItem{
			Item:        itemNum,
			Description: desc,
			Context:     context,
			IsPriority:  priority[itemNum],
		})
		seen[itemNum] = true
	}

	sort.SliceStable(itemsFound, func(i, j int) bool {
		a, _ := strconv.ParseFloat(itemsFound[i].Item, 64)
		b, _ := strconv.ParseFloat(itemsFound[j].Item, 64)
		return a < b
	})
	return itemsFound
}

// cleanContext strips markup from a raw context window and normalizes it for
// display. The fixed-width window routinely cuts a tag in half; tokenizing
// drops both complete tags and any trailing unterminated fragment, so broken
// markup (e.g. partial XBRL tags) can never leak into the report.
func cleanContext(window string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(window))

	var sb strings.Builder
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}
		if tokenType == html.TextToken {
			sb.Write(tokenizer.Text())
			sb.WriteByte(' ')
		}
	}

	context := whitespacePattern.ReplaceAllString(sb.String(), " ")
	context = strings.TrimSpace(context)

	if runes := []rune(context); len(runes) > contextLimit {
		context = string(runes[:contextLimit]) + "..."
	}
	return context
}
