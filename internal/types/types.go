package types

// FilingItem is one numbered disclosure item matched inside a filing body.
type FilingItem struct {
	Item        string
	Description string
	Context     string
	IsPriority  bool
}

// Filing is one row of the EDGAR daily index, enriched as the pipeline runs.
type Filing struct {
	CIK         string
	CompanyName string
	FormType    string
	DateFiled   string
	Filename    string
	Accession   string
	URL         string // best browser URL (primary document, else index page)
	RawURL      string // raw submission URL used to fetch content

	// enriched fields
	Ticker string
	Items  []FilingItem // nil until the filing has been processed
}

// HasPriorityItems reports whether any extracted item is in the priority set.
func (f Filing) HasPriorityItems() bool {
	for _, item := range f.Items {
		if item.IsPriority {
			return true
		}
	}
	return false
}
