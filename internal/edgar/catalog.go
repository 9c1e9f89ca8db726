package edgar

// DefaultForms are the form types included when none are configured.
var DefaultForms = []string{"8-K", "8-K/A", "DEF 14A", "DEFA14A"}

// ItemDescriptions maps 8-K item numbers to readable descriptions.
// Partial list; items not present render as "Other Item".
var ItemDescriptions = map[string]string{
	"1.01": "Entry into Material Agreement",
	"1.02": "Termination of Material Agreement",
	"1.03": "Bankruptcy or Receivership",
	"2.01": "Acquisition/Disposition of Assets",
	"2.02": "Results of Operations (Earnings)",
	"2.03": "Creation of Direct Financial Obligation",
	"2.04": "Triggering Events (Acceleration)",
	"2.05": "Exit/Disposal Activities (Restructuring)",
	"2.06": "Material Impairments",
	"3.01": "Delisting or Transfer Notice",
	"3.02": "Unregistered Sales of Equity",
	"3.03": "Material Modification of Rights",
	"4.01": "Change in Accountant",
	"4.02": "Non-Reliance on Financial Statements",
	"5.01": "Change in Control",
	"5.02": "Departure/Appointment of Directors or Officers",
	"5.03": "Amendments to Articles/Bylaws",
	"5.04": "Temporary Suspension of Trading",
	"5.05": "Amendments to Code of Ethics",
	"5.06": "Change in Shell Company Status",
	"5.07": "Shareholder Vote Submission",
	"5.08": "Shareholder Nominations",
	"7.01": "Regulation FD Disclosure",
	"8.01": "Other Events",
	"9.01": "Financial Statements and Exhibits",
}

// PriorityItems are the item numbers highlighted as priority in reports.
var PriorityItems = map[string]bool{
	"1.01": true,
	"2.05": true,
	"5.01": true,
	"5.02": true,
}
