package banks

import "regexp"

// RAKBANK (National Bank of Ras Al Khaimah).
func newRAKBank() Parser {
	return &rules{
		name:     "rakbank",
		currency: "AED",
		codes:    []string{"RAKBANK"},
		accept:   []string{"purchase", "credited", "debited"},
		patterns: []pattern{
			// AED 88.00 was spent on your RAKBANK Card ending 3319 at LULU HYPERMARKET.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+was spent on your RAKBANK\s*(?P<cardkind>Debit|Credit)?\s*Card ending\s+(?P<account>\d+)\s+at\s+(?P<merchant>[^.\n]+)`),
				kind: expense, card: true, post: creditWhenGroup("cardkind"),
			},
			// AED 3,150.00 credited to account no. XXX2204.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to account no\.?\s*(?P<account>[Xx*\d]+)`),
				kind: income,
			},
		},
	}
}
