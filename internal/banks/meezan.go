package banks

import "regexp"

// Meezan Bank (Pakistan).
func newMeezan() Parser {
	return &rules{
		name:     "meezan",
		currency: "PKR",
		codes:    []string{"MEEZAN", "MEZN"},
		names:    []string{"MeezanBank"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// PKR 3,200.00 debited from A/C **9921 via Raast to ALI TRADERS. Bal PKR 45,100.00.
			{
				re: regexp.MustCompile(`(?i)(?:PKR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/?C\s+(?P<account>[*\d]+)(?:\s+via \w+)?(?:\s+to\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\.?\s*(?:PKR|Rs\.?)\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense,
			},
			// PKR 80,000.00 credited to A/C **9921.
			{
				re: regexp.MustCompile(`(?i)(?:PKR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/?C\s+(?P<account>[*\d]+)`),
				kind: income,
			},
		},
	}
}
