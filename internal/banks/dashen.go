package banks

import "regexp"

// Dashen Bank (Ethiopia).
func newDashen() Parser {
	return &rules{
		name:     "dashen",
		currency: "ETB",
		codes:    []string{"DASHEN"},
		names:    []string{"DashenBank"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Dear customer, your account 5*****331 is debited with ETB 320.00 on 05/10/25. Ref DSH8812034.
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[\d*]+)\s+is debited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:.*?Ref\.?\s*(?P<ref>\w+))?`),
				kind: expense,
			},
			// Dear customer, your account 5*****331 is credited with ETB 2,000.00.
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[\d*]+)\s+is credited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:.*?Ref\.?\s*(?P<ref>\w+))?`),
				kind: income,
			},
		},
	}
}
