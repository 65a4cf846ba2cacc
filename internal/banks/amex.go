package banks

import "regexp"

// American Express. Credit-only issuer, multi-currency.
func newAmex() Parser {
	return &rules{
		name:     "amex",
		currency: "INR",
		codes:    []string{"AMEXIN", "AMEX"},
		names:    []string{"AmexIN"},
		accept:   []string{"spent", "charged", "transaction of"},
		reject:   []string{"statement is ready", "payment received"},
		patterns: []pattern{
			// Alert: You've spent INR 5,230.00 on your AMEX card ** 61005 at TAJ HOTELS on 5 October 2025.
			{
				re: regexp.MustCompile(`(?i)spent\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on your AMEX card\s+(?P<account>[*\sXx\d]+?)\s+at\s+(?P<merchant>.+?)\s+on\s`),
				kind: expense, card: true, credit: true,
			},
			// A transaction of USD 39.00 was charged on your AMEX card ** 61005 at GITHUB on 5 October 2025.
			{
				re: regexp.MustCompile(`(?i)transaction of\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+was charged on your AMEX card\s+(?P<account>[*\sXx\d]+?)\s+at\s+(?P<merchant>.+?)\s+on\s`),
				kind: expense, card: true, credit: true,
			},
		},
	}
}
