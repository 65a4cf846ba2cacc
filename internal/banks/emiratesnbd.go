package banks

import "regexp"

// Emirates NBD (UAE).
func newEmiratesNBD() Parser {
	return &rules{
		name:     "emiratesnbd",
		currency: "AED",
		codes:    []string{"EMNBD", "ENBD"},
		names:    []string{"EmiratesNBD"},
		accept:   []string{"purchase", "debit", "credit", "transfer", "withdrawal", "salary"},
		patterns: []pattern{
			// Purchase of AED 210.50 with Debit Card ending 4412 at CARREFOUR DUBAI. Avl Bal AED 8,904.12.
			{
				re: regexp.MustCompile(`(?i)Purchase of\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+with\s+(?P<cardkind>Debit|Credit)\s+Card ending\s+(?P<account>\d+)\s+at\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Avl Bal\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense, card: true, post: creditWhenGroup("cardkind"),
			},
			// Salary of AED 15,000.00 credited to account ending 9921.
			{
				re: regexp.MustCompile(`(?i)(?:Salary|Amount) of\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to (?:your )?account ending\s+(?P<account>\d+)`),
				kind: income,
			},
			// AED 2,000.00 transferred from account ending 9921 to IBAN AE07xxxx.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+transferred from (?:your )?account ending\s+(?P<account>\d+)\s+to\s+(?P<merchant>[^.\n]+)`),
				kind: expense,
			},
			// Cash withdrawal of AED 500.00 with card ending 4412.
			{
				re: regexp.MustCompile(`(?i)Cash withdrawal of\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+with card ending\s+(?P<account>\d+)`),
				kind: expense, card: true,
			},
		},
	}
}
