package banks

import "regexp"

// Commercial International Bank (Egypt).
func newCIB() Parser {
	return &rules{
		name:     "cib",
		currency: "EGP",
		codes:    []string{"CIB"},
		names:    []string{"CIB"},
		accept:   []string{"purchase", "debited", "credited"},
		patterns: []pattern{
			// Purchase of EGP 650.00 on card ending 4471 at CARREFOUR MAADI. Avl bal EGP 11,200.00.
			{
				re: regexp.MustCompile(`(?i)Purchase of\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+(?P<cardkind>credit\s+)?card ending\s+(?P<account>\d+)\s+at\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Avl bal\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense, card: true, post: creditWhenGroup("cardkind"),
			},
			// EGP 15,000.00 credited to your account XXXX9023.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to your account\s+(?P<account>[Xx*\d]+)`),
				kind: income,
			},
			// EGP 2,300.00 debited from your account XXXX9023 for FAWRY.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from your account\s+(?P<account>[Xx*\d]+)(?:\s+for\s+(?P<merchant>[^.\n]+))?`),
				kind: expense,
			},
		},
	}
}
