package banks

import "regexp"

// Abu Dhabi Commercial Bank.
func newADCB() Parser {
	return &rules{
		name:     "adcb",
		currency: "AED",
		codes:    []string{"ADCB", "ADCBAlert"},
		accept:   []string{"debited", "credited", "purchase"},
		patterns: []pattern{
			// Your account XXX5540 is debited with AED 330.00 towards DEWA. Available balance AED 12,050.88.
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[Xx*\d]+)\s+is debited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+towards\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Available balance\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense,
			},
			// Your account XXX5540 is credited with AED 9,500.00.
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[Xx*\d]+)\s+is credited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)`),
				kind: income,
			},
			// Purchase of AED 74.25 on your Credit Card XXX8101 at NOON.COM.
			{
				re: regexp.MustCompile(`(?i)Purchase of\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on your\s+(?P<cardkind>Debit|Credit)\s+Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>[^.\n]+)`),
				kind: expense, card: true, post: creditWhenGroup("cardkind"),
			},
		},
	}
}
