package banks

import "regexp"

// Wise multi-currency account. No default currency makes sense here, so
// every pattern must capture the currency token itself.
func newWise() Parser {
	return &rules{
		name:     "wise",
		currency: "USD",
		codes:    []string{"WISE"},
		names:    []string{"Wise"},
		accept:   []string{"spent", "received", "sent", "converted"},
		patterns: []pattern{
			// You spent 24.90 EUR at SPOTIFY with your Wise card ending 5102.
			{
				re: regexp.MustCompile(`(?i)You spent\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+(?P<currency>[A-Z]{3})\s+at\s+(?P<merchant>.+?)\s+with your Wise card(?:\s+ending\s+(?P<account>\d+))?`),
				kind: expense, card: true,
			},
			// You received 1,500.00 USD from ACME CONSULTING into your Wise account.
			{
				re: regexp.MustCompile(`(?i)You received\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+(?P<currency>[A-Z]{3})\s+from\s+(?P<merchant>.+?)\s+into your Wise account`),
				kind: income,
			},
			// You sent 900.00 GBP to JOHN SMITH. Reference: INV-2210.
			{
				re: regexp.MustCompile(`(?i)You sent\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+(?P<currency>[A-Z]{3})\s+to\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Reference:?\s*(?P<ref>[\w-]+))?\.?$`),
				kind: expense,
			},
		},
	}
}
