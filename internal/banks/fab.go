package banks

import "regexp"

// First Abu Dhabi Bank.
func newFAB() Parser {
	return &rules{
		name:     "fab",
		currency: "AED",
		codes:    []string{"FABBANK", "FAB"},
		accept:   []string{"purchase", "debited", "credited"},
		patterns: []pattern{
			// Card Purchase AED 55.00 at STARBUCKS ABU DHABI using card ending 2210.
			{
				re: regexp.MustCompile(`(?i)Card Purchase\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+at\s+(?P<merchant>.+?)\s+using card ending\s+(?P<account>\d+)`),
				kind: expense, card: true,
			},
			// AED 4,250.00 credited to your account ending 7731.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to your account ending\s+(?P<account>\d+)`),
				kind: income,
			},
			// AED 1,100.00 debited from your account ending 7731 for ADDC.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from your account ending\s+(?P<account>\d+)(?:\s+for\s+(?P<merchant>[^.\n]+))?`),
				kind: expense,
			},
		},
	}
}
