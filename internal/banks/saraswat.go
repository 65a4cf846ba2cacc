package banks

import "regexp"

// Saraswat Co-operative Bank.
func newSaraswat() Parser {
	return &rules{
		name:     "saraswat",
		currency: "INR",
		codes:    []string{"SRCBNK", "SARBNK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs.385.00 debited from A/c XX2260 on 05-10-25 by UPI ref 528812345678. Bal Rs.4,115.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+by UPI(?:\s+ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Rs.12,500.00 credited to A/c XX2260 on 05-10-25 by NEFT from SAMANT BROS. Bal Rs.16,615.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
