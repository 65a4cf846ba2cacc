package banks

import "regexp"

// United Bank Limited (Pakistan).
func newUBL() Parser {
	return &rules{
		name:     "ubl",
		currency: "PKR",
		codes:    []string{"UBL"},
		names:    []string{"UBL"},
		accept:   []string{"debited", "credited", "withdrawal"},
		patterns: []pattern{
			// Rs. 1,800.00 debited from account 2201****88 ATM withdrawal. Bal Rs. 22,350.00.
			{
				re: regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from account\s+(?P<account>[\d*]+)(?:\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\.?\s*Rs\.?\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense,
			},
			// Rs. 60,000.00 credited to account 2201****88.
			{
				re: regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to account\s+(?P<account>[\d*]+)`),
				kind: income,
			},
		},
	}
}
