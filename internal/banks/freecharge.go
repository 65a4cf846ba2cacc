package banks

import "regexp"

// Freecharge wallet.
func newFreecharge() Parser {
	return &rules{
		name:     "freecharge",
		currency: "INR",
		codes:    []string{"FRCHRG", "FREECH"},
		names:    []string{"Freecharge"},
		accept:   []string{"paid", "added"},
		patterns: []pattern{
			// Rs.99 paid to JIO RECHARGE via Freecharge. Txn ID FC2510056789.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+paid to\s+(?P<merchant>.+?)\s+via Freecharge(?:[.\s]+Txn ID\.?\s*(?P<ref>\w+))?`),
				kind: expense,
			},
		},
	}
}
