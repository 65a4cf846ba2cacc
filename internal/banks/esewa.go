package banks

import "regexp"

// eSewa digital wallet (Nepal).
func newESewa() Parser {
	return &rules{
		name:     "esewa",
		currency: "NPR",
		codes:    []string{"ESEWA"},
		names:    []string{"eSewa"},
		accept:   []string{"paid", "received", "loaded"},
		patterns: []pattern{
			// You paid NPR 450.00 to NEPAL ELECTRICITY AUTHORITY via eSewa. Trace ID: 0N7X2K.
			{
				re: regexp.MustCompile(`(?i)You paid\s+(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>.+?)\s+via eSewa(?:[.\s]+Trace ID:?\s*(?P<ref>\w+))?\.?$`),
				kind: expense,
			},
			// You received NPR 1,000.00 from 98*****210 in your eSewa wallet.
			{
				re: regexp.MustCompile(`(?i)You received\s+(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<merchant>.+?)\s+in your eSewa wallet(?:[.\s]+Trace ID:?\s*(?P<ref>\w+))?\.?$`),
				kind: income,
			},
		},
	}
}
