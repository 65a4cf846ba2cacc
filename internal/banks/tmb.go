package banks

import "regexp"

// Tamilnad Mercantile Bank.
func newTMB() Parser {
	return &rules{
		name:     "tmb",
		currency: "INR",
		codes:    []string{"TMBBNK", "TMBSMS"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+debited\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+UPI to\s+(?P<merchant>\S+?)(?:[.\s]+ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+credited\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
