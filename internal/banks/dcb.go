package banks

import "regexp"

// DCB Bank.
func newDCB() Parser {
	return &rules{
		name:     "dcb",
		currency: "INR",
		codes:    []string{"DCBBNK", "DCBBANK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+via UPI to\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?$`),
				kind: expense,
			},
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+via\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
