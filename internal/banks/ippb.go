package banks

import "regexp"

// India Post Payments Bank.
func newIPPB() Parser {
	return &rules{
		name:     "ippb",
		currency: "INR",
		codes:    []string{"IPBSMS", "IPPBNK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+debited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+via UPI to\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?$`),
				kind: expense,
			},
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+credited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
