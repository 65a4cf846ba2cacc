package banks

import "regexp"

// Equitas Small Finance Bank.
func newEquitas() Parser {
	return &rules{
		name:     "equitas",
		currency: "INR",
		codes:    []string{"EQUTAS", "EQUBNK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+for UPI to\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
