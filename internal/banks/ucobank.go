package banks

import "regexp"

// UCO Bank.
func newUCOBank() Parser {
	return &rules{
		name:     "ucobank",
		currency: "INR",
		codes:    []string{"UCOBNK", "UCOBK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// A/c XX9904 debited with Rs.175.00 on 05-10-25 UPI/528812345678. Avl Bal Rs.1,925.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+debited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+UPI/(?P<ref>\d+))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// A/c XX9904 credited with Rs.6,500.00 on 05-10-25 by IMPS from VIVEK. Avl Bal Rs.8,425.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+credited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
