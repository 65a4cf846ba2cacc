package banks

import "regexp"

// Indian Bank.
func newIndianBank() Parser {
	return &rules{
		name:     "indianbank",
		currency: "INR",
		codes:    []string{"INDBNK", "INDIAN"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your a/c *8765 debited Rs. 410.00 on 05-10-25 14:30 by UPI ref 528812345678. Bal: Rs. 5,120.00
			{
				re: regexp.MustCompile(`(?i)a/c\s+(?P<account>[Xx*\d]+)\s+debited\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:.*?UPI ref\.?\s*(?P<ref>\d+))?(?:.*?Bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Your a/c *8765 credited Rs. 11,000.00 on 05-10-25 by NEFT from MEENA TEXTILES. Bal: Rs. 16,120.00
			{
				re: regexp.MustCompile(`(?i)a/c\s+(?P<account>[Xx*\d]+)\s+credited\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
