package banks

import "regexp"

// Union Bank of India.
func newUnionBank() Parser {
	return &rules{
		name:     "unionbank",
		currency: "INR",
		codes:    []string{"UNIONB", "UBOI"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// A/c *4567 Debited for Rs:350.00 on 05-10-2025 14:22:10 by Mob Bk ref no 528812345678. Avl Bal Rs:6,540.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+Debited for\s+Rs:?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:.*?ref no\.?\s*(?P<ref>\d+))?(?:.*?Avl Bal\s*Rs:?\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// A/c *4567 Credited for Rs:9,000.00 on 05-10-2025 by NEFT from KIRAN ENTERPRISES. Avl Bal Rs:15,540.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+Credited for\s+Rs:?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*Rs:?\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
