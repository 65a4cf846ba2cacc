package banks

import "regexp"

// Bank of India.
func newBOI() Parser {
	return &rules{
		name:     "boi",
		currency: "INR",
		codes:    []string{"BOIIND", "BOISMS"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// BOI: Rs.850.00 debited A/c XX4477 on 05-10-25 to FRESH MART by UPI ref no 528812345678. Avl Bal 9,340.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+to\s+(?P<merchant>.+?)\s+by UPI(?:\s+ref no\.?\s*(?P<ref>\d+))?(?:.*?Avl Bal\s*(?:Rs\.?|INR|₹)?\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// BOI: Rs.14,000.00 credited A/c XX4477 on 05-10-25 by NEFT from GUPTA STORES. Avl Bal 23,340.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)?\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
