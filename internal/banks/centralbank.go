package banks

import "regexp"

// Central Bank of India.
func newCentralBank() Parser {
	return &rules{
		name:     "centralbank",
		currency: "INR",
		codes:    []string{"CENTBK", "CBI"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your A/c XX3310 Debited by Rs 290.00 on 05-10-25 thru UPI ref 528812345678. Clr Bal Rs 3,610.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+Debited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+thru UPI ref\.?\s*(?P<ref>\d+))?(?:.*?Clr Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Your A/c XX3310 Credited by Rs 8,800.00 on 05-10-25 by NEFT from RAO AGENCIES. Clr Bal Rs 12,410.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+Credited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Clr Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
