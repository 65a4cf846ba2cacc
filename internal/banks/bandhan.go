package banks

import "regexp"

// Bandhan Bank.
func newBandhan() Parser {
	return &rules{
		name:     "bandhan",
		currency: "INR",
		codes:    []string{"BDBLBK", "BANDHN"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs 640.00 debited from A/c XX6612 on 05-10-25 by UPI to bigbazaar@hdfcbank. Ref 528812345678. Avl Bal Rs 4,560.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+by UPI to\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// Rs 9,100.00 credited to A/c XX6612 on 05-10-25 by NEFT from BARUA AND SONS. Avl Bal Rs 13,660.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
