package banks

import "regexp"

// Jammu & Kashmir Bank.
func newJKBank() Parser {
	return &rules{
		name:     "jkbank",
		currency: "INR",
		codes:    []string{"JKBANK", "JKBSMS"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your A/c XX9944 debited by Rs.610.00 on 05-10-25 through UPI to wani.traders@jkb. Ref 528812345678
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+debited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+through UPI to\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?$`),
				kind: expense,
			},
			// Your A/c XX9944 credited by Rs.19,000.00 on 05-10-25 through NEFT from BHAT ORCHARDS. Bal Rs.27,300.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+credited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+through\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
