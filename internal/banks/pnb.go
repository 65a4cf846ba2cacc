package banks

import "regexp"

// Punjab National Bank.
func newPNB() Parser {
	return &rules{
		name:     "pnb",
		currency: "INR",
		codes:    []string{"PNBSMS", "PNBTXN"},
		names:    []string{"PNB"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your A/c XX2345 debited for Rs.750.00 on 05-10-25 towards UPI-BIGBASKET. Bal Rs.8,420.10
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+debited for\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+towards\s+(?:UPI-)?(?P<merchant>[^.\n]+?)(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Your A/c XX2345 credited with Rs.12,000.00 on 05-10-25 by NEFT from SHARMA TRADERS. Bal Rs.20,420.10
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+credited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
