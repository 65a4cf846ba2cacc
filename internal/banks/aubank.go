package banks

import "regexp"

// AU Small Finance Bank.
func newAUBank() Parser {
	return &rules{
		name:     "aubank",
		currency: "INR",
		codes:    []string{"AUBANK", "AUSFB"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// INR 260.00 debited from A/c XX2210 on 05-10-25 via UPI to rapido@ybl. UPI Ref 528812345678. Avl Bal INR 2,190.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+via UPI to\s+(?P<merchant>\S+?)(?:[.\s]+UPI Ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Avl Bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// INR 6,000.00 credited to A/c XX2210 on 05-10-25 via IMPS from SUNIL. Avl Bal INR 8,190.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+via\s+\w+\s+from\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Avl Bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
