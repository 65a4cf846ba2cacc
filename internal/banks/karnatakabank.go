package banks

import "regexp"

// Karnataka Bank.
func newKarnatakaBank() Parser {
	return &rules{
		name:     "karnatakabank",
		currency: "INR",
		codes:    []string{"KTKBNK", "KBLBNK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs.220.00 debited from A/c XX0192 on 05-10-25 towards UPI-HOTEL DWARAKA. Ref no 528812345678
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+towards\s+(?:UPI-)?(?P<merchant>[^.\n]+?)(?:[.\s]+Ref no\.?\s*(?P<ref>\d+))?$`),
				kind: expense,
			},
			// Rs.3,000.00 credited to A/c XX0192 on 05-10-25 by UPI from shet@okaxis. Ref no 528898765432
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+by UPI from\s+(?P<merchant>\S+?)(?:[.\s]+Ref no\.?\s*(?P<ref>\d+))?$`),
				kind: income,
			},
		},
	}
}
