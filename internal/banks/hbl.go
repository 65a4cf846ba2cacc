package banks

import "regexp"

// Habib Bank Limited (Pakistan).
func newHBL() Parser {
	return &rules{
		name:     "hbl",
		currency: "PKR",
		codes:    []string{"HBL"},
		names:    []string{"HBL"},
		accept:   []string{"debited", "credited", "purchase"},
		patterns: []pattern{
			// Dear Customer, PKR 5,400.00 has been debited from your account **3390 at DARAZ.PK. Avail Bal PKR 88,200.00.
			{
				re: regexp.MustCompile(`(?i)(?:PKR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+has been debited from your account\s+(?P<account>[*\d]+)(?:\s+at\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avail Bal\s*(?:PKR|Rs\.?)\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense,
			},
			// Dear Customer, PKR 120,000.00 has been credited to your account **3390.
			{
				re: regexp.MustCompile(`(?i)(?:PKR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+has been credited to your account\s+(?P<account>[*\d]+)`),
				kind: income,
			},
			// Purchase of PKR 2,150.00 on your HBL CreditCard **7781 at METRO CASH N CARRY.
			{
				re: regexp.MustCompile(`(?i)Purchase of\s+(?:PKR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on your HBL\s+(?P<cardkind>Credit|Debit)\s*Card\s+(?P<account>[*\d]+)\s+at\s+(?P<merchant>[^.\n]+)`),
				kind: expense, card: true, post: creditWhenGroup("cardkind"),
			},
		},
	}
}
