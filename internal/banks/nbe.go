package banks

import "regexp"

// National Bank of Egypt.
func newNBE() Parser {
	return &rules{
		name:     "nbe",
		currency: "EGP",
		codes:    []string{"NBE"},
		names:    []string{"NBE"},
		accept:   []string{"debited", "credited", "شراء", "خصم", "إضافة"},
		reject:   []string{"رمز التحقق"},
		patterns: []pattern{
			// تم خصم EGP 420.00 من حساب ****7810 لدى VODAFONE CASH
			{
				re: regexp.MustCompile(`(?s)تم خصم\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+من حساب\s+(?P<account>[*\d]+)(?:.*?لدى\s+(?P<merchant>[^\n]+))?`),
				kind: expense,
			},
			// تم إضافة EGP 9,000.00 إلى حساب ****7810
			{
				re: regexp.MustCompile(`(?s)تم إضافة\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+إلى حساب\s+(?P<account>[*\d]+)`),
				kind: income,
			},
			// EGP 310.00 debited from account ****7810 at METRO MARKET.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from account\s+(?P<account>[Xx*\d]+)(?:\s+at\s+(?P<merchant>[^.\n]+))?`),
				kind: expense,
			},
		},
	}
}
