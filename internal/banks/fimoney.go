package banks

import "regexp"

// Fi Money (neobank on Federal Bank rails).
func newFiMoney() Parser {
	return &rules{
		name:     "fimoney",
		currency: "INR",
		codes:    []string{"FIMNYB", "FIMONY"},
		names:    []string{"FiMoney"},
		accept:   []string{"spent", "paid", "received", "debited", "credited"},
		patterns: []pattern{
			// ₹180 paid to Third Wave Coffee from Fi account XX2231. UPI Ref 528812345678
			{
				re: regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+paid to\s+(?P<merchant>.+?)\s+from Fi account\s+(?P<account>[Xx*\d]+)(?:.*?UPI Ref\.?\s*(?P<ref>\d+))?`),
				kind: expense,
			},
			// ₹12,000 credited to your Fi account XX2231 from OLA ELECTRIC SALARY. Ref 528898765432
			{
				re: regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to your Fi account\s+(?P<account>[Xx*\d]+)\s+from\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?$`),
				kind: income,
			},
		},
	}
}
