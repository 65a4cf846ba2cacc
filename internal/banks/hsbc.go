package banks

import "regexp"

// HSBC India. A multi-currency card issuer: the currency is always taken
// from the message, never assumed.
func newHSBC() Parser {
	return &rules{
		name:     "hsbc",
		currency: "INR",
		codes:    []string{"HSBCIN", "HSBCBK"},
		names:    []string{"HSBC"},
		accept:   []string{"spent", "debited", "credited"},
		patterns: []pattern{
			// GBP 42.50 spent on HSBC Credit Card XX2219 at TESCO LONDON on 05-10-25. Avl Limit INR 2,10,000.00
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on HSBC (?P<cardkind>Credit )?Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Avl Limit\s*(?:[A-Z]{3}|Rs\.?|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// INR 12,000.00 is debited from HSBC A/c XX3301 on 05-10-25 towards NEFT to ANAND PROPERTIES. Bal INR 88,000.00
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+is debited from HSBC A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+towards\s+\w+\s+to\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Bal\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// INR 1,50,000.00 is credited to HSBC A/c XX3301 on 05-10-25. Bal INR 2,38,000.00
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+is credited to HSBC A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:[.\s]+Bal\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
		},
	}
}
