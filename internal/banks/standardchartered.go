package banks

import "regexp"

// Standard Chartered India. Card spends may carry a foreign currency.
func newStandardChartered() Parser {
	return &rules{
		name:     "standardchartered",
		currency: "INR",
		codes:    []string{"SCBANK", "SCBIND"},
		names:    []string{"StanChart"},
		accept:   []string{"spent", "debited", "credited"},
		patterns: []pattern{
			// USD 12.99 spent on your Standard Chartered Credit Card XX8090 at OPENAI on 05-10-25. Avl Limit INR 1,10,000.00
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3}|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on your Standard Chartered (?P<cardkind>Credit )?Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Avl Limit\s*(?:INR|Rs\.?|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// INR 2,700.00 debited from A/c XX1160 on 05-10-25 towards NEFT to LIC OF INDIA. Bal INR 18,400.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+towards\s+\w+\s+to\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// INR 55,000.00 credited to A/c XX1160 on 05-10-25 by SALARY from GLOBEX INDIA. Bal INR 73,400.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
