package banks

import "regexp"

// Citibank India (legacy senders still live after the Axis migration).
func newCiti() Parser {
	return &rules{
		name:     "citi",
		currency: "INR",
		codes:    []string{"CITIBK", "CITIIN"},
		names:    []string{"Citibank"},
		accept:   []string{"spent", "debited", "credited"},
		patterns: []pattern{
			// Rs.3,450.00 was spent on your Citi Credit Card XX4002 at CROMA on 05-OCT-25. Avl Limit Rs.96,550.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+was spent on your Citi (?P<cardkind>Credit )?Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Avl Limit\s*(?:Rs\.?|INR|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// Your Citibank A/c XX7713 is debited with Rs.5,000.00 on 05-OCT-25 towards FUND TRANSFER to SAVINGS XX8821.
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+is debited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+towards\s+(?P<merchant>[^.\n]+)`),
				kind: expense,
			},
			// Your Citibank A/c XX7713 is credited with Rs.75,000.00 on 05-OCT-25. Info: SALARY GLOBEX.
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+is credited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:[.\s]+Info:?\s*(?P<merchant>[^.\n]+))?`),
				kind: income,
			},
		},
	}
}
