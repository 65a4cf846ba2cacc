package banks

import "regexp"

// OneCard credit card.
func newOneCard() Parser {
	return &rules{
		name:     "onecard",
		currency: "INR",
		codes:    []string{"ONECRD", "ONECARD"},
		names:    []string{"OneCard"},
		accept:   []string{"spent", "swiped", "charged"},
		reject:   []string{"bill is generated"},
		patterns: []pattern{
			// You spent INR 999.00 on your OneCard XX7741 at SPOTIFY INDIA on 05-10-25. Available limit INR 79,001.00
			{
				re: regexp.MustCompile(`(?i)spent\s+(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on your OneCard\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Available limit\s*(?:INR|Rs\.?|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true, credit: true,
			},
		},
	}
}
