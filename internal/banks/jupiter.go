package banks

import "regexp"

// Jupiter (neobank on Federal Bank rails, own sender and format).
func newJupiter() Parser {
	return &rules{
		name:     "jupiter",
		currency: "INR",
		codes:    []string{"JUPITR", "JUPMNY"},
		names:    []string{"Jupiter"},
		accept:   []string{"spent", "paid", "received"},
		patterns: []pattern{
			// You spent ₹420 at Blinkit from your Jupiter account XX8814 via UPI. Ref 528812345678
			{
				re: regexp.MustCompile(`(?i)spent\s+(?:₹|Rs\.?|INR)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+at\s+(?P<merchant>.+?)\s+from your Jupiter account\s+(?P<account>[Xx*\d]+)(?:.*?Ref\.?\s*(?P<ref>\d+))?`),
				kind: expense,
			},
			// You received ₹5,000 from Papa in your Jupiter account XX8814. Ref 528898765432
			{
				re: regexp.MustCompile(`(?i)received\s+(?:₹|Rs\.?|INR)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<merchant>.+?)\s+in your Jupiter account\s+(?P<account>[Xx*\d]+)(?:.*?Ref\.?\s*(?P<ref>\d+))?`),
				kind: income,
			},
		},
	}
}
