package banks

import "regexp"

// Kotak Mahindra Bank.
func newKotak() Parser {
	return &rules{
		name:     "kotak",
		currency: "INR",
		codes:    []string{"KOTAKB", "KOTAKM"},
		names:    []string{"KOTAK"},
		accept:   []string{"sent rs", "received rs", "debited", "credited"},
		patterns: []pattern{
			// Sent Rs.200.00 from Kotak Bank AC X1234 to swiggy@ybl on 05-10-25. UPI Ref 528812345678.
			{
				re: regexp.MustCompile(`(?i)Sent\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from Kotak Bank AC\s+(?P<account>[Xx*\d]+)\s+to\s+(?P<merchant>\S+?)\s+on\s+\S+(?:\s*UPI Ref\.?\s*(?P<ref>\d+))?`),
				kind: expense,
			},
			// Received Rs.1500.00 in your Kotak Bank AC X1234 from ravi@okaxis on 05-10-25. UPI Ref:528898765432.
			{
				re: regexp.MustCompile(`(?i)Received\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+in your Kotak Bank AC\s+(?P<account>[Xx*\d]+)\s+from\s+(?P<merchant>\S+?)\s+on\s+\S+(?:\s*UPI Ref:?\s*(?P<ref>\d+))?`),
				kind: income,
			},
			// Rs.3500.00 debited from Kotak Bank AC X1234 towards ZERODHA BROKING on 05-10-25. Avl Bal Rs.21500.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from Kotak Bank AC\s+(?P<account>[Xx*\d]+)\s+towards\s+(?P<merchant>[^.\n]+?)\s+on\s+\S+(?:.*?Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
		},
	}
}
