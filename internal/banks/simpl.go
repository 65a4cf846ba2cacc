package banks

import "regexp"

// Simpl pay-later.
func newSimpl() Parser {
	return &rules{
		name:     "simpl",
		currency: "INR",
		codes:    []string{"SIMPLP", "GETSMPL"},
		names:    []string{"Simpl"},
		accept:   []string{"charged", "paid"},
		reject:   []string{"bill of", "clear your"},
		patterns: []pattern{
			// Rs.310 charged on Simpl for Zepto order on 05-10-25.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+charged on Simpl for\s+(?P<merchant>.+?)(?:\s+order)?\s+on\s+\S+`),
				kind: expense,
			},
		},
	}
}
