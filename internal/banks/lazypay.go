package banks

import "regexp"

// LazyPay pay-later.
func newLazyPay() Parser {
	return &rules{
		name:     "lazypay",
		currency: "INR",
		codes:    []string{"LZYPAY", "LAZYPA"},
		names:    []string{"LazyPay"},
		accept:   []string{"paid", "used lazypay"},
		reject:   []string{"repayment", "dues of"},
		patterns: []pattern{
			// You used LazyPay to pay Rs.230 to Swiggy on 05-10-25. Txn ID LP2510054321.
			{
				re: regexp.MustCompile(`(?i)used LazyPay to pay\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>.+?)\s+on\s+\S+(?:[.\s]+Txn ID\.?\s*(?P<ref>\w+))?`),
				kind: expense,
			},
		},
	}
}
