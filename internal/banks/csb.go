package banks

import "regexp"

// CSB Bank (Catholic Syrian Bank).
func newCSB() Parser {
	return &rules{
		name:     "csb",
		currency: "INR",
		codes:    []string{"CSBBNK", "CSBANK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs.95.00 debited from A/c XX5121 on 05-10-25 via UPI to tea.kada@okhdfcbank ref 528812345678
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+via UPI to\s+(?P<merchant>\S+?)\s+ref\.?\s*(?P<ref>\d+)`),
				kind: expense,
			},
			// Rs.2,400.00 credited to A/c XX5121 on 05-10-25 via NEFT from JOSE K. Bal Rs.4,110.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+via\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
