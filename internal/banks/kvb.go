package banks

import "regexp"

// Karur Vysya Bank.
func newKVB() Parser {
	return &rules{
		name:     "kvb",
		currency: "INR",
		codes:    []string{"KVBANK", "KVBUPI"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs.140.00 debited in A/c XX8830 on 05-10-25 for UPI-ARASU STORES ref 528812345678. Bal Rs.960.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited in A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+for\s+(?:UPI-)?(?P<merchant>.+?)\s+ref\.?\s*(?P<ref>\d+)(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Rs.5,250.00 credited in A/c XX8830 on 05-10-25 by IMPS from SELVI. Bal Rs.6,210.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited in A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
