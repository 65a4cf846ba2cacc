package banks

import "regexp"

// Canara Bank.
func newCanara() Parser {
	return &rules{
		name:     "canara",
		currency: "INR",
		codes:    []string{"CANBNK", "CANARA"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// An amount of INR 620.00 has been DEBITED to your account XX8912 on 05/10/2025 towards UPI/SWIGGY. Total Avail.bal INR 4,310.75
			{
				re: regexp.MustCompile(`(?i)amount of\s+(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+has been DEBITED to your account\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+towards\s+(?:UPI/)?(?P<merchant>[^.\n]+?))?(?:[.\s]+Total Avail\.?\s*bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// An amount of INR 15,000.00 has been CREDITED to your account XX8912 on 05/10/2025 by NEFT-ACME CORP. Total Avail.bal INR 19,310.75
			{
				re: regexp.MustCompile(`(?i)amount of\s+(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+has been CREDITED to your account\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+(?:\w+-)?(?P<merchant>[^.\n]+?))?(?:[.\s]+Total Avail\.?\s*bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
		},
	}
}
