package banks

import "regexp"

// Airtel Payments Bank.
func newAirtelBank() Parser {
	return &rules{
		name:     "airtelbank",
		currency: "INR",
		codes:    []string{"AIRBNK", "ARTLBK"},
		names:    []string{"AirtelBank"},
		accept:   []string{"debited", "credited", "paid"},
		reject:   []string{"recharge", "data pack"},
		patterns: []pattern{
			// Rs 120.00 debited from Airtel Payments Bank A/c XX5301 for UPI to chaiwala@axl. Ref 528812345678. Bal Rs 680.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from Airtel Payments Bank A/c\s+(?P<account>[Xx*\d]+)\s+for UPI to\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// Rs 2,000.00 credited to Airtel Payments Bank A/c XX5301 from manoj@ybl. Ref 528898765432. Bal Rs 2,680.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to Airtel Payments Bank A/c\s+(?P<account>[Xx*\d]+)\s+from\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
