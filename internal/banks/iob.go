package banks

import "regexp"

// Indian Overseas Bank.
func newIOB() Parser {
	return &rules{
		name:     "iob",
		currency: "INR",
		codes:    []string{"IOBCHN", "IOBANK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs.330.00 debited in your A/c XX5580 on 05/10/2025 UPI:528812345678:MEDPLUS. Bal Rs.2,870.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited in your A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+UPI:(?P<ref>\d+):(?P<merchant>[^.\n]+?)(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// Rs.4,200.00 credited in your A/c XX5580 on 05/10/2025 by transfer. Bal Rs.7,070.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited in your A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
