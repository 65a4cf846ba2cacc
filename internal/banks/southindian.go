package banks

import "regexp"

// South Indian Bank.
func newSouthIndian() Parser {
	return &rules{
		name:     "southindian",
		currency: "INR",
		codes:    []string{"SIBSMS", "SIBBNK"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs.510.00 debited from your A/c XX7250 on 05-10-25 (UPI Ref 528812345678 to kada@ybl). Bal Rs.2,990.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from your A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s*\(UPI Ref\.?\s*(?P<ref>\d+)\s+to\s+(?P<merchant>\S+?)\)(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Rs.7,750.00 credited to your A/c XX7250 on 05-10-25 by NEFT from THOMAS KURIAN. Bal Rs.10,740.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to your A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
