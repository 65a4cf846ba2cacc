package banks

import "regexp"

// IDBI Bank.
func newIDBI() Parser {
	return &rules{
		name:     "idbi",
		currency: "INR",
		codes:    []string{"IDBIBK", "IDBI"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your A/c XX0077 is debited for Rs 460.00 on 05-10-25 towards UPI/RELIANCE SMART (Ref 528812345678). Avl Bal Rs 3,040.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+is debited for\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+towards\s+(?:UPI/)?(?P<merchant>[^(.\n]+?)(?:\s*\(Ref\.?\s*(?P<ref>\d+)\))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// Your A/c XX0077 is credited with Rs 21,500.00 on 05-10-25 by NEFT from MAHESH AND CO. Avl Bal Rs 24,540.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+is credited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
