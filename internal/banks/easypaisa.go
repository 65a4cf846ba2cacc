package banks

import "regexp"

// Easypaisa mobile wallet (Pakistan).
func newEasypaisa() Parser {
	return &rules{
		name:     "easypaisa",
		currency: "PKR",
		codes:    []string{"EASYPAISA", "3737"},
		names:    []string{"Easypaisa"},
		accept:   []string{"paid", "received", "sent"},
		patterns: []pattern{
			// Rs 1,250.00 paid to FOODPANDA from your Easypaisa account. Trx ID 41022998451.
			{
				re: regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+paid to\s+(?P<merchant>.+?)\s+from your Easypaisa account(?:[.\s]+Trx ID\s*(?P<ref>\w+))?\.?$`),
				kind: expense,
			},
			// Rs 3,000.00 received from AHMED R in your Easypaisa account. Trx ID 41023001272.
			{
				re: regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+received from\s+(?P<merchant>.+?)\s+in your Easypaisa account(?:[.\s]+Trx ID\s*(?P<ref>\w+))?\.?$`),
				kind: income,
			},
		},
	}
}
