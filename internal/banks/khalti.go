package banks

import "regexp"

// Khalti digital wallet (Nepal).
func newKhalti() Parser {
	return &rules{
		name:     "khalti",
		currency: "NPR",
		codes:    []string{"KHALTI"},
		names:    []string{"Khalti"},
		accept:   []string{"paid", "received"},
		patterns: []pattern{
			// Rs. 300.00 paid to NCELL TOPUP from your Khalti wallet. Idx: K8812097.
			{
				re: regexp.MustCompile(`(?i)(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+paid to\s+(?P<merchant>.+?)\s+from your Khalti wallet(?:[.\s]+Idx:?\s*(?P<ref>\w+))?\.?$`),
				kind: expense,
			},
			// Rs. 2,000.00 received from SUNITA K in your Khalti wallet.
			{
				re: regexp.MustCompile(`(?i)(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+received from\s+(?P<merchant>.+?)\s+in your Khalti wallet(?:[.\s]+Idx:?\s*(?P<ref>\w+))?\.?$`),
				kind: income,
			},
		},
	}
}
