package banks

import "regexp"

// JazzCash mobile wallet (Pakistan).
func newJazzCash() Parser {
	return &rules{
		name:     "jazzcash",
		currency: "PKR",
		codes:    []string{"JAZZCASH", "8558"},
		names:    []string{"JazzCash"},
		accept:   []string{"paid", "received", "sent", "transferred"},
		patterns: []pattern{
			// You have paid Rs. 850.00 to K-ELECTRIC via JazzCash. TID: 025278443121.
			{
				re: regexp.MustCompile(`(?i)You have paid\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>.+?)\s+via JazzCash(?:[.\s]+TID:?\s*(?P<ref>\w+))?\.?$`),
				kind: expense,
			},
			// You have received Rs. 5,000.00 from 0300*****12 in your JazzCash account. TID: 025278500981.
			{
				re: regexp.MustCompile(`(?i)You have received\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<merchant>.+?)\s+in your JazzCash account(?:[.\s]+TID:?\s*(?P<ref>\w+))?\.?$`),
				kind: income,
			},
			// Rs. 2,000.00 sent to 0345*****67 from your JazzCash account.
			{
				re: regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+sent to\s+(?P<merchant>.+?)\s+from your JazzCash account(?:[.\s]+TID:?\s*(?P<ref>\w+))?\.?$`),
				kind: expense,
			},
		},
	}
}
