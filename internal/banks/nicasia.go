package banks

import "regexp"

// NIC Asia Bank (Nepal).
func newNICAsia() Parser {
	return &rules{
		name:     "nicasia",
		currency: "NPR",
		codes:    []string{"NICASIA", "NICA"},
		names:    []string{"NIC_ASIA"},
		accept:   []string{"withdrawn", "deposited", "debited", "credited"},
		patterns: []pattern{
			// NPR 2,500.00 withdrawn from A/C ...0234 via ATM. Remarks: KATHMANDU BRANCH. Bal NPR 18,400.00.
			{
				re: regexp.MustCompile(`(?i)(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+(?:withdrawn from|debited from)\s+A/?C\s+[.\s]*(?P<account>[\d*]+)(?:.*?Remarks:?\s*(?P<merchant>[^.\n]+?))?(?:[.\s]+Bal\.?\s*(?:NPR|Rs\.?)\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense,
			},
			// NPR 35,000.00 deposited to A/C ...0234. Remarks: SALARY ASHWIN.
			{
				re: regexp.MustCompile(`(?i)(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+(?:deposited to|credited to)\s+A/?C\s+[.\s]*(?P<account>[\d*]+)(?:.*?Remarks:?\s*(?P<merchant>[^.\n]+?))?\.?$`),
				kind: income,
			},
		},
	}
}
