package banks

import "regexp"

// Nabil Bank (Nepal).
func newNabil() Parser {
	return &rules{
		name:     "nabil",
		currency: "NPR",
		codes:    []string{"NABIL"},
		names:    []string{"NabilBank"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your A/C 0101****3344 debited by NPR 1,200.00 on 2025-10-05. Remarks: FONEPAY/DARAZ.
			{
				re: regexp.MustCompile(`(?i)A/?C\s+(?P<account>[\d*]+)\s+debited by\s+(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:.*?Remarks:?\s*(?P<merchant>[^.\n]+?))?\.?$`),
				kind: expense,
			},
			// Your A/C 0101****3344 credited by NPR 50,000.00.
			{
				re: regexp.MustCompile(`(?i)A/?C\s+(?P<account>[\d*]+)\s+credited by\s+(?:NPR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:.*?Remarks:?\s*(?P<merchant>[^.\n]+?))?\.?$`),
				kind: income,
			},
		},
	}
}
