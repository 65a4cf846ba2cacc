package banks

import "regexp"

// Equity Bank (Kenya).
func newEquityBank() Parser {
	return &rules{
		name:     "equitybank",
		currency: "KES",
		codes:    []string{"EQUITYBANK", "EQUITY"},
		names:    []string{"EQUITYBANK"},
		accept:   []string{"debited", "credited", "withdrawn"},
		patterns: []pattern{
			// Your A/C 0120****5678 has been debited with KES 3,000.00 Ref EQB25278001. Bal KES 15,220.00.
			{
				re: regexp.MustCompile(`(?i)A/?C\s+(?P<account>[\d*]+)\s+has been debited with\s+(?P<currency>KES|Ksh)\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:\s+Ref\.?\s*(?P<ref>\w+))?(?:[.\s]+Bal\.?\s*(?:KES|Ksh)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Your A/C 0120****5678 has been credited with KES 25,000.00 from EMPLOYER LTD.
			{
				re: regexp.MustCompile(`(?i)A/?C\s+(?P<account>[\d*]+)\s+has been credited with\s+(?P<currency>KES|Ksh)\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Ref\.?\s*(?P<ref>\w+))?\.?$`),
				kind: income,
			},
		},
	}
}
