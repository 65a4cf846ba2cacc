package banks

import "regexp"

// KCB Bank (Kenya).
func newKCB() Parser {
	return &rules{
		name:     "kcb",
		currency: "KES",
		codes:    []string{"KCB"},
		names:    []string{"KCB"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// KES 4,500.00 debited from A/C ****8812 to pay KPLC PREPAID. Ref KCB2527811. Bal KES 31,400.00.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>KES|Ksh)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/?C\s+(?P<account>[\d*]+)(?:\s+to pay\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Ref\.?\s*(?P<ref>\w+))?(?:[.\s]+Bal\.?\s*(?:KES|Ksh)\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense,
			},
			// KES 18,000.00 credited to A/C ****8812. Ref SAL252780.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>KES|Ksh)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/?C\s+(?P<account>[\d*]+)(?:[.\s]+Ref\.?\s*(?P<ref>\w+))?`),
				kind: income,
			},
		},
	}
}
