package banks

import "regexp"

// Awash Bank (Ethiopia).
func newAwash() Parser {
	return &rules{
		name:     "awash",
		currency: "ETB",
		codes:    []string{"AWASH"},
		names:    []string{"AwashBank"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your account 013*****890 has been debited with ETB 750.00. Balance: ETB 4,210.00. Ref: TT2527800412
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[\d*]+)\s+has been debited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:[.\s]+Balance:?\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?(?:[.\s]+Ref:?\s*(?P<ref>\w+))?`),
				kind: expense,
			},
			// Your account 013*****890 has been credited with ETB 5,000.00.
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[\d*]+)\s+has been credited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:[.\s]+Balance:?\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?(?:[.\s]+Ref:?\s*(?P<ref>\w+))?`),
				kind: income,
			},
		},
	}
}
