package banks

import "regexp"

// Bank of Abyssinia (Ethiopia).
func newAbyssinia() Parser {
	return &rules{
		name:     "abyssinia",
		currency: "ETB",
		codes:    []string{"BOA", "ABYSSINIA"},
		names:    []string{"BankofAbyssinia"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Your account 98*****012 has been debited by ETB 1,100.00. Available balance ETB 9,870.00.
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[\d*]+)\s+has been debited by\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:[.\s]+Available balance\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Your account 98*****012 has been credited by ETB 6,500.00.
			{
				re: regexp.MustCompile(`(?i)account\s+(?P<account>[\d*]+)\s+has been credited by\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:[.\s]+Available balance\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
		},
	}
}
