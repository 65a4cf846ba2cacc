package banks

import "regexp"

// Commercial Bank of Ethiopia. Alerts carry a receipt URL whose trailing
// path segment doubles as the transaction reference.
func newCBE() Parser {
	return &rules{
		name:     "cbe",
		currency: "ETB",
		codes:    []string{"CBE"},
		names:    []string{"CBE"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Dear ABEBE your Account 1*****2345 has been debited with ETB 1,500.00.
			// Your Current Balance is ETB 12,430.55. Thank you for Banking with CBE!
			// https://apps.cbe.com.et:100/?id=FT25278ABC123
			{
				re: regexp.MustCompile(`(?is)Account\s+(?P<account>[\d*]+)\s+has been debited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:.*?Current Balance is\s+[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?(?:.*?\?id=(?P<ref>\w+))?`),
				kind: expense,
			},
			// Dear ABEBE your Account 1*****2345 has been credited with ETB 8,000.00.
			{
				re: regexp.MustCompile(`(?is)Account\s+(?P<account>[\d*]+)\s+has been credited with\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:.*?Current Balance is\s+[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?(?:.*?\?id=(?P<ref>\w+))?`),
				kind: income,
			},
		},
	}
}
