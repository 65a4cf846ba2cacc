package banks

import "regexp"

// Saudi Awwal Bank.
func newSAB() Parser {
	return &rules{
		name:     "sab",
		currency: "SAR",
		codes:    []string{"SABB", "SAB"},
		accept:   []string{"شراء", "حوالة", "purchase", "transfer"},
		reject:   []string{"رمز التحقق"},
		patterns: []pattern{
			// Purchase SAR 178.00 card *9034 at JARIR BOOKSTORE. Avl bal SAR 6,040.00.
			{
				re: regexp.MustCompile(`(?i)Purchase\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+card\s+(?P<account>[*Xx\d]+)\s+at\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Avl bal\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?\.?$`),
				kind: expense, card: true,
			},
			// حوالة واردة بمبلغ SAR 3,000.00 إلى حساب *6612
			{
				re: regexp.MustCompile(`(?s)حوالة واردة.*?بمبلغ\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?).*?حساب\s*(?P<account>[*\d]+)`),
				kind: income,
			},
		},
	}
}
