package banks

import "regexp"

// Saudi National Bank (AlAhli).
func newSNB() Parser {
	return &rules{
		name:     "snb",
		currency: "SAR",
		codes:    []string{"SNBAHLI", "ALAHLI", "SNB"},
		accept:   []string{"شراء", "سحب", "حوالة", "إيداع", "pos purchase", "transfer"},
		reject:   []string{"رمز التحقق"},
		patterns: []pattern{
			// POS Purchase: SAR 89.50 from card *4421 at PANDA RIYADH. Avl Bal SAR 3,410.00
			{
				re: regexp.MustCompile(`(?i)POS Purchase:?\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from card\s+(?P<account>[*Xx\d]+)\s+at\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Avl Bal\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense, card: true,
			},
			// شراء بمبلغ SAR 89.50 بطاقة *4421 لدى PANDA RIYADH
			{
				re: regexp.MustCompile(`(?s)شراء.*?بمبلغ\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?).*?بطاقة\s*(?P<account>[*\d]+).*?لدى\s*(?P<merchant>[^\n]+)`),
				kind: expense, card: true,
			},
			// إيداع راتب بمبلغ SAR 12,000.00 في حساب *8800
			{
				re: regexp.MustCompile(`(?s)إيداع.*?بمبلغ\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?).*?حساب\s*(?P<account>[*\d]+)`),
				kind: income,
			},
		},
	}
}
