package banks

import "regexp"

// Riyad Bank.
func newRiyadBank() Parser {
	return &rules{
		name:     "riyadbank",
		currency: "SAR",
		codes:    []string{"RIYADB", "RIYAD"},
		accept:   []string{"شراء", "حوالة", "purchase", "transfer"},
		reject:   []string{"رمز التحقق"},
		patterns: []pattern{
			// Purchase of SAR 230.00 with card *7719 at EXTRA STORES. Balance SAR 5,120.00
			{
				re: regexp.MustCompile(`(?i)Purchase of\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+with card\s+(?P<account>[*Xx\d]+)\s+at\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Balance\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense, card: true,
			},
			// حوالة صادرة بمبلغ SAR 900.00 من حساب *3307 إلى FAHAD M
			{
				re: regexp.MustCompile(`(?s)حوالة صادرة.*?بمبلغ\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?).*?حساب\s*(?P<account>[*\d]+).*?إلى\s*(?P<merchant>[^\n]+)`),
				kind: expense,
			},
		},
	}
}
