package banks

import "regexp"

// Alinma Bank.
func newAlinma() Parser {
	return &rules{
		name:     "alinma",
		currency: "SAR",
		codes:    []string{"ALINMA"},
		accept:   []string{"شراء", "حوالة", "إيداع", "سحب"},
		reject:   []string{"رمز التحقق"},
		patterns: []pattern{
			// عملية شراء  البطاقة:*5523  المبلغ:SAR 64.00  لدى:STC PAY TOPUP
			{
				re: regexp.MustCompile(`(?s)شراء.*?البطاقة:\s*(?P<account>[*\d]+).*?المبلغ:\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?).*?لدى:\s*(?P<merchant>[^\n]+)`),
				kind: expense, card: true,
			},
			// إيداع  الحساب:*1190  المبلغ:SAR 7,400.00
			{
				re: regexp.MustCompile(`(?s)إيداع.*?الحساب:\s*(?P<account>[*\d]+).*?المبلغ:\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)`),
				kind: income,
			},
		},
	}
}
