package banks

import "regexp"

// Al Rajhi Bank (Saudi Arabia). Messages are Arabic, label:value lines;
// amounts and card masks stay in Latin digits.
func newAlRajhi() Parser {
	return &rules{
		name:     "alrajhi",
		currency: "SAR",
		codes:    []string{"ALRAJHI", "RAJHI"},
		names:    []string{"AlRajhiBank"},
		accept:   []string{"شراء", "سحب", "حوالة", "إيداع", "مدى"},
		reject:   []string{"رمز التحقق", "الرمز السري"},
		patterns: []pattern{
			// شراء إنترنت
			// بطاقة:مدى;*1234
			// حساب:*9876
			// مبلغ:SAR 150.00
			// لدى:AMAZON
			{
				re: regexp.MustCompile(`(?s)شراء.*?بطاقة:[^\n]*?(?P<account>[*\d]+)\s*\n.*?مبلغ:\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s*\nلدى:\s*(?P<merchant>[^\n]+)`),
				kind: expense, card: true,
			},
			// حوالة صادرة  مبلغ:SAR 1,000.00  من حساب:*9876  إلى:AHMED ALI
			{
				re: regexp.MustCompile(`(?s)حوالة صادرة.*?مبلغ:\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?).*?حساب:\s*(?P<account>[*\d]+).*?إلى:\s*(?P<merchant>[^\n]+)`),
				kind: expense,
			},
			// حوالة واردة  مبلغ:SAR 2,500.00  حساب:*9876  من:SALARY
			{
				re: regexp.MustCompile(`(?s)(?:حوالة واردة|إيداع).*?مبلغ:\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?).*?حساب:\s*(?P<account>[*\d]+)(?:.*?من:\s*(?P<merchant>[^\n]+))?`),
				kind: income,
			},
			// سحب نقدي  بطاقة:*1234  مبلغ:SAR 500.00
			{
				re: regexp.MustCompile(`(?s)سحب.*?بطاقة:[^\n]*?(?P<account>[*\d]+).*?مبلغ:\s*(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)`),
				kind: expense, card: true,
			},
		},
	}
}
