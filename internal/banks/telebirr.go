package banks

import "regexp"

// telebirr mobile money (Ethio Telecom).
func newTelebirr() Parser {
	return &rules{
		name:     "telebirr",
		currency: "ETB",
		codes:    []string{"127"},
		names:    []string{"telebirr"},
		accept:   []string{"paid", "received", "transferred"},
		patterns: []pattern{
			// You have paid ETB 250.00 to ETHIO GAS STATION. Your telebirr balance is ETB 1,830.00. Transaction number CE25278XYZ.
			{
				re: regexp.MustCompile(`(?i)You have paid\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Your telebirr balance is\s+[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?(?:[.\s]+Transaction number\s+(?P<ref>\w+))?\.?$`),
				kind: expense,
			},
			// You have received ETB 500.00 from ALMAZ T. Transaction number CE25278ABC.
			{
				re: regexp.MustCompile(`(?i)You have received\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Transaction number\s+(?P<ref>\w+))?\.?$`),
				kind: income,
			},
			// You have transferred ETB 1,000.00 to 2519****1234.
			{
				re: regexp.MustCompile(`(?i)You have transferred\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Transaction number\s+(?P<ref>\w+))?\.?$`),
				kind: expense,
			},
		},
	}
}
