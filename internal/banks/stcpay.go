package banks

import "regexp"

// stc pay wallet (Saudi Arabia).
func newSTCPay() Parser {
	return &rules{
		name:     "stcpay",
		currency: "SAR",
		codes:    []string{"STCPAY"},
		names:    []string{"stcpay"},
		accept:   []string{"شراء", "حوالة", "paid", "received"},
		reject:   []string{"رمز التحقق"},
		patterns: []pattern{
			// You paid SAR 45.00 to HUNGERSTATION from your stc pay wallet. Ref 88231045.
			{
				re: regexp.MustCompile(`(?i)paid\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>.+?)\s+from your stc pay wallet(?:[.\s]+Ref\.?\s*(?P<ref>\w+))?`),
				kind: expense,
			},
			// You received SAR 200.00 from KHALID A in your stc pay wallet.
			{
				re: regexp.MustCompile(`(?i)received\s+(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<merchant>.+?)\s+in your stc pay wallet`),
				kind: income,
			},
		},
	}
}
