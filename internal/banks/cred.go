package banks

import "regexp"

// CRED. Payments through CRED are credit-card bill payments, i.e.
// transfers between the user's own instruments.
func newCred() Parser {
	return &rules{
		name:     "cred",
		currency: "INR",
		codes:    []string{"CREDCL", "CREDPAY"},
		names:    []string{"CRED"},
		accept:   []string{"payment of", "paid towards"},
		reject:   []string{"coins", "jackpot"},
		patterns: []pattern{
			// Payment of Rs.12,430.00 towards your HDFC Bank Credit Card XX7003 is successful. Ref CRD2510051234.
			{
				re: regexp.MustCompile(`(?i)Payment of\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+towards your\s+(?P<merchant>.+?Card)\s+(?P<account>[Xx*\d]+)\s+is successful(?:[.\s]+Ref\.?\s*(?P<ref>\w+))?`),
				kind: transfer,
			},
		},
	}
}
