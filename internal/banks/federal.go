package banks

import "regexp"

// Federal Bank.
func newFederal() Parser {
	return &rules{
		name:     "federal",
		currency: "INR",
		codes:    []string{"FEDBNK", "FEDERAL"},
		accept:   []string{"debited", "credited"},
		patterns: []pattern{
			// Rs 430.00 debited from your A/c XX1191 via UPI on 05-10-2025 to VPA zomato@paytm. Ref No 528812345678
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from your A/c\s+(?P<account>[Xx*\d]+)\s+via UPI\s+on\s+\S+\s+to VPA\s+(?P<merchant>\S+?)(?:[.\s]+Ref No\.?\s*(?P<ref>\d+))?$`),
				kind: expense,
			},
			// Rs 5,600.00 credited to your A/c XX1191 on 05-10-2025 by VPA anand@federal. Ref No 528898765432
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to your A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+by VPA\s+(?P<merchant>\S+?)(?:[.\s]+Ref No\.?\s*(?P<ref>\d+))?$`),
				kind: income,
			},
		},
	}
}
