package banks

import "regexp"

// Paytm Payments Bank and the Paytm wallet.
func newPaytm() Parser {
	return &rules{
		name:     "paytm",
		currency: "INR",
		codes:    []string{"PYTMBK", "IPYTMB", "PAYTMB"},
		names:    []string{"Paytm"},
		accept:   []string{"paid", "sent", "received", "debited", "credited", "added"},
		reject:   []string{"recharge now", "cashback points"},
		patterns: []pattern{
			// Paid Rs.240 to Dominos Pizza from Paytm Wallet. Updated balance: Rs.1,260. Order ID: 2025100512345.
			{
				re: regexp.MustCompile(`(?i)Paid\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>.+?)\s+from Paytm Wallet(?:.*?balance:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?(?:.*?Order ID:?\s*(?P<ref>\w+))?`),
				kind: expense,
			},
			// Rs.500 sent to ramesh@paytm from Paytm Bank A/c 91XX4321. UPI Ref: 528812345678.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+sent to\s+(?P<merchant>\S+?)\s+from Paytm Bank A/c\s+(?P<account>[\dXx*]+)(?:.*?UPI Ref:?\s*(?P<ref>\d+))?`),
				kind: expense,
			},
			// Rs.1,200 received from anita@okhdfcbank in your Paytm Bank A/c 91XX4321. UPI Ref: 528898765432.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+received from\s+(?P<merchant>\S+?)\s+in your Paytm Bank A/c\s+(?P<account>[\dXx*]+)(?:.*?UPI Ref:?\s*(?P<ref>\d+))?`),
				kind: income,
			},
		},
	}
}
