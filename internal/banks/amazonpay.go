package banks

import "regexp"

// Amazon Pay wallet and UPI.
func newAmazonPay() Parser {
	return &rules{
		name:     "amazonpay",
		currency: "INR",
		codes:    []string{"AMZPAY", "AMAZON"},
		names:    []string{"AmazonPay"},
		accept:   []string{"paid", "sent", "received", "refund"},
		reject:   []string{"order has been", "delivery"},
		patterns: []pattern{
			// You paid Rs.349.00 to BookMyShow using Amazon Pay UPI. Ref: 528812345678.
			{
				re: regexp.MustCompile(`(?i)paid\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>.+?)\s+using Amazon Pay(?:\s+UPI)?(?:[.\s]+Ref:?\s*(?P<ref>\d+))?`),
				kind: expense,
			},
			// Refund of Rs.349.00 received from BookMyShow in your Amazon Pay balance.
			{
				re: regexp.MustCompile(`(?i)Refund of\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+received from\s+(?P<merchant>[^.\n]+)`),
				kind: income,
			},
		},
	}
}
