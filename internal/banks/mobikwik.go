package banks

import "regexp"

// MobiKwik wallet.
func newMobiKwik() Parser {
	return &rules{
		name:     "mobikwik",
		currency: "INR",
		codes:    []string{"MBKWIK", "MOBKWK"},
		names:    []string{"MobiKwik"},
		accept:   []string{"paid", "added", "sent"},
		reject:   []string{"supercash"},
		patterns: []pattern{
			// Rs.150 paid to Metro Card Recharge via MobiKwik wallet. Txn ID MBK2510051122. Balance: Rs.850.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+paid to\s+(?P<merchant>.+?)\s+via MobiKwik(?:\s+wallet)?(?:[.\s]+Txn ID\.?\s*(?P<ref>\w+))?(?:.*?Balance:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Rs.1,000 added to your MobiKwik wallet from HDFC Bank card XX4411.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+added to your MobiKwik wallet(?:\s+from\s+(?P<merchant>[^.\n]+))?`),
				kind: transfer,
			},
		},
	}
}
