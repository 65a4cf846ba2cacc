package banks

import "regexp"

// State Bank of India. UPI messages use the terse "debited by ... trf to"
// shape, core-banking deposits the "Credited INR" shape. Several sender
// families are in use (SBIUPI, SBIINB, SBIPSG, CBSSBI).
func newSBI() Parser {
	return &rules{
		name:     "sbi",
		currency: "INR",
		codes:    []string{"SBIUPI", "SBIINB", "SBIPSG", "CBSSBI", "SBIDGT", "ATMSBI"},
		names:    []string{"SBI"},
		accept:   []string{"debited", "credited", "withdrawn", "transfer from", "trf to"},
		reject:   []string{"avl bal in a/c", "yono"},
		patterns: []pattern{
			// Dear UPI user A/C X3456 debited by 150.0 on date 05Oct25 trf to SWIGGY LIMITED Refno 528812345678. -SBI
			{
				re: regexp.MustCompile(`(?i)A/C\s+(?P<account>[Xx*\d]+)\s+debited by\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+on date\s+\S+\s+trf to\s+(?P<merchant>.+?)\s+Refno\s+(?P<ref>\d+)`),
				kind: expense,
			},
			// Dear SBI User, your A/c X3456-credited by Rs.5000 on 05Oct25 transfer from RAVI KUMAR Ref No 528898765432
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)[-\s]credited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+transfer from\s+(?P<merchant>.+?)\s+Ref No\.?\s*(?P<ref>\d+)`),
				kind: income,
			},
			// Your A/C XXXXX903456 Credited INR 25,000.00 on 05/10/25 -Deposit by transfer from A/c XXXXXX7890. Avl Bal INR 1,25,430.50
			{
				re: regexp.MustCompile(`(?i)A/C\s+(?P<account>[Xx*\d]+)\s+Credited\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s*-(?P<merchant>[^.\n]+)(?:.*?Avl Bal\s+(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
			// Your A/C XXXXX903456 Debited INR 1,500.00 on 05/10/25 -ATM Cash Withdrawal. Avl Bal INR 1,02,430.50
			{
				re: regexp.MustCompile(`(?i)A/C\s+(?P<account>[Xx*\d]+)\s+Debited\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s*-(?P<merchant>[^.\n]+)(?:.*?Avl Bal\s+(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Rs.2000 withdrawn at SBI ATM S1AB000123001 from A/c X3456 on 05Oct25. Avl Bal Rs.98430.50
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+withdrawn at\s+.+?ATM\s+\S+\s+from A/c\s+(?P<account>[Xx*\d]+)(?:.*?Avl Bal\s+(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
			},
		},
	}
}

// SBI Card, the standalone credit-card issuer.
func newSBICard() Parser {
	return &rules{
		name:     "sbicard",
		currency: "INR",
		codes:    []string{"SBICRD", "SBICARD"},
		names:    []string{"SBICard"},
		accept:   []string{"spent", "txn of"},
		reject:   []string{"statement", "total amt due", "min amt due"},
		patterns: []pattern{
			// Rs.1,249.00 spent on your SBI Credit Card ending 7003 at MYNTRA on 05-10-25. Avl Limit Rs.1,48,751.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on your SBI Credit Card ending\s+(?P<account>\d+)\s+at\s+(?P<merchant>.+?)\s+on\s+[\d-]+(?:.*?Avl Limit\s*(?:Rs\.?|INR|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true, credit: true,
			},
			// Txn of Rs.349.00 done on SBI Card XX7003 at NETFLIX on 05-10-25
			{
				re: regexp.MustCompile(`(?i)Txn of\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+done on SBI Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+[\d-]+`),
				kind: expense, card: true, credit: true,
			},
		},
	}
}
