package banks

import "regexp"

// IDFC FIRST Bank.
func newIDFCFirst() Parser {
	return &rules{
		name:     "idfcfirst",
		currency: "INR",
		codes:    []string{"IDFCFB", "IDFCBK"},
		accept:   []string{"debited", "credited", "spent"},
		patterns: []pattern{
			// Rs 899.00 spent on IDFC FIRST Bank Credit Card XX5521 at SPOTIFY on 05-Oct-2025. Avl Limit: Rs 74,101.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on IDFC FIRST Bank (?P<cardkind>Credit )?Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Avl Limit:?\s*(?:Rs\.?|INR|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// Your A/c XX9921 is debited by Rs 1,200.00 on 05-Oct-2025 for UPI to merchant DMart. New Bal: Rs 11,040.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+is debited by\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+\s+for UPI to(?: merchant)?\s+(?P<merchant>[^.\n]+?)(?:[.\s]+New Bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// Your A/c XX9921 is credited with Rs 40,000.00 on 05-Oct-2025 (IMPS Ref 528898765432). New Bal: Rs 51,040.00
			{
				re: regexp.MustCompile(`(?i)A/c\s+(?P<account>[Xx*\d]+)\s+is credited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s*\(\w+ Ref\.?\s*(?P<ref>\d+)\))?(?:.*?New Bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
		},
	}
}
