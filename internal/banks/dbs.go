package banks

import "regexp"

// DBS Bank India (digibank).
func newDBS() Parser {
	return &rules{
		name:     "dbs",
		currency: "INR",
		codes:    []string{"DBSBNK", "DBSBANK"},
		accept:   []string{"debited", "credited", "spent"},
		patterns: []pattern{
			// INR 310.00 spent on your DBS Bank Debit Card XX9340 at CHAI POINT on 05-10-25.
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on your DBS Bank (?P<cardkind>Credit )?(?:Debit )?Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// INR 1,900.00 debited from A/c XX4490 on 05-10-25 for UPI to urbanclap@axisb (Ref 528812345678)
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+for UPI to\s+(?P<merchant>\S+?)(?:\s*\(Ref\.?\s*(?P<ref>\d+)\))?$`),
				kind: expense,
			},
			// INR 30,000.00 credited to A/c XX4490 on 05-10-25 by FT from NEHA G. Avl Bal INR 42,300.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
