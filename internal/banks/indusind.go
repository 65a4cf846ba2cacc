package banks

import "regexp"

// IndusInd Bank.
func newIndusInd() Parser {
	return &rules{
		name:     "indusind",
		currency: "INR",
		codes:    []string{"INDUSB", "INDUSIND"},
		accept:   []string{"debited", "credited", "spent"},
		patterns: []pattern{
			// Rs.540.00 debited from A/c no. XX7788 on 05-10-25 for UPI/528812345678/Cafe Coffee Day. Avl Bal: Rs.7,860.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c(?: no\.)?\s*(?P<account>[Xx*\d]+)\s+on\s+\S+\s+for UPI/(?P<ref>\d+)/(?P<merchant>[^.\n]+?)(?:[.\s]+Avl Bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// Rs.18,000.00 credited to A/c no. XX7788 on 05-10-25 by RTGS from NAVEEN AND CO. Avl Bal: Rs.25,860.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c(?: no\.)?\s*(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by\s+\w+\s+from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
