package banks

import "regexp"

// Bank of Baroda. Transfer debits use the "transferred from A/c ... to:"
// shape with a trailing running balance; credits mirror it.
func newBOB() Parser {
	return &rules{
		name:     "bob",
		currency: "INR",
		codes:    []string{"BOBTXN", "BOBSMS", "BOBACC"},
		names:    []string{"BOB"},
		accept:   []string{"transferred", "credited", "debited", "withdrawn"},
		patterns: []pattern{
			// Rs.29 transferred from A/c ...5494 to:Loan Recovery Fo. Total Bal:Rs.24898.57CR.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+transferred from A/c\s*(?P<account>[Xx*.\d]+)\s+to:\s*(?P<merchant>[^.]+)(?:\.\s*Total Bal:\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// Rs.5000 credited to A/c ...5494 through NEFT with UTR CMS123456789 by RAVI KUMAR. Total Bal:Rs.29898.57CR.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s*(?P<account>[Xx*.\d]+)\s+through\s+\w+\s+with UTR\s+(?P<ref>\w+)\s+by\s+(?P<merchant>[^.]+)(?:\.\s*Total Bal:\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
			// Rs.2000 withdrawn from A/c ...5494 at BOB ATM on 05-10-25. Total Bal:Rs.22898.57CR.
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+withdrawn from A/c\s*(?P<account>[Xx*.\d]+)(?:.*?Total Bal:\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
			},
		},
	}
}
