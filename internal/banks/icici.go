package banks

import "regexp"

// ICICI Bank. Account messages use the "Acct XXnnn debited for" family;
// card spends name the card class, which decides EXPENSE vs CREDIT.
func newICICI() Parser {
	return &rules{
		name:     "icici",
		currency: "INR",
		codes:    []string{"ICICIB", "ICICIT"},
		names:    []string{"ICICIBank"},
		accept:   []string{"debited", "credited", "spent", "linked to"},
		reject:   []string{"reward points"},
		patterns: []pattern{
			// INR 450.00 spent using ICICI Bank Credit Card XX7003 on 05-Oct-25 on AMAZON PAY. Avl Limit: INR 1,49,550.00
			{
				re: regexp.MustCompile(`(?i)(?P<currency>INR|Rs\.?|₹|[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent using ICICI Bank (?P<cardkind>Credit )?Card\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+on\s+(?P<merchant>[^.\n]+)(?:.*?Avl Limit:?\s*(?:INR|Rs\.?|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// ICICI Bank Acct XX818 debited for Rs 131.00 on 05-Oct-25; SWIGGY LIMITED credited. UPI: 528812345678. Avl Bal Rs 10,500.25
			{
				re: regexp.MustCompile(`(?i)Acct\s+(?P<account>[Xx*\d]+)\s+debited for\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+;\s*(?P<merchant>.+?)\s+credited(?:.*?UPI:?\s*(?P<ref>\d+))?(?:.*?Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// ICICI Bank Acct XX818 credited with Rs 25,000.00 on 05-Oct-25 by Acct linked to mobile. IMPS Ref 528898765432. Avl Bal Rs 1,25,430.50
			{
				re: regexp.MustCompile(`(?i)Acct\s+(?P<account>[Xx*\d]+)\s+credited with\s+(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+(?:\s+by\s+(?P<merchant>[^.;\n]+))?(?:.*?(?:IMPS|NEFT|UPI) Ref\.?\s*(?P<ref>\d+))?(?:.*?Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
		},
	}
}
