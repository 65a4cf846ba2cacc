package banks

import "regexp"

// RBL Bank.
func newRBL() Parser {
	return &rules{
		name:     "rbl",
		currency: "INR",
		codes:    []string{"RBLBNK", "RBLCRD"},
		accept:   []string{"spent", "debited", "credited"},
		patterns: []pattern{
			// Rs.1,100.00 spent on RBL Bank Credit Card XX0944 at DECATHLON on 05-10-25. Avl Limit Rs.48,900.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on RBL Bank (?P<cardkind>Credit )?Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Avl Limit\s*(?:Rs\.?|INR|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// Rs.780.00 debited from A/c XX6105 on 05-10-25 for UPI txn to instamart@axl. Ref 528812345678. Bal Rs.3,440.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+\s+for UPI txn to\s+(?P<merchant>\S+?)(?:[.\s]+Ref\.?\s*(?P<ref>\d+))?(?:[.\s]+Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
		},
	}
}
