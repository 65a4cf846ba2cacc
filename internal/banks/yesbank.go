package banks

import "regexp"

// YES Bank.
func newYesBank() Parser {
	return &rules{
		name:     "yesbank",
		currency: "INR",
		codes:    []string{"YESBNK", "YESBK"},
		accept:   []string{"debited", "credited", "spent"},
		patterns: []pattern{
			// INR 320.00 spent on YES BANK Credit Card ending 4410 at BOOKMYSHOW on 05-Oct-25. Avl Lmt INR 89,680.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on YES BANK (?P<cardkind>Credit )?Card ending\s+(?P<account>\d+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Avl Lmt\s*(?:INR|Rs\.?|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// INR 2,100.00 debited from A/c XX3344 on 05-Oct-25 (UPI Ref No. 528812345678); ZEPTO. Avl Bal INR 5,440.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s*\(UPI Ref No\.?\s*(?P<ref>\d+)\))?;\s*(?P<merchant>[^.\n]+?)(?:[.\s]+Avl Bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: expense,
			},
			// INR 7,500.00 credited to A/c XX3344 on 05-Oct-25 by transfer from PRIYA M. Avl Bal INR 12,940.00
			{
				re: regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c\s+(?P<account>[Xx*\d]+)\s+on\s+\S+(?:\s+by transfer from\s+(?P<merchant>[^.\n]+?))?(?:[.\s]+Avl Bal\s*(?:INR|Rs\.?|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?$`),
				kind: income,
			},
		},
	}
}
