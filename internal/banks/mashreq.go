package banks

import "regexp"

// Mashreq Bank.
func newMashreq() Parser {
	return &rules{
		name:     "mashreq",
		currency: "AED",
		codes:    []string{"MASHREQ"},
		accept:   []string{"purchase", "credited", "debited"},
		patterns: []pattern{
			// Purchase Alert: AED 129.99 spent on Mashreq Credit Card ending 6640 at AMAZON.AE.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on Mashreq\s+(?P<cardkind>Debit|Credit)\s+Card ending\s+(?P<account>\d+)\s+at\s+(?P<merchant>[^.\n]+)`),
				kind: expense, card: true, post: creditWhenGroup("cardkind"),
			},
			// AED 6,800.00 has been credited to your account ending 0042.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+has been credited to your account ending\s+(?P<account>\d+)`),
				kind: income,
			},
			// AED 950.00 has been debited from your account ending 0042 towards ETISALAT.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+has been debited from your account ending\s+(?P<account>\d+)(?:\s+towards\s+(?P<merchant>[^.\n]+))?`),
				kind: expense,
			},
		},
	}
}
