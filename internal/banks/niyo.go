package banks

import "regexp"

// Niyo Global card. Multi-currency travel card on SBM rails.
func newNiyo() Parser {
	return &rules{
		name:     "niyo",
		currency: "INR",
		codes:    []string{"NIYOGL", "NIYOSB"},
		names:    []string{"NiyoGlobal"},
		accept:   []string{"spent", "loaded"},
		patterns: []pattern{
			// EUR 23.40 spent on Niyo Global Card XX6650 at CARREFOUR PARIS on 05-10-25. Avl Bal EUR 410.20
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on Niyo Global Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+(?:.*?Avl Bal\s*[A-Z]{3}\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
			},
			// INR 50,000.00 loaded to your Niyo Global Card XX6650 from HDFC Bank A/c.
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3})\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+loaded to your Niyo Global Card\s+(?P<account>[Xx*\d]+)`),
				kind: transfer,
			},
		},
	}
}
