package banks

import "regexp"

// slice card.
func newSlice() Parser {
	return &rules{
		name:     "slice",
		currency: "INR",
		codes:    []string{"SLICEC", "SLICEIT"},
		names:    []string{"slice"},
		accept:   []string{"spent", "paid"},
		reject:   []string{"slice in 3"},
		patterns: []pattern{
			// You spent ₹650 on your slice card XX3327 at SWIGGY INSTAMART on 05-10-25.
			{
				re: regexp.MustCompile(`(?i)spent\s+(?:₹|Rs\.?|INR)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on your slice card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+\S+`),
				kind: expense, card: true, credit: true,
			},
		},
	}
}
