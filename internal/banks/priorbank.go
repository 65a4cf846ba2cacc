package banks

import "regexp"

// Priorbank (Belarus).
func newPriorbank() Parser {
	return &rules{
		name:     "priorbank",
		currency: "BYN",
		codes:    []string{"PRIOR"},
		names:    []string{"Priorbank"},
		accept:   []string{"oplata", "zachislenie", "spisanie"},
		reject:   []string{"otkazano"},
		patterns: []pattern{
			// Karta 5***7890. Oplata 48,90 BYN. GIPPO GRODNO. Ostatok 512,44 BYN.
			{
				re: regexp.MustCompile(`(?i)Karta\s+(?P<account>[\d*]+)\.\s*Oplata\s+(?P<amount>[\d\s]+(?:[.,]\d+)?)\s*(?P<currency>[A-Z]{3})\.\s*(?P<merchant>[^.\n]+)\.(?:\s*Ostatok\s+(?P<balance>[\d\s]+(?:[.,]\d+)?)\s*[A-Z]{3})?`),
				kind: expense, card: true,
			},
			// Karta 5***7890. Zachislenie 2 100,00 BYN. Ostatok 2 612,44 BYN.
			{
				re: regexp.MustCompile(`(?i)Karta\s+(?P<account>[\d*]+)\.\s*Zachislenie\s+(?P<amount>[\d\s]+(?:[.,]\d+)?)\s*(?P<currency>[A-Z]{3})(?:.*?Ostatok\s+(?P<balance>[\d\s]+(?:[.,]\d+)?)\s*[A-Z]{3})?`),
				kind: income,
			},
		},
	}
}
