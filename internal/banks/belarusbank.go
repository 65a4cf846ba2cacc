package banks

import "regexp"

// Belarusbank. Alerts are transliterated Russian with decimal-comma
// amounts and currency after the number.
func newBelarusbank() Parser {
	return &rules{
		name:     "belarusbank",
		currency: "BYN",
		codes:    []string{"ASB"},
		names:    []string{"Belarusbank", "ASB.BY"},
		accept:   []string{"oplata", "popolnenie", "vydacha", "perevod"},
		reject:   []string{"otkazano"},
		patterns: []pattern{
			// Oplata 25,50 BYN. Karta 4***1234. EVROOPT MINSK. Dostupno 310,20 BYN.
			{
				re: regexp.MustCompile(`(?i)Oplata\s+(?P<amount>[\d\s]+(?:[.,]\d+)?)\s*(?P<currency>[A-Z]{3})\.\s*Karta\s+(?P<account>[\d*]+)\.\s*(?P<merchant>[^.\n]+)\.(?:\s*Dostupno\s+(?P<balance>[\d\s]+(?:[.,]\d+)?)\s*[A-Z]{3})?`),
				kind: expense, card: true,
			},
			// Popolnenie 1 500,00 BYN. Karta 4***1234. Dostupno 1 810,20 BYN.
			{
				re: regexp.MustCompile(`(?i)Popolnenie\s+(?P<amount>[\d\s]+(?:[.,]\d+)?)\s*(?P<currency>[A-Z]{3})\.\s*Karta\s+(?P<account>[\d*]+)(?:.*?Dostupno\s+(?P<balance>[\d\s]+(?:[.,]\d+)?)\s*[A-Z]{3})?`),
				kind: income,
			},
			// Vydacha nalichnykh 200,00 BYN. Karta 4***1234. BANKOMAT 102.
			{
				re: regexp.MustCompile(`(?i)Vydacha(?:\s+nalichnykh)?\s+(?P<amount>[\d\s]+(?:[.,]\d+)?)\s*(?P<currency>[A-Z]{3})\.\s*Karta\s+(?P<account>[\d*]+)(?:\.\s*(?P<merchant>[^.\n]+))?`),
				kind: expense, card: true,
			},
		},
	}
}
