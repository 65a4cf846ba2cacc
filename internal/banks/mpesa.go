package banks

import "regexp"

// Safaricom M-PESA. Every alert opens with the confirmation code, which
// serves as the transaction reference.
func newMPesa() Parser {
	return &rules{
		name:     "mpesa",
		currency: "KES",
		codes:    []string{"MPESA"},
		names:    []string{"MPESA", "M-PESA"},
		accept:   []string{"confirmed"},
		reject:   []string{"failed", "reversed"},
		patterns: []pattern{
			// TJ72K81MNO Confirmed. Ksh1,200.00 paid to NAIVAS SUPERMARKET. on 5/10/25 at 2:14 PM. New M-PESA balance is Ksh8,340.00.
			{
				re: regexp.MustCompile(`(?i)^(?P<ref>[A-Z0-9]{10})\s+Confirmed\.\s+(?P<currency>Ksh|KES)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+paid to\s+(?P<merchant>[^.\n]+?)\.(?:.*?New M-PESA balance is\s+(?:Ksh|KES)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// TJ72K91PQR Confirmed. Ksh500.00 sent to JANE WANJIKU 0722xxxxxx on 5/10/25 at 3:02 PM. New M-PESA balance is Ksh7,840.00.
			{
				re: regexp.MustCompile(`(?i)^(?P<ref>[A-Z0-9]{10})\s+Confirmed\.\s+(?P<currency>Ksh|KES)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+sent to\s+(?P<merchant>.+?)\s+on\s(?:.*?New M-PESA balance is\s+(?:Ksh|KES)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// TJ72KA1STU Confirmed. You have received Ksh2,000.00 from JOHN KAMAU 0711xxxxxx on 5/10/25. New M-PESA balance is Ksh9,840.00.
			{
				re: regexp.MustCompile(`(?i)^(?P<ref>[A-Z0-9]{10})\s+Confirmed\.\s*You have received\s+(?P<currency>Ksh|KES)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<merchant>.+?)\s+on\s(?:.*?New M-PESA balance is\s+(?:Ksh|KES)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
			// TJ72KB2VWX Confirmed. Ksh1,000.00 withdrawn from AGENT 123456 - KIOSK.
			{
				re: regexp.MustCompile(`(?i)^(?P<ref>[A-Z0-9]{10})\s+Confirmed\.\s+(?P<currency>Ksh|KES)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+withdrawn from\s+(?P<merchant>[^.\n]+)`),
				kind: expense,
			},
		},
	}
}
