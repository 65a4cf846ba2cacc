package banks

import "regexp"

// Axis Bank. Card spend alerts arrive in a multi-line format (sometimes
// with stylized Unicode glyphs), UPI and account debits in single-line
// formats. Sender headers like AX-AXISBK-S / AD-AXISBK.
func newAxis() Parser {
	return &rules{
		name:     "axis",
		currency: "INR",
		codes:    []string{"AXISBK", "AXISB"},
		names:    []string{"AxisBk"},
		accept:   []string{"spent", "debited", "credited", "withdrawn", "sent"},
		reject:   []string{"balance in a/c", "min bal"},
		patterns: []pattern{
			// Spent INR 131
			// Bank Card no. XX0818
			// 05-10-25 09:43:27 IST
			// Swiggy Limi
			// Avl Limit: INR 217162.72
			{
				re: regexp.MustCompile(`(?i)^Spent\s+(?P<currency>[A-Z]{3}|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s*\nBank Card no\.\s*(?P<account>[Xx*\d]+)\s*\n[^\n]+\n(?P<merchant>[^\n]+)\nAvl Limit:\s*(?:[A-Z]{3}|Rs\.?|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?)`),
				kind: expense, card: true,
			},
			// INR 450.00 spent on Axis Bank Credit Card XX7003 at AMAZON on 05-10-25. Avl Limit: INR 21000.50
			{
				re: regexp.MustCompile(`(?i)(?P<currency>[A-Z]{3}|Rs\.?|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+spent on Axis Bank Credit Card\s+(?P<account>[Xx*\d]+)\s+at\s+(?P<merchant>.+?)\s+on\s+[\d-]+(?:.*?Avl Limit:\s*(?:[A-Z]{3}|Rs\.?|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true, credit: true,
			},
			// Rs 250.00 debited from A/c no. XX4523 on 05-10-25 UPI/P2M/528812345678/Blinkit. Avl Bal Rs 10500.25
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from A/c(?: no\.)?\s*(?P<account>[Xx*\d]+)\s+on\s+\S+\s+UPI/\w+/(?P<ref>\d+)/(?P<merchant>[^.]+)(?:\.\s*Avl Bal\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense,
			},
			// INR 25000.00 credited to A/c no. XX4523 on 05-10-25. Info: NEFT/SALARY. Avl Bal: INR 125430.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to A/c(?: no\.)?\s*(?P<account>[Xx*\d]+)(?:.*?Info:\s*[A-Z]+/(?P<merchant>[^.\n]+))?(?:.*?Avl Bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
		},
	}
}
