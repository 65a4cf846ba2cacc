package banks

import "regexp"

// HDFC Bank. UPI debits carry a VPA counterparty, card spends come from
// the "Thanks for using" family, and deposits from the "credited to a/c"
// family. Sender headers like AD-HDFCBK-S / VM-HDFCBK.
func newHDFC() Parser {
	return &rules{
		name:     "hdfc",
		currency: "INR",
		codes:    []string{"HDFCBK", "HDFCBN"},
		names:    []string{"HDFCBK"},
		accept:   []string{"debited", "credited", "spent", "thanks for using", "withdrawn", "sent rs"},
		reject:   []string{"emi of", "avl bal in"},
		patterns: []pattern{
			// Thanks for using HDFC Bank Card x0818 for Rs 450.00 at AMAZON INDIA on 05-10-2025 09:43:27. Avl Limit: Rs 45000.00
			{
				re: regexp.MustCompile(`(?i)Thanks for using HDFC Bank (?P<cardkind>Credit )?Card\s+(?P<account>[Xx*\d]+)\s+for\s+(?P<currency>Rs\.?|INR|₹|[A-Z]{3})\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+at\s+(?P<merchant>.+?)\s+on\s+[\d-]+(?:.*?Avl Limit:?\s*(?:Rs\.?|INR|₹)\s*(?P<limit>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
				post: creditWhenGroup("cardkind"),
			},
			// Rs.500.00 debited from a/c **0818 on 05-10-25 to VPA swiggy@ybl (UPI Ref No 528812345678)
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from a/c\s*(?P<account>[Xx*\d]+)\s+on\s+\S+\s+to VPA\s+(?P<merchant>\S+?)(?:\s*\(UPI Ref No\.?\s*(?P<ref>\d+)\))?[.\s]*$`),
				kind: expense,
			},
			// Rs.2500.00 credited to a/c XXXX0818 on 05-10-25 by a/c linked to VPA friend@okicici (UPI Ref No 528898765432)
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to a/c\s*(?P<account>[Xx*\d]+)\s+on\s+\S+\s+by a/c linked to VPA\s+(?P<merchant>\S+?)(?:\s*\(UPI Ref No\.?\s*(?P<ref>\d+)\))?[.\s]*$`),
				kind: income,
			},
			// HDFC Bank: Rs. 25000.00 credited to a/c XXXX0818 on 05-10-25. Info: ACME SALARY OCT. Avl bal: Rs. 125430.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited to a/c\s*(?P<account>[Xx*\d]+)\s+on\s+\S+?[.\s]+Info:?\s*(?P<merchant>[^.\n]+)(?:.*?Avl bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: income,
			},
			// Rs.10000.00 withdrawn from a/c XXXX0818 using Debit Card xx4411 on 05-10-25. Avl bal: Rs.115430.00
			{
				re: regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+withdrawn from a/c\s*(?P<account>[Xx*\d]+)(?:.*?Avl bal:?\s*(?:Rs\.?|INR|₹)\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
				kind: expense, card: true,
			},
		},
	}
}
