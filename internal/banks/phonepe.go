package banks

import "regexp"

// PhonePe app notifications (the bank SMS usually arrives separately;
// these carry the merchant and a txn ID, so they still reconcile).
func newPhonePe() Parser {
	return &rules{
		name:     "phonepe",
		currency: "INR",
		codes:    []string{"PHONPE", "PHONEPE"},
		names:    []string{"PhonePe"},
		accept:   []string{"paid", "sent", "received"},
		reject:   []string{"reminder"},
		patterns: []pattern{
			// Paid ₹540 to Zomato. Txn ID: T2510051234567890.
			{
				re: regexp.MustCompile(`(?i)Paid\s+(?:₹|Rs\.?|INR)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Txn ID:?\s*(?P<ref>\w+))?$`),
				kind: expense,
			},
			// Received ₹1,000 from Arjun K. Txn ID: T2510059876543210.
			{
				re: regexp.MustCompile(`(?i)Received\s+(?:₹|Rs\.?|INR)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<merchant>[^.\n]+?)(?:[.\s]+Txn ID:?\s*(?P<ref>\w+))?$`),
				kind: income,
			},
		},
	}
}
