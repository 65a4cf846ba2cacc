package extract

import "strings"

// symbolToCode maps currency symbols and local shorthand found in bank
// messages to ISO-style codes. Tokens are matched case-insensitively
// after trimming trailing dots ("Rs." == "Rs").
var symbolToCode = map[string]string{
	"₹": "INR", "rs": "INR", "inr": "INR", "rupees": "INR", "re": "INR",
	"$": "USD", "usd": "USD", "us$": "USD",
	"£": "GBP", "gbp": "GBP",
	"€": "EUR", "eur": "EUR",
	"sar": "SAR", "sr": "SAR", "ريال": "SAR",
	"aed": "AED", "dhs": "AED", "dh": "AED", "د.إ": "AED",
	"etb": "ETB", "br": "ETB", "birr": "ETB",
	"kes": "KES", "ksh": "KES", "kshs": "KES",
	"egp": "EGP", "le": "EGP", "ج.م": "EGP",
	"pkr": "PKR",
	"byn": "BYN",
	"npr": "NPR", "nrs": "NPR", "रु": "NPR",
	"qar": "QAR", "qr": "QAR",
	"kwd": "KWD", "kd": "KWD",
	"bhd": "BHD", "bd": "BHD",
	"omr": "OMR", "ro": "OMR",
	"lkr": "LKR",
	"bdt": "BDT", "tk": "BDT",
	"myr": "MYR", "rm": "MYR",
	"sgd": "SGD", "s$": "SGD",
	"ngn": "NGN", "₦": "NGN",
	"ugx": "UGX", "ush": "UGX",
	"tzs": "TZS", "tsh": "TZS",
	"ghs": "GHS", "gh₵": "GHS",
	"zar": "ZAR",
	"cad": "CAD", "c$": "CAD",
	"aud": "AUD", "a$": "AUD",
	"jpy": "JPY", "¥": "JPY",
}

// Currency resolves an explicit currency token captured from a message
// body to an ISO-style code, falling back to the parser's configured
// default when the token is absent or unknown. An explicit code in the
// message always takes precedence over the default.
func Currency(token, fallback string) string {
	t := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(token), "."))
	if t == "" {
		return fallback
	}
	if code, ok := symbolToCode[t]; ok {
		return code
	}
	// A bare 3-letter token is treated as a code as-is; multi-currency
	// card issuers emit codes the table does not enumerate.
	if len(t) == 3 && isAlpha(t) {
		return strings.ToUpper(t)
	}
	return fallback
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
