package extract

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"131", "131", false},
		{"1,234.56", "1234.56", false},
		{"1,23,456.78", "123456.78", false}, // Indian lakh grouping
		{"24898.57CR", "24898.57", false},
		{"1500.00DR", "1500", false},
		{"29/-", "29", false},
		{"12 345,67", "12345.67", false}, // space grouping, decimal comma
		{"2,500", "2500", false},         // grouping comma, not decimal
		{"3,50", "3.50", false},          // decimal comma
		{"  450.25 ", "450.25", false},
		{"abc", "", true},
		{"12a", "", true},
		{"", "", true},
		{"12.34.56", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Amount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Amount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Amount(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestPositiveAmountRejectsZero(t *testing.T) {
	if _, err := PositiveAmount("0.00"); err == nil {
		t.Error("PositiveAmount(\"0.00\") = nil error, want error")
	}
	if _, err := PositiveAmount("0"); err == nil {
		t.Error("PositiveAmount(\"0\") = nil error, want error")
	}
}

func TestOptionalAmount(t *testing.T) {
	if got := OptionalAmount(""); got.Valid {
		t.Errorf("OptionalAmount(\"\") = %v, want invalid", got)
	}
	if got := OptionalAmount("garbage"); got.Valid {
		t.Errorf("OptionalAmount(\"garbage\") = %v, want invalid", got)
	}
	got := OptionalAmount("24898.57CR")
	if !got.Valid || got.Decimal.String() != "24898.57" {
		t.Errorf("OptionalAmount(\"24898.57CR\") = %v, want 24898.57", got)
	}
}

func TestAccountLast4(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"XX0818", "0818"},
		{"...5494", "5494"},
		{"****1234", "1234"},
		{"XXXX XXXX 9012", "9012"},
		{"4321-XXXX-XXXX-8765", "8765"},
		{"X892", "X892"}, // fewer than 4 true digits: mask filler kept
		{"**37", "XX37"},
		{"1234567890", "7890"},
		{"A/c XX4455", "4455"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := AccountLast4(tt.input); got != tt.want {
				t.Errorf("AccountLast4(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanMerchant(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Swiggy Limi", "Swiggy"}, // width-truncated "Limited"
		{"Swiggy Limited", "Swiggy"},
		{"AMAZON PAY INDIA PVT LTD", "Amazon Pay India"},
		{"UBER  INDIA   SYSTEMS", "Uber India Systems"},
		{"Loan Recovery Fo", "Loan Recovery Fo"},
		{"IRCTC", "IRCTC"},        // single token acronym untouched
		{"HPCL", "HPCL"},
		{"  Zomato.  ", "Zomato"},
		{"Reliance Retail Priv", "Reliance Retail"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CleanMerchant(tt.input); got != tt.want {
				t.Errorf("CleanMerchant(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		token    string
		fallback string
		want     string
	}{
		{"Rs", "INR", "INR"},
		{"Rs.", "INR", "INR"},
		{"₹", "INR", "INR"},
		{"INR", "INR", "INR"},
		{"", "SAR", "SAR"},
		{"USD", "INR", "USD"},
		{"KSh", "KES", "KES"},
		{"Dhs", "AED", "AED"},
		{"chf", "INR", "CHF"}, // bare 3-letter code passes through
		{"??", "ETB", "ETB"},
	}

	for _, tt := range tests {
		t.Run(tt.token+"_"+tt.fallback, func(t *testing.T) {
			if got := Currency(tt.token, tt.fallback); got != tt.want {
				t.Errorf("Currency(%q, %q) = %q, want %q", tt.token, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestDeobfuscate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sans-serif letters", "\U0001D5B2\U0001D5C9\U0001D5BE\U0001D5C7\U0001D5CD", "Spent"},
		{"bold digits", "\U0001D7CF\U0001D7D0\U0001D7D1", "123"},
		{"fullwidth", "Ｒｓ．１００", "Rs.100"},
		{"plain ascii untouched", "Spent INR 131", "Spent INR 131"},
		{"arabic untouched", "تم خصم مبلغ 150.00 ريال", "تم خصم مبلغ 150.00 ريال"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Deobfuscate(tt.input); got != tt.want {
				t.Errorf("Deobfuscate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
