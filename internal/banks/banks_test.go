package banks

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

var receivedAt = time.Date(2025, 10, 5, 9, 43, 27, 0, time.UTC)

func TestParseFixtures(t *testing.T) {
	tests := []struct {
		name         string
		sender       string
		body         string
		wantAmount   string
		wantCurrency string
		wantType     domain.Type
		wantMerchant string
		wantAccount  string
		wantBalance  string
		wantRef      string
		wantCard     bool
	}{
		{
			name:   "axis card spend multiline",
			sender: "AX-AXISBK-S",
			body: "Spent INR 131\n" +
				"Bank Card no. XX0818\n" +
				"05-10-25 09:43:27 IST\n" +
				"Swiggy Limi\n" +
				"Avl Limit: INR 217162.72",
			wantAmount:   "131",
			wantCurrency: "INR",
			wantType:     domain.TypeExpense,
			wantMerchant: "Swiggy",
			wantAccount:  "0818",
			wantCard:     true,
		},
		{
			name:         "bob transfer with running balance",
			sender:       "VM-BOBTXN-S",
			body:         "Rs.29 transferred from A/c ...5494 to:Loan Recovery Fo. Total Bal:Rs.24898.57CR.",
			wantAmount:   "29",
			wantCurrency: "INR",
			wantType:     domain.TypeExpense,
			wantMerchant: "Loan Recovery Fo",
			wantAccount:  "5494",
			wantBalance:  "24898.57",
		},
		{
			name:         "hdfc upi debit to brokerage",
			sender:       "AD-HDFCBK-S",
			body:         "Rs.5000.00 debited from a/c **0818 on 05-10-25 to VPA groww@icici (UPI Ref No 528812345678)",
			wantAmount:   "5000",
			wantCurrency: "INR",
			wantType:     domain.TypeInvestment,
			wantMerchant: "groww@icici",
			wantAccount:  "0818",
			wantRef:      "528812345678",
		},
		{
			name:         "hdfc upi debit to own card bill",
			sender:       "AD-HDFCBK-S",
			body:         "Rs.12430.00 debited from a/c **0818 on 05-10-25 to VPA cred.club@axisb (UPI Ref No 528899887766)",
			wantAmount:   "12430",
			wantCurrency: "INR",
			wantType:     domain.TypeTransfer,
			wantMerchant: "cred.club@axisb",
			wantAccount:  "0818",
			wantRef:      "528899887766",
		},
		{
			name:         "cred card bill payment",
			sender:       "VM-CREDCL-S",
			body:         "Payment of Rs.12,430.00 towards your HDFC Bank Credit Card XX7003 is successful. Ref CRD2510051234.",
			wantAmount:   "12430",
			wantCurrency: "INR",
			wantType:     domain.TypeTransfer,
			wantMerchant: "HDFC Bank Credit Card",
			wantAccount:  "7003",
			wantRef:      "CRD2510051234",
		},
		{
			name:         "emirates nbd debit card purchase",
			sender:       "AD-EMNBD",
			body:         "Purchase of AED 210.50 with Debit Card ending 4412 at CARREFOUR DUBAI. Avl Bal AED 8,904.12.",
			wantAmount:   "210.5",
			wantCurrency: "AED",
			wantType:     domain.TypeExpense,
			wantMerchant: "Carrefour Dubai",
			wantAccount:  "4412",
			wantBalance:  "8904.12",
			wantCard:     true,
		},
		{
			name:         "mashreq credit card purchase",
			sender:       "AD-MASHREQ",
			body:         "Purchase Alert: AED 129.99 spent on Mashreq Credit Card ending 6640 at AMAZON.AE",
			wantAmount:   "129.99",
			wantCurrency: "AED",
			wantType:     domain.TypeCredit,
			wantMerchant: "AMAZON",
			wantAccount:  "6640",
			wantCard:     true,
		},
		{
			name:   "alrajhi arabic card purchase",
			sender: "AD-ALRAJHI",
			body: "شراء إنترنت\n" +
				"بطاقة:مدى*1234\n" +
				"حساب:*9876\n" +
				"مبلغ:SAR 150.00\n" +
				"لدى:AMAZON",
			wantAmount:   "150",
			wantCurrency: "SAR",
			wantType:     domain.TypeExpense,
			wantMerchant: "AMAZON",
			wantAccount:  "1234",
			wantCard:     true,
		},
		{
			name:   "cbe debit with receipt reference",
			sender: "CBE",
			body: "Dear ABEBE your Account 1*****2345 has been debited with ETB 1,500.00. " +
				"Your Current Balance is ETB 12,430.55. Thank you for Banking with CBE! " +
				"https://apps.cbe.com.et:100/?id=FT25278ABC123",
			wantAmount:   "1500",
			wantCurrency: "ETB",
			wantType:     domain.TypeExpense,
			wantAccount:  "2345",
			wantBalance:  "12430.55",
			wantRef:      "FT25278ABC123",
		},
		{
			name:   "telebirr payment",
			sender: "127",
			body: "You have paid ETB 250.00 to ETHIO GAS STATION. Your telebirr balance is " +
				"ETB 1,830.00. Transaction number CE25278XYZ.",
			wantAmount:   "250",
			wantCurrency: "ETB",
			wantType:     domain.TypeExpense,
			wantMerchant: "Ethio Gas Station",
			wantBalance:  "1830",
			wantRef:      "CE25278XYZ",
		},
		{
			name:   "mpesa paybill with leading confirmation code",
			sender: "MPESA",
			body: "TJ72K81MNO Confirmed. Ksh1,200.00 paid to NAIVAS SUPERMARKET. on 5/10/25 " +
				"at 2:14 PM. New M-PESA balance is Ksh8,340.00.",
			wantAmount:   "1200",
			wantCurrency: "KES",
			wantType:     domain.TypeExpense,
			wantMerchant: "Naivas Supermarket",
			wantBalance:  "8340",
			wantRef:      "TJ72K81MNO",
		},
		{
			name:         "mpesa receive",
			sender:       "MPESA",
			body:         "TJ72KA1STU Confirmed. You have received Ksh2,000.00 from JOHN KAMAU 0711222333 on 5/10/25. New M-PESA balance is Ksh9,840.00.",
			wantAmount:   "2000",
			wantCurrency: "KES",
			wantType:     domain.TypeIncome,
			wantMerchant: "John Kamau 0711222333",
			wantBalance:  "9840",
			wantRef:      "TJ72KA1STU",
		},
		{
			name:         "hbl account debit",
			sender:       "HBL",
			body:         "Dear Customer, PKR 5,400.00 has been debited from your account **3390 at DARAZ ONLINE. Avail Bal PKR 88,200.00.",
			wantAmount:   "5400",
			wantCurrency: "PKR",
			wantType:     domain.TypeExpense,
			wantMerchant: "Daraz Online",
			wantAccount:  "3390",
			wantBalance:  "88200",
		},
		{
			name:         "jazzcash bill payment",
			sender:       "JazzCash",
			body:         "You have paid Rs. 850.00 to K-ELECTRIC via JazzCash. TID: 025278443121.",
			wantAmount:   "850",
			wantCurrency: "PKR",
			wantType:     domain.TypeExpense,
			wantMerchant: "K-ELECTRIC",
			wantRef:      "025278443121",
		},
		{
			name:         "belarusbank decimal comma card payment",
			sender:       "ASB.BY",
			body:         "Oplata 25,50 BYN. Karta 4***1234. EVROOPT MINSK. Dostupno 310,20 BYN.",
			wantAmount:   "25.5",
			wantCurrency: "BYN",
			wantType:     domain.TypeExpense,
			wantMerchant: "Evroopt Minsk",
			wantAccount:  "1234",
			wantBalance:  "310.2",
			wantCard:     true,
		},
		{
			name:         "priorbank top up",
			sender:       "Priorbank",
			body:         "Karta 5***7890. Zachislenie 2100,00 BYN. Ostatok 2612,44 BYN.",
			wantAmount:   "2100",
			wantCurrency: "BYN",
			wantType:     domain.TypeIncome,
			wantAccount:  "7890",
			wantBalance:  "2612.44",
		},
		{
			name:         "esewa wallet payment",
			sender:       "ESEWA",
			body:         "You paid NPR 450.00 to NEPAL ELECTRICITY AUTHORITY via eSewa. Trace ID: 0N7X2K.",
			wantAmount:   "450",
			wantCurrency: "NPR",
			wantType:     domain.TypeExpense,
			wantMerchant: "Nepal Electricity Authority",
			wantRef:      "0N7X2K",
		},
		{
			name:         "wise multi currency card spend",
			sender:       "Wise",
			body:         "You spent 24.90 EUR at SPOTIFY with your Wise card ending 5102.",
			wantAmount:   "24.9",
			wantCurrency: "EUR",
			wantType:     domain.TypeExpense,
			wantMerchant: "SPOTIFY",
			wantAccount:  "5102",
			wantCard:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Resolve(tc.sender)
			if p == nil {
				t.Fatalf("Resolve(%q) = nil, want a parser", tc.sender)
			}
			if !p.ShouldParse(tc.body) {
				t.Fatalf("%s.ShouldParse rejected a transaction body", p.Name())
			}

			tx, ok := p.Parse(tc.body, tc.sender, receivedAt)
			if !ok {
				t.Fatalf("%s.Parse returned no transaction", p.Name())
			}

			if want := decimal.RequireFromString(tc.wantAmount); !tx.Amount.Equal(want) {
				t.Errorf("Amount = %s, want %s", tx.Amount, want)
			}
			if tx.Currency != tc.wantCurrency {
				t.Errorf("Currency = %q, want %q", tx.Currency, tc.wantCurrency)
			}
			if tx.Type != tc.wantType {
				t.Errorf("Type = %s, want %s", tx.Type, tc.wantType)
			}
			if tx.Merchant != tc.wantMerchant {
				t.Errorf("Merchant = %q, want %q", tx.Merchant, tc.wantMerchant)
			}
			if tx.AccountLast4 != tc.wantAccount {
				t.Errorf("AccountLast4 = %q, want %q", tx.AccountLast4, tc.wantAccount)
			}
			if tx.Reference != tc.wantRef {
				t.Errorf("Reference = %q, want %q", tx.Reference, tc.wantRef)
			}
			if tx.IsFromCard != tc.wantCard {
				t.Errorf("IsFromCard = %v, want %v", tx.IsFromCard, tc.wantCard)
			}

			if tc.wantBalance == "" {
				if tx.Balance.Valid {
					t.Errorf("Balance = %s, want none", tx.Balance.Decimal)
				}
			} else {
				want := decimal.RequireFromString(tc.wantBalance)
				if !tx.Balance.Valid || !tx.Balance.Decimal.Equal(want) {
					t.Errorf("Balance = %+v, want %s", tx.Balance, want)
				}
			}
		})
	}
}

func TestShouldParseRejectsNonTransactions(t *testing.T) {
	bodies := map[string]string{
		"otp":            "123456 is your OTP for login. Do not share it with anyone.",
		"promo":          "Congratulations! You are eligible for a special offer. Apply now.",
		"bill reminder":  "Your credit card bill of Rs. 4,500.00 is due on 12-10-25.",
		"declined":       "Your transaction of INR 900.00 was declined due to insufficient funds.",
		"collect demand": "User merchant@upi has requested Rs. 500.00 from you.",
	}

	for label, body := range bodies {
		for _, p := range All() {
			if p.ShouldParse(body) {
				t.Errorf("%s.ShouldParse accepted %s body", p.Name(), label)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{"AX-AXISBK-S", "axis"},
		{"JX-AXISBK", "axis"},
		{"AXISBK", "axis"},
		{"VM-BOBTXN-S", "bob"},
		{"ad-alrajhi", "alrajhi"},
		{"MPESA", "mpesa"},
		{"127", "telebirr"},
		{"EmiratesNBD", "emiratesnbd"},
		{"Wise", "wise"},
		{"BX-UNKNWN-S", ""},
		{"", ""},
	}

	for _, tc := range tests {
		p := Resolve(tc.sender)
		switch {
		case tc.want == "" && p != nil:
			t.Errorf("Resolve(%q) = %s, want nil", tc.sender, p.Name())
		case tc.want != "" && p == nil:
			t.Errorf("Resolve(%q) = nil, want %s", tc.sender, tc.want)
		case tc.want != "" && p.Name() != tc.want:
			t.Errorf("Resolve(%q) = %s, want %s", tc.sender, p.Name(), tc.want)
		}
	}
}

// Every registered sender code must resolve back to the parser that
// declared it; a collision would make resolution order-dependent.
func TestSenderCodesAreUnambiguous(t *testing.T) {
	for _, p := range All() {
		r, ok := p.(*rules)
		if !ok {
			continue
		}
		for _, code := range r.codes {
			got := Resolve("XX-" + code + "-S")
			if got == nil || got.Name() != r.name {
				t.Errorf("code %q declared by %s resolves to %v", code, r.name, got)
			}
		}
		for _, name := range r.names {
			got := Resolve(name)
			if got == nil || got.Name() != r.name {
				t.Errorf("sender name %q declared by %s resolves to %v", name, r.name, got)
			}
		}
	}
}

func TestParseFailsClosedOnMangledAmount(t *testing.T) {
	p := Resolve("VM-BOBTXN-S")
	if p == nil {
		t.Fatal("bob parser not registered")
	}
	body := "Rs.TWENTY transferred from A/c ...5494 to:Loan Recovery Fo. Total Bal:Rs.24898.57CR."
	if tx, ok := p.Parse(body, "VM-BOBTXN-S", receivedAt); ok {
		t.Fatalf("Parse accepted unparsable amount: %+v", tx)
	}
}

func TestParseStylizedUnicodeBody(t *testing.T) {
	// Mathematical bold letters fold to ASCII before matching.
	body := "\U0001D412\U0001D429\U0001D41E\U0001D427\U0001D42D INR 131\n" +
		"Bank Card no. XX0818\n" +
		"05-10-25 09:43:27 IST\n" +
		"Swiggy Limi\n" +
		"Avl Limit: INR 217162.72"
	p := Resolve("AX-AXISBK-S")
	if p == nil {
		t.Fatal("axis parser not registered")
	}
	tx, ok := p.Parse(body, "AX-AXISBK-S", receivedAt)
	if !ok {
		t.Fatal("Parse rejected stylized body")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(131)) || tx.Merchant != "Swiggy" {
		t.Errorf("got amount %s merchant %q", tx.Amount, tx.Merchant)
	}
}
