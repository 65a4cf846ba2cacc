package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

const axisCardSpend = "Spent INR 131\n" +
	"Bank Card no. XX0818\n" +
	"05-10-25 09:43:27 IST\n" +
	"Swiggy Limi\n" +
	"Avl Limit: INR 217162.72"

var receivedAt = time.Date(2025, 10, 5, 9, 43, 27, 0, time.UTC)

func newTestEngine() *Engine {
	return New(zerolog.Nop())
}

func TestParseOutcomes(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name   string
		body   string
		sender string
		want   Outcome
	}{
		{
			name:   "parsed",
			body:   axisCardSpend,
			sender: "AX-AXISBK-S",
			want:   OutcomeParsed,
		},
		{
			name:   "unrecognized sender",
			body:   axisCardSpend,
			sender: "BX-UNKNWN-S",
			want:   OutcomeUnrecognizedSender,
		},
		{
			name:   "otp is not a transaction",
			body:   "123456 is your OTP for login. Do not share it with anyone.",
			sender: "AX-AXISBK-S",
			want:   OutcomeNotTransaction,
		},
		{
			name:   "transactional body with no matching pattern",
			body:   "Spent some amount somewhere, check the app for details.",
			sender: "AX-AXISBK-S",
			want:   OutcomeMalformedMatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx, outcome := e.Parse(tc.body, tc.sender, receivedAt)
			if outcome != tc.want {
				t.Fatalf("outcome = %s, want %s", outcome, tc.want)
			}
			if (tx != nil) != (tc.want == OutcomeParsed) {
				t.Fatalf("record presence = %v for outcome %s", tx != nil, outcome)
			}
		})
	}
}

func TestParseProducesValidHashedRecord(t *testing.T) {
	e := newTestEngine()

	tx, outcome := e.Parse(axisCardSpend, "AX-AXISBK-S", receivedAt)
	if outcome != OutcomeParsed {
		t.Fatalf("outcome = %s", outcome)
	}
	if err := tx.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if tx.Hash == "" {
		t.Fatal("record has no content hash")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(131)) {
		t.Errorf("Amount = %s, want 131", tx.Amount)
	}
	if tx.Type != domain.TypeExpense {
		t.Errorf("Type = %s, want %s", tx.Type, domain.TypeExpense)
	}
	if tx.Merchant != "Swiggy" {
		t.Errorf("Merchant = %q, want Swiggy", tx.Merchant)
	}
	if tx.AccountLast4 != "0818" {
		t.Errorf("AccountLast4 = %q, want 0818", tx.AccountLast4)
	}
	if !tx.IsFromCard {
		t.Error("IsFromCard = false, want true")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	e := newTestEngine()

	first, outcome := e.Parse(axisCardSpend, "AX-AXISBK-S", receivedAt)
	if outcome != OutcomeParsed {
		t.Fatalf("outcome = %s", outcome)
	}
	for i := 0; i < 10; i++ {
		again, _ := e.Parse(axisCardSpend, "AX-AXISBK-S", receivedAt)
		if again.Hash != first.Hash {
			t.Fatalf("hash changed across identical parses: %s vs %s", again.Hash, first.Hash)
		}
	}
}

func TestParseMillisMatchesParse(t *testing.T) {
	e := newTestEngine()

	fromMillis, _ := e.ParseMillis(axisCardSpend, "AX-AXISBK-S", receivedAt.UnixMilli())
	fromTime, _ := e.Parse(axisCardSpend, "AX-AXISBK-S", receivedAt)
	if fromMillis.Hash != fromTime.Hash {
		t.Fatalf("millis and time parses disagree: %s vs %s", fromMillis.Hash, fromTime.Hash)
	}
}

func TestParseMillisMinuteBoundary(t *testing.T) {
	e := newTestEngine()

	// 59.999s and 60.000s fall into different hash buckets.
	base := time.Date(2025, 10, 5, 9, 43, 0, 0, time.UTC)
	a, _ := e.ParseMillis(axisCardSpend, "AX-AXISBK-S", base.UnixMilli()+59_999)
	b, _ := e.ParseMillis(axisCardSpend, "AX-AXISBK-S", base.UnixMilli()+60_000)
	if a.Hash == b.Hash {
		t.Fatal("hashes identical across minute boundary")
	}

	// Within one bucket the hash is stable.
	c, _ := e.ParseMillis(axisCardSpend, "AX-AXISBK-S", base.UnixMilli()+1_000)
	d, _ := e.ParseMillis(axisCardSpend, "AX-AXISBK-S", base.UnixMilli()+58_000)
	if c.Hash != d.Hash {
		t.Fatal("hashes differ within one minute bucket")
	}
}
