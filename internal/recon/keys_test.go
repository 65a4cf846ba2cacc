package recon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

func tx(amount string, ty domain.Type, acct, ref string) *domain.Transaction {
	a, _ := decimal.NewFromString(amount)
	return &domain.Transaction{
		Amount:       a,
		Currency:     "INR",
		Type:         ty,
		AccountLast4: acct,
		Reference:    ref,
	}
}

func TestHashDeterministic(t *testing.T) {
	at := time.Date(2025, 10, 5, 9, 43, 27, 0, time.UTC)
	a := tx("131", domain.TypeExpense, "0818", "")
	b := tx("131.00", domain.TypeExpense, "0818", "")

	h1 := Hash("AX-AXISBK-S", a, at)
	h2 := Hash("AX-AXISBK-S", a, at)
	if h1 != h2 {
		t.Errorf("Hash not deterministic: %s != %s", h1, h2)
	}
	// 131 and 131.00 are the same amount; normalization must agree.
	if got := Hash("AX-AXISBK-S", b, at); got != h1 {
		t.Errorf("Hash differs for equal amounts: %s != %s", got, h1)
	}
	// Same minute, different seconds: identical bucket.
	if got := Hash("AX-AXISBK-S", a, at.Add(20*time.Second)); got != h1 {
		t.Errorf("Hash differs within one minute bucket")
	}
	// Next minute: different hash.
	if got := Hash("AX-AXISBK-S", a, at.Add(time.Minute)); got == h1 {
		t.Errorf("Hash identical across minute buckets")
	}
	// Different sender: different hash.
	if got := Hash("VM-BOBTXN-S", a, at); got == h1 {
		t.Errorf("Hash identical across senders")
	}
}

func TestSameReference(t *testing.T) {
	if !SameReference(tx("10", domain.TypeExpense, "", "UTR123"), tx("10", domain.TypeExpense, "", "UTR123")) {
		t.Error("equal non-blank references should match")
	}
	if SameReference(tx("10", domain.TypeExpense, "", ""), tx("10", domain.TypeExpense, "", "")) {
		t.Error("blank references must never match")
	}
	if SameReference(tx("10", domain.TypeExpense, "", "A"), tx("10", domain.TypeExpense, "", "B")) {
		t.Error("different references must not match")
	}
}

func TestCandidateMatch(t *testing.T) {
	base := time.Date(2025, 10, 5, 9, 43, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b *domain.Transaction
		ta   time.Time
		tb   time.Time
		want bool
	}{
		{
			name: "same reference wins regardless of window",
			a:    tx("500", domain.TypeExpense, "0818", "UTR9"),
			b:    tx("500", domain.TypeExpense, "0818", "UTR9"),
			ta:   base, tb: base.Add(time.Hour),
			want: true,
		},
		{
			name: "different references fall back to key within window",
			a:    tx("500", domain.TypeExpense, "0818", "UTR9"),
			b:    tx("500", domain.TypeExpense, "0818", "RRN77"),
			ta:   base, tb: base.Add(2 * time.Minute),
			want: true,
		},
		{
			name: "fallback outside window",
			a:    tx("500", domain.TypeExpense, "0818", ""),
			b:    tx("500", domain.TypeExpense, "0818", ""),
			ta:   base, tb: base.Add(10 * time.Minute),
			want: false,
		},
		{
			name: "different amount",
			a:    tx("500", domain.TypeExpense, "0818", ""),
			b:    tx("501", domain.TypeExpense, "0818", ""),
			ta:   base, tb: base,
			want: false,
		},
		{
			name: "different type",
			a:    tx("500", domain.TypeExpense, "0818", ""),
			b:    tx("500", domain.TypeTransfer, "0818", ""),
			ta:   base, tb: base,
			want: false,
		},
		{
			name: "different account",
			a:    tx("500", domain.TypeExpense, "0818", ""),
			b:    tx("500", domain.TypeExpense, "5494", ""),
			ta:   base, tb: base,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CandidateMatch(tt.a, tt.b, tt.ta, tt.tb, DefaultWindow); got != tt.want {
				t.Errorf("CandidateMatch() = %v, want %v", got, tt.want)
			}
		})
	}
}
