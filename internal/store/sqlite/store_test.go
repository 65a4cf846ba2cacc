package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/recon"
)

var receivedAt = time.Date(2025, 10, 5, 9, 43, 27, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testTx(t *testing.T, sender, amount, account string) *domain.Transaction {
	t.Helper()
	tx := &domain.Transaction{
		Amount:       decimal.RequireFromString(amount),
		Currency:     "INR",
		Type:         domain.TypeExpense,
		Merchant:     "Swiggy",
		AccountLast4: account,
	}
	recon.Annotate(sender, tx, receivedAt)
	return tx
}

func TestInsertDeduplicatesByHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tx := testTx(t, "AX-AXISBK-S", "131", "0818")

	inserted, err := s.Insert(ctx, "AX-AXISBK-S", "axis", tx, receivedAt)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !inserted {
		t.Fatal("first insert reported duplicate")
	}

	inserted, err = s.Insert(ctx, "AX-AXISBK-S", "axis", tx, receivedAt)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if inserted {
		t.Fatal("second insert of the same hash was not collapsed")
	}

	recent, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("stored %d records, want 1", len(recent))
	}
	got := recent[0]
	if got.Bank != "axis" || got.Sender != "AX-AXISBK-S" {
		t.Errorf("provenance = %s/%s", got.Bank, got.Sender)
	}
	if !got.Tx.Amount.Equal(tx.Amount) || got.Tx.Merchant != tx.Merchant {
		t.Errorf("round-tripped record = %+v", got.Tx)
	}
	if !got.ReceivedAt.Equal(receivedAt) {
		t.Errorf("ReceivedAt = %s, want %s", got.ReceivedAt, receivedAt)
	}
}

func TestInsertRejectsUnhashedRecord(t *testing.T) {
	s := openTestStore(t)
	tx := testTx(t, "AX-AXISBK-S", "131", "0818")
	tx.Hash = ""
	if _, err := s.Insert(context.Background(), "AX-AXISBK-S", "axis", tx, receivedAt); err == nil {
		t.Fatal("Insert accepted a record with no hash")
	}
}

func TestFindCandidates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// The bank's own alert.
	bankTx := testTx(t, "AX-AXISBK-S", "131", "0818")
	if _, err := s.Insert(ctx, "AX-AXISBK-S", "axis", bankTx, receivedAt); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// An aggregator reporting the same event a minute later.
	walletAt := receivedAt.Add(time.Minute)
	walletTx := testTx(t, "PAYTMB", "131", "0818")
	recon.Annotate("PAYTMB", walletTx, walletAt)

	got, err := s.FindCandidates(ctx, walletTx, walletAt, recon.DefaultWindow)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(got) != 1 || got[0].Tx.Hash != bankTx.Hash {
		t.Fatalf("candidates = %+v, want the bank record", got)
	}

	// Outside the window the fallback signal goes away.
	lateAt := receivedAt.Add(recon.DefaultWindow + time.Minute)
	lateTx := testTx(t, "PAYTMB", "131", "0818")
	recon.Annotate("PAYTMB", lateTx, lateAt)
	got, err = s.FindCandidates(ctx, lateTx, lateAt, recon.DefaultWindow)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("late candidates = %+v, want none", got)
	}

	// Different amount never matches.
	otherTx := testTx(t, "PAYTMB", "132", "0818")
	recon.Annotate("PAYTMB", otherTx, walletAt)
	got, err = s.FindCandidates(ctx, otherTx, walletAt, recon.DefaultWindow)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("mismatched-amount candidates = %+v, want none", got)
	}
}

func TestFindCandidatesByReference(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	bankTx := testTx(t, "AX-AXISBK-S", "131", "0818")
	bankTx.Reference = "528812345678"
	recon.Annotate("AX-AXISBK-S", bankTx, receivedAt)
	if _, err := s.Insert(ctx, "AX-AXISBK-S", "axis", bankTx, receivedAt); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Same reference seen hours later still matches.
	laterAt := receivedAt.Add(6 * time.Hour)
	walletTx := testTx(t, "PAYTMB", "131", "4523")
	walletTx.Reference = "528812345678"
	recon.Annotate("PAYTMB", walletTx, laterAt)

	got, err := s.FindCandidates(ctx, walletTx, laterAt, recon.DefaultWindow)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(got) != 1 || got[0].Tx.Hash != bankTx.Hash {
		t.Fatalf("candidates = %+v, want the referenced record", got)
	}
}

func TestRecordCandidateIsOrderInsensitive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.RecordCandidate(ctx, "bbb", "aaa", "fallback_key"); err != nil {
		t.Fatalf("RecordCandidate: %v", err)
	}
	// The reversed pair is the same row.
	if err := s.RecordCandidate(ctx, "aaa", "bbb", "fallback_key"); err != nil {
		t.Fatalf("RecordCandidate: %v", err)
	}

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM candidate_matches").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("stored %d candidate rows, want 1", n)
	}
}
