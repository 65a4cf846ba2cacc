package bigquery

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

func TestNewTransactionRow(t *testing.T) {
	receivedAt := time.Date(2025, 10, 5, 9, 43, 27, 0, time.UTC)
	tx := &domain.Transaction{
		Amount:       decimal.RequireFromString("131"),
		Currency:     "INR",
		Type:         domain.TypeExpense,
		Merchant:     "Swiggy",
		AccountLast4: "0818",
		CreditLimit:  decimal.NullDecimal{Decimal: decimal.RequireFromString("217162.72"), Valid: true},
		IsFromCard:   true,
		Hash:         "abc123",
	}

	row := NewTransactionRow("AX-AXISBK-S", "axis", tx, receivedAt)

	if row.Hash != "abc123" || row.Sender != "AX-AXISBK-S" || row.Bank != "axis" {
		t.Errorf("identity fields = %s/%s/%s", row.Hash, row.Sender, row.Bank)
	}
	if got := row.TransactionDate.String(); got != "2025-10-05" {
		t.Errorf("TransactionDate = %s", got)
	}
	if row.Amount.Cmp(big.NewRat(131, 1)) != 0 {
		t.Errorf("Amount = %s", row.Amount)
	}
	if row.TxType != "EXPENSE" {
		t.Errorf("TxType = %s", row.TxType)
	}
	if !row.Merchant.Valid || row.Merchant.StringVal != "Swiggy" {
		t.Errorf("Merchant = %+v", row.Merchant)
	}
	if row.Balance != nil {
		t.Errorf("Balance = %s, want nil", row.Balance)
	}
	if row.CreditLimit == nil || row.CreditLimit.Cmp(big.NewRat(21716272, 100)) != 0 {
		t.Errorf("CreditLimit = %s", row.CreditLimit)
	}
	if !row.IsFromCard {
		t.Error("IsFromCard = false")
	}
}

func TestNewTransactionRowLeavesBlanksNull(t *testing.T) {
	tx := &domain.Transaction{
		Amount:   decimal.RequireFromString("50"),
		Currency: "KES",
		Type:     domain.TypeIncome,
		Hash:     "def456",
	}
	row := NewTransactionRow("MPESA", "mpesa", tx, time.Now())

	if row.Merchant.Valid || row.AccountLast4.Valid || row.Reference.Valid {
		t.Errorf("blank optionals mapped as non-null: %+v", row)
	}
	if row.Balance != nil || row.CreditLimit != nil {
		t.Error("absent numerics mapped as non-nil")
	}
}
