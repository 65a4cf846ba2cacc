package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Type is the semantic kind of a parsed transaction.
type Type string

const (
	// TypeIncome is money received into a bank account.
	TypeIncome Type = "INCOME"
	// TypeExpense is money spent from a bank account or debit card.
	TypeExpense Type = "EXPENSE"
	// TypeCredit is spend on a credit card, tracked separately from cash expense.
	TypeCredit Type = "CREDIT"
	// TypeTransfer is movement between the user's own instruments,
	// e.g. paying off a credit-card bill.
	TypeTransfer Type = "TRANSFER"
	// TypeInvestment is an outbound transfer to mutual funds, gold or a brokerage.
	TypeInvestment Type = "INVESTMENT"
)

// IsValid checks if the type is one of the five defined kinds.
func (t Type) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeCredit, TypeTransfer, TypeInvestment:
		return true
	}
	return false
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// Transaction is the canonical record produced by a bank parser.
// It is institution-independent: no source message shape leaks through it.
// A Transaction is constructed once by a parser and never mutated afterwards.
type Transaction struct {
	// Amount is the transaction amount. Always strictly positive; the
	// direction is carried by Type, not by the sign.
	Amount decimal.Decimal

	// Currency is the 3-letter ISO-style code (INR, SAR, ETB, ...).
	// Never blank: parsers fall back to their configured default.
	Currency string

	// Type is the semantic kind. Always exactly one of the five kinds.
	Type Type

	// Merchant is the human-readable counterparty label, empty when the
	// message carries no identifiable counterparty.
	Merchant string

	// AccountLast4 is the last 4 visible characters of the masked
	// account/card number. Used for disambiguation, not authentication.
	AccountLast4 string

	// Balance is the post-transaction available balance in the same
	// currency as Amount, when the message reports one.
	Balance decimal.NullDecimal

	// Reference is the bank-assigned UTR/RRN/transaction identifier, or a
	// receipt URL when no short reference exists.
	Reference string

	// IsFromCard is true when the instrument is a debit or credit card
	// rather than an account rail (UPI/NEFT/IMPS/ACH).
	IsFromCard bool

	// CreditLimit is the remaining credit limit, populated only for
	// credit-card spends.
	CreditLimit decimal.NullDecimal

	// Hash is the derived content hash over the normalized
	// (sender, amount, type, account, timestamp-bucket) tuple. Set by the
	// reconciliation key builder after extraction.
	Hash string
}

// Validate enforces the record invariants. A parser must never hand a
// record that fails validation to the caller.
func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if strings.TrimSpace(t.Currency) == "" {
		return fmt.Errorf("transaction currency cannot be blank")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("invalid transaction type: %q", t.Type)
	}
	if t.Balance.Valid && t.Balance.Decimal.IsNegative() {
		return fmt.Errorf("balance cannot be negative, got %s", t.Balance.Decimal)
	}
	return nil
}

// String returns a compact representation for logs.
func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction{%s %s %s merchant=%q acct=%q card=%v}",
		t.Type, t.Amount.String(), t.Currency, t.Merchant, t.AccountLast4, t.IsFromCard)
}
