// Package bigquery is the optional analytics sink: parsed records are
// streamed into a BigQuery table for downstream reporting. The local
// sqlite store remains the source of truth; this sink is write-mostly.
package bigquery

import (
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// TransactionRow is the table schema for one parsed record.
type TransactionRow struct {
	Hash string `bigquery:"hash"` // REQUIRED

	Sender string `bigquery:"sender"` // REQUIRED
	Bank   string `bigquery:"bank"`   // REQUIRED

	TransactionDate civil.Date `bigquery:"transaction_date"` // REQUIRED
	ReceivedTS      time.Time  `bigquery:"received_ts"`      // REQUIRED

	Amount   *big.Rat `bigquery:"amount"`   // REQUIRED NUMERIC
	Currency string   `bigquery:"currency"` // REQUIRED STRING
	TxType   string   `bigquery:"tx_type"`  // REQUIRED STRING

	Merchant     bigquery.NullString `bigquery:"merchant"`      // NULLABLE
	AccountLast4 bigquery.NullString `bigquery:"account_last4"` // NULLABLE
	Balance      *big.Rat            `bigquery:"balance"`       // NULLABLE NUMERIC
	Reference    bigquery.NullString `bigquery:"reference"`     // NULLABLE
	CreditLimit  *big.Rat            `bigquery:"credit_limit"`  // NULLABLE NUMERIC

	IsFromCard bool `bigquery:"is_from_card"`

	CreatedTS time.Time `bigquery:"created_ts"` // REQUIRED (default CURRENT_TIMESTAMP)
}

// NewTransactionRow maps a parsed record and its provenance to a row.
func NewTransactionRow(sender, bank string, tx *domain.Transaction, receivedAt time.Time) *TransactionRow {
	row := &TransactionRow{
		Hash:            tx.Hash,
		Sender:          sender,
		Bank:            bank,
		TransactionDate: civil.DateOf(receivedAt.UTC()),
		ReceivedTS:      receivedAt.UTC(),
		Amount:          tx.Amount.Rat(),
		Currency:        tx.Currency,
		TxType:          tx.Type.String(),
		IsFromCard:      tx.IsFromCard,
		CreatedTS:       time.Now().UTC(),
	}
	if tx.Merchant != "" {
		row.Merchant = bigquery.NullString{StringVal: tx.Merchant, Valid: true}
	}
	if tx.AccountLast4 != "" {
		row.AccountLast4 = bigquery.NullString{StringVal: tx.AccountLast4, Valid: true}
	}
	if tx.Balance.Valid {
		row.Balance = tx.Balance.Decimal.Rat()
	}
	if tx.Reference != "" {
		row.Reference = bigquery.NullString{StringVal: tx.Reference, Valid: true}
	}
	if tx.CreditLimit.Valid {
		row.CreditLimit = tx.CreditLimit.Decimal.Rat()
	}
	return row
}
