// Package sqlite persists parsed transactions locally. It implements
// the storage side of the engine's output contract: insert records
// keyed by content hash so duplicate deliveries collapse, and surface
// cross-institution duplicate candidates without ever merging them.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/recon"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	hash          TEXT PRIMARY KEY,
	sender        TEXT NOT NULL,
	bank          TEXT NOT NULL,
	amount        TEXT NOT NULL,
	currency      TEXT NOT NULL,
	tx_type       TEXT NOT NULL,
	merchant      TEXT NOT NULL DEFAULT '',
	account_last4 TEXT NOT NULL DEFAULT '',
	balance       TEXT,
	reference     TEXT NOT NULL DEFAULT '',
	credit_limit  TEXT,
	is_from_card  INTEGER NOT NULL DEFAULT 0,
	received_at   INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_fallback
	ON transactions (account_last4, amount, tx_type);

CREATE INDEX IF NOT EXISTS idx_transactions_reference
	ON transactions (reference) WHERE reference != '';

CREATE TABLE IF NOT EXISTS candidate_matches (
	hash_a     TEXT NOT NULL,
	hash_b     TEXT NOT NULL,
	reason     TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (hash_a, hash_b)
);
`

// Stored is a persisted record with its provenance.
type Stored struct {
	Sender     string
	Bank       string
	Tx         domain.Transaction
	ReceivedAt time.Time
}

// Store is a sqlite-backed transaction store. Safe for concurrent use;
// sqlite serializes writers internally.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" is accepted for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert persists a parsed record. Returns false when a record with the
// same content hash already exists; duplicate deliveries of one message
// are silently collapsed this way.
func (s *Store) Insert(ctx context.Context, sender, bank string, tx *domain.Transaction, receivedAt time.Time) (bool, error) {
	if tx.Hash == "" {
		return false, fmt.Errorf("Insert: record has no content hash")
	}

	var balance, creditLimit sql.NullString
	if tx.Balance.Valid {
		balance = sql.NullString{String: tx.Balance.Decimal.String(), Valid: true}
	}
	if tx.CreditLimit.Valid {
		creditLimit = sql.NullString{String: tx.CreditLimit.Decimal.String(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO transactions
			(hash, sender, bank, amount, currency, tx_type, merchant,
			 account_last4, balance, reference, credit_limit, is_from_card,
			 received_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.Hash, sender, bank, tx.Amount.String(), tx.Currency,
		tx.Type.String(), tx.Merchant, tx.AccountLast4, balance,
		tx.Reference, creditLimit, boolToInt(tx.IsFromCard),
		receivedAt.UTC().UnixMilli(), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return false, fmt.Errorf("Insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Insert: rows affected: %w", err)
	}
	return n > 0, nil
}

// FindCandidates returns stored records that plausibly describe the
// same real-world event as tx: same non-blank reference, or same
// fallback key with receive timestamps inside the window. The record's
// own hash is excluded. Candidates are a review signal; nothing is
// merged here.
func (s *Store) FindCandidates(ctx context.Context, tx *domain.Transaction, receivedAt time.Time, window time.Duration) ([]Stored, error) {
	lo := receivedAt.Add(-window).UTC().UnixMilli()
	hi := receivedAt.Add(window).UTC().UnixMilli()

	rows, err := s.db.QueryContext(ctx, `
		SELECT sender, bank, hash, amount, currency, tx_type, merchant,
		       account_last4, balance, reference, credit_limit,
		       is_from_card, received_at
		FROM transactions
		WHERE hash != ?
		  AND ((reference != '' AND reference = ?)
		    OR (account_last4 = ? AND amount = ? AND tx_type = ?
		        AND received_at BETWEEN ? AND ?))`,
		tx.Hash, tx.Reference,
		tx.AccountLast4, tx.Amount.String(), tx.Type.String(), lo, hi,
	)
	if err != nil {
		return nil, fmt.Errorf("FindCandidates: %w", err)
	}
	defer rows.Close()

	var out []Stored
	for rows.Next() {
		stored, err := scanStored(rows)
		if err != nil {
			return nil, fmt.Errorf("FindCandidates: %w", err)
		}
		if recon.CandidateMatch(tx, &stored.Tx, receivedAt, stored.ReceivedAt, window) {
			out = append(out, stored)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindCandidates: %w", err)
	}
	return out, nil
}

// RecordCandidate persists one candidate pairing for later review.
// Hashes are stored in lexical order so (a, b) and (b, a) are one row.
func (s *Store) RecordCandidate(ctx context.Context, hashA, hashB, reason string) error {
	if hashA > hashB {
		hashA, hashB = hashB, hashA
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO candidate_matches (hash_a, hash_b, reason, created_at)
		VALUES (?, ?, ?, ?)`,
		hashA, hashB, reason, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("RecordCandidate: %w", err)
	}
	return nil
}

// Recent returns the newest records by receive time.
func (s *Store) Recent(ctx context.Context, limit int) ([]Stored, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sender, bank, hash, amount, currency, tx_type, merchant,
		       account_last4, balance, reference, credit_limit,
		       is_from_card, received_at
		FROM transactions
		ORDER BY received_at DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}
	defer rows.Close()

	var out []Stored
	for rows.Next() {
		stored, err := scanStored(rows)
		if err != nil {
			return nil, fmt.Errorf("Recent: %w", err)
		}
		out = append(out, stored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}
	return out, nil
}

func scanStored(rows *sql.Rows) (Stored, error) {
	var (
		st                  Stored
		amount, txType      string
		balance, creditLim  sql.NullString
		isFromCard          int
		receivedAtMillis    int64
	)
	err := rows.Scan(&st.Sender, &st.Bank, &st.Tx.Hash, &amount,
		&st.Tx.Currency, &txType, &st.Tx.Merchant, &st.Tx.AccountLast4,
		&balance, &st.Tx.Reference, &creditLim, &isFromCard,
		&receivedAtMillis)
	if err != nil {
		return Stored{}, fmt.Errorf("scanStored: %w", err)
	}

	st.Tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return Stored{}, fmt.Errorf("scanStored: amount %q: %w", amount, err)
	}
	st.Tx.Type = domain.Type(txType)
	if balance.Valid {
		d, err := decimal.NewFromString(balance.String)
		if err != nil {
			return Stored{}, fmt.Errorf("scanStored: balance %q: %w", balance.String, err)
		}
		st.Tx.Balance = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	if creditLim.Valid {
		d, err := decimal.NewFromString(creditLim.String)
		if err != nil {
			return Stored{}, fmt.Errorf("scanStored: credit_limit %q: %w", creditLim.String, err)
		}
		st.Tx.CreditLimit = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	st.Tx.IsFromCard = isFromCard != 0
	st.ReceivedAt = time.UnixMilli(receivedAtMillis).UTC()
	return st, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
