// Package engine is the single entry point for turning one raw bank
// notification into a canonical transaction record. It routes the
// sender to its institution parser, classifies the body, extracts the
// record and stamps the content hash.
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/banks"
	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/recon"
)

// Outcome explains why Parse did or did not produce a record. Only
// OutcomeParsed carries a record; the rest are expected conditions,
// not errors.
type Outcome string

const (
	// OutcomeParsed means a fully valid record was extracted.
	OutcomeParsed Outcome = "parsed"

	// OutcomeUnrecognizedSender means no registered institution claims
	// the sender ID.
	OutcomeUnrecognizedSender Outcome = "unrecognized_sender"

	// OutcomeNotTransaction means the sender is known but the body is
	// an OTP, promotion, reminder or other non-transaction message.
	OutcomeNotTransaction Outcome = "not_transaction"

	// OutcomeMalformedMatch means the body looked transactional but no
	// pattern extracted a complete, valid record. These are the
	// format-drift signal and are logged for review.
	OutcomeMalformedMatch Outcome = "malformed_match"
)

// Engine parses notifications. It holds no mutable state and is safe
// for unsynchronized concurrent use.
type Engine struct {
	log zerolog.Logger
}

// New returns an Engine logging through the given logger.
func New(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// Parse processes one message. The returned record is non-nil exactly
// when the outcome is OutcomeParsed; it is then valid per
// domain.Transaction.Validate and carries its content hash. Identical
// input always yields an identical record.
func (e *Engine) Parse(body, sender string, receivedAt time.Time) (*domain.Transaction, Outcome) {
	p := banks.Resolve(sender)
	if p == nil {
		return nil, OutcomeUnrecognizedSender
	}

	if !p.ShouldParse(body) {
		return nil, OutcomeNotTransaction
	}

	tx, ok := p.Parse(body, sender, receivedAt)
	if !ok {
		// A transactional-looking message the institution's patterns no
		// longer cover. Log the shape, not the body: bodies hold
		// account fragments and merchant names.
		e.log.Warn().
			Str("bank", p.Name()).
			Str("sender", sender).
			Int("body_len", len(body)).
			Msg("transactional message did not match any pattern")
		return nil, OutcomeMalformedMatch
	}

	recon.Annotate(sender, tx, receivedAt)
	return tx, OutcomeParsed
}

// ParseMillis is Parse for callers holding an epoch-milliseconds
// timestamp, the encoding used by SMS backup dumps.
func (e *Engine) ParseMillis(body, sender string, epochMillis int64) (*domain.Transaction, Outcome) {
	return e.Parse(body, sender, time.UnixMilli(epochMillis).UTC())
}
