// Package banks holds one parser per institution plus the shared rule
// machinery they are built from. Every parser is an independent variant
// of the same contract: claim a sender, classify a message body, extract
// a canonical transaction. Parsers hold no mutable state and are safe
// for unsynchronized concurrent use.
package banks

import (
	"regexp"
	"strings"
	"time"

	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/extract"
)

// Shorthand for the pattern tables; keeps per-bank files readable.
const (
	income   = domain.TypeIncome
	expense  = domain.TypeExpense
	transfer = domain.TypeTransfer
)

// Parser is the per-institution contract.
type Parser interface {
	// Name identifies the institution, e.g. "axis".
	Name() string

	// CanHandle reports whether this parser owns the given sender ID.
	CanHandle(sender string) bool

	// ShouldParse reports whether the body is likely a transaction
	// notification (as opposed to an OTP, promo, bill reminder or
	// declined-transaction notice). Conservative: extraction still
	// fails closed on missing fields.
	ShouldParse(body string) bool

	// Parse extracts the canonical record. Returns (nil, false) when no
	// pattern fully matches or a mandatory field is missing — never a
	// partially populated record.
	Parse(body, sender string, receivedAt time.Time) (*domain.Transaction, bool)
}

// pattern is one extraction rule. Patterns are evaluated in declaration
// order, most specific first; the first pattern whose required capture
// groups are all present wins, and partial matches never merge across
// patterns.
//
// Recognized named groups: amount (mandatory), currency, merchant,
// account, balance, ref, limit.
type pattern struct {
	re *regexp.Regexp

	// kind is the directional classification for this message shape.
	// TypeExpense is refined further (transfer / investment / credit)
	// from counterparty semantics and the card flags.
	kind domain.Type

	// card marks the instrument as a debit/credit card rather than an
	// account rail.
	card bool

	// credit marks the card as a credit card, so card debits classify
	// as CREDIT rather than EXPENSE.
	credit bool

	// post, when set, adjusts the record after generic field mapping.
	post func(tx *domain.Transaction, groups map[string]string)
}

// rules is the shared declarative parser implementation. Each bank file
// instantiates one with its sender codes, lexical markers, default
// currency and ordered pattern list.
type rules struct {
	name     string
	currency string   // default currency when the message has none
	codes    []string // DLT header bank codes ("AXISBK" in "AX-AXISBK-S")
	names    []string // bare-name and numeric short-code senders
	accept   []string // lowercase markers, any one accepts
	reject   []string // lowercase markers, any one rejects (evaluated first)
	patterns []pattern
}

// Markers rejected for every institution. Per-bank reject lists extend
// this, never replace it.
var commonReject = []string{
	"otp",
	"one time password",
	"one-time password",
	"verification code",
	"will be due",
	"is due on",
	"due date",
	"declined",
	"failed",
	"could not be processed",
	"has requested",
	"payment request",
	"cashback offer",
	"special offer",
	"congratulations",
	"apply now",
	"autopay",
	"e-mandate",
	"insufficient",
}

func (r *rules) Name() string { return r.name }

func (r *rules) CanHandle(sender string) bool {
	return matchesSender(sender, r.codes, r.names)
}

func (r *rules) ShouldParse(body string) bool {
	text := strings.ToLower(extract.Deobfuscate(body))
	for _, marker := range commonReject {
		if strings.Contains(text, marker) {
			return false
		}
	}
	for _, marker := range r.reject {
		if strings.Contains(text, marker) {
			return false
		}
	}
	for _, marker := range r.accept {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func (r *rules) Parse(body, sender string, receivedAt time.Time) (*domain.Transaction, bool) {
	text := extract.Deobfuscate(body)

	for _, p := range r.patterns {
		groups := findGroups(p.re, text)
		if groups == nil {
			continue
		}

		amount, err := extract.PositiveAmount(groups["amount"])
		if err != nil {
			// Matched shape with an unparsable amount: this pattern did
			// not fully succeed, keep going.
			continue
		}

		tx := &domain.Transaction{
			Amount:       amount,
			Currency:     extract.Currency(groups["currency"], r.currency),
			Merchant:     extract.CleanMerchant(groups["merchant"]),
			AccountLast4: extract.AccountLast4(groups["account"]),
			Balance:      extract.OptionalAmount(groups["balance"]),
			Reference:    strings.TrimSpace(groups["ref"]),
			CreditLimit:  extract.OptionalAmount(groups["limit"]),
			IsFromCard:   p.card,
		}

		kind := p.kind
		if kind == domain.TypeExpense {
			kind = refineDebit(tx.Merchant, text, p.card, p.credit)
		}
		tx.Type = kind

		if p.post != nil {
			p.post(tx, groups)
		}

		if err := tx.Validate(); err != nil {
			return nil, false
		}
		return tx, true
	}
	return nil, false
}

// creditWhenGroup returns a post hook that reclassifies a card expense
// as credit-card spend when the named group captured "credit", for
// formats where one pattern covers both card classes.
func creditWhenGroup(group string) func(tx *domain.Transaction, groups map[string]string) {
	return func(tx *domain.Transaction, groups map[string]string) {
		if strings.Contains(strings.ToLower(groups[group]), "credit") && tx.Type == domain.TypeExpense {
			tx.Type = domain.TypeCredit
		}
	}
}

// findGroups runs the pattern and maps named capture groups to their
// submatches. Returns nil when the pattern does not match.
func findGroups(re *regexp.Regexp, text string) map[string]string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	groups := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" && m[i] != "" {
			groups[name] = m[i]
		}
	}
	return groups
}
