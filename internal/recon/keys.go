// Package recon derives the deduplication keys for parsed transactions:
// the exact content hash used to suppress repeated deliveries of the same
// message, and the heuristic fallback key used to flag likely duplicates
// reported by two different institutions.
package recon

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// DefaultWindow is the tolerance applied when matching the same
// real-world event across institutions. An aggregator SMS typically
// trails the originating bank by well under this.
const DefaultWindow = 3 * time.Minute

// Hash computes the deterministic content hash for a parsed record:
// sha256 over the normalized (sender, amount, type, account,
// timestamp-bucket) tuple. The timestamp is bucketed to the minute, so
// duplicate deliveries of one message hash identically while distinct
// transactions a minute apart do not. Re-parsing the identical message
// always yields the identical hash.
func Hash(sender string, tx *domain.Transaction, receivedAt time.Time) string {
	bucket := receivedAt.UTC().Truncate(time.Minute).Unix()
	payload := strings.Join([]string{
		strings.ToUpper(strings.TrimSpace(sender)),
		tx.Amount.StringFixed(2),
		tx.Type.String(),
		tx.AccountLast4,
		strconv.FormatInt(bucket, 10),
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Annotate fills in the record's Hash. Called once by the engine after
// extraction, before the record is handed to the caller.
func Annotate(sender string, tx *domain.Transaction, receivedAt time.Time) {
	tx.Hash = Hash(sender, tx, receivedAt)
}

// SameReference reports whether two records carry the same non-blank
// bank-assigned reference. This is the primary cross-message equality.
func SameReference(a, b *domain.Transaction) bool {
	ar := strings.TrimSpace(a.Reference)
	br := strings.TrimSpace(b.Reference)
	return ar != "" && ar == br
}

// FallbackKey returns the secondary matching key for a record:
// account, exact amount and type. Records sharing a fallback key within
// the time window are duplicate candidates, not confirmed duplicates —
// two distinct real transactions of the same amount in the window are
// indistinguishable from this signal alone.
func FallbackKey(tx *domain.Transaction) string {
	return strings.Join([]string{
		tx.AccountLast4,
		tx.Amount.StringFixed(2),
		tx.Type.String(),
	}, "|")
}

// CandidateMatch reports whether two records plausibly describe the same
// real-world event: either their references agree, or their fallback
// keys agree and the receive timestamps fall within the window. Callers
// must treat a fallback-only match as a reviewable signal, never as an
// automatic merge; when several candidates match, resolution is left to
// the caller.
func CandidateMatch(a, b *domain.Transaction, ta, tb time.Time, window time.Duration) bool {
	if SameReference(a, b) {
		return true
	}
	if FallbackKey(a) != FallbackKey(b) {
		return false
	}
	delta := ta.Sub(tb)
	if delta < 0 {
		delta = -delta
	}
	return delta <= window
}
