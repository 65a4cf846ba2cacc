// Package extract holds the field extraction primitives shared by every
// bank parser: amount and balance parsing, masked-account normalization,
// merchant cleanup, currency resolution and Unicode de-obfuscation.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	amountShape = regexp.MustCompile(`^\d+(\.\d+)?$`)
	// trailing direction markers some banks glue onto balances, e.g. "24898.57CR"
	trailingMarker = regexp.MustCompile(`(?i)(cr|dr)\.?$`)
)

// Amount parses a monetary token into an exact decimal. It accepts
// comma-grouped ("1,234.56"), Indian lakh-grouped ("1,23,456.78"),
// space-grouped ("12 345,67") and plain numerals, and rejects anything
// with non-numeric residue. Amounts are never parsed as floating point.
func Amount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSuffix(cleaned, "/-")
	cleaned = trailingMarker.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	// Space and apostrophe grouping (European and Swiss conventions).
	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ', '\'':
			return -1
		}
		return r
	}, cleaned)

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")

	switch {
	case hasComma && hasDot:
		// Comma is grouping, dot is the decimal point.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case hasComma:
		// A single comma followed by exactly two digits is a decimal
		// comma; everything else is grouping.
		idx := strings.LastIndex(cleaned, ",")
		if strings.Count(cleaned, ",") == 1 && len(cleaned)-idx-1 == 2 {
			cleaned = cleaned[:idx] + "." + cleaned[idx+1:]
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	if !amountShape.MatchString(cleaned) {
		return decimal.Zero, fmt.Errorf("Amount: %q is not a monetary value", s)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("Amount: parsing %q: %w", s, err)
	}
	return d, nil
}

// PositiveAmount parses a monetary token and additionally rejects zero.
// Parsers use it for the mandatory amount field so that a matched pattern
// with a degenerate amount still yields "no transaction".
func PositiveAmount(s string) (decimal.Decimal, error) {
	d, err := Amount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("PositiveAmount: %q is not positive", s)
	}
	return d, nil
}

// OptionalAmount parses a monetary token, returning an invalid
// NullDecimal when the token is absent or unparsable. Used for balances
// and credit limits, which never fail a parse on their own.
func OptionalAmount(s string) decimal.NullDecimal {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}
	}
	d, err := Amount(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
