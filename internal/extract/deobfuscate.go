package extract

import "strings"

// Deobfuscate folds stylized Unicode glyphs back to plain ASCII so that
// keyword classification and pattern matching see normal text. Some
// issuers send spend alerts in "mathematical sans-serif" letters
// (e.g. "𝖲𝗉𝖾𝗇𝗍" for "Spent"), apparently to dodge naive keyword filters.
// Only the mathematical Latin alphabets, mathematical digits and
// fullwidth forms are folded; legitimate non-Latin scripts (Arabic,
// Cyrillic, Ethiopic) pass through untouched.
func Deobfuscate(s string) string {
	// Fast path: bodies without supplementary-plane or fullwidth glyphs.
	needsFold := false
	for _, r := range s {
		if (r >= 0x1D400 && r <= 0x1D7FF) || (r >= 0xFF01 && r <= 0xFF5E) {
			needsFold = true
			break
		}
	}
	if !needsFold {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

func foldRune(r rune) rune {
	switch {
	// Mathematical Latin alphabets: bold, italic, script, fraktur,
	// double-struck, sans-serif, monospace. 52-letter blocks (A-Z a-z).
	case r >= 0x1D400 && r <= 0x1D6A3:
		offset := (r - 0x1D400) % 52
		if offset < 26 {
			return 'A' + offset
		}
		return 'a' + offset - 26
	// Mathematical digits: bold, double-struck, sans-serif,
	// sans-serif bold, monospace. 10-digit blocks.
	case r >= 0x1D7CE && r <= 0x1D7FF:
		return '0' + (r-0x1D7CE)%10
	// Fullwidth ASCII variants.
	case r >= 0xFF01 && r <= 0xFF5E:
		return r - 0xFF01 + '!'
	}
	return r
}
