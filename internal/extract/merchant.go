package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// Legal suffixes trimmed from the end of merchant names. Bank messages
// truncate merchant fields at fixed widths, so a trailing token that is a
// prefix of one of these ("Limi", "Priv") is trimmed too.
var legalSuffixes = []string{
	"private", "limited", "pvt", "ltd", "llp", "inc", "corp",
}

// CleanMerchant normalizes a raw counterparty capture: trims surrounding
// punctuation, collapses whitespace runs, drops trailing legal suffixes
// (including width-truncated ones) and converts ALL-CAPS multi-word names
// to title case. Single tokens and mixed-case names are left as they are,
// so true acronyms survive. Embedded metadata such as masked account
// numbers inside a transfer description is preserved verbatim.
func CleanMerchant(s string) string {
	name := strings.Trim(strings.TrimSpace(s), ".,:;-")
	name = spaceRuns.ReplaceAllString(name, " ")
	if name == "" {
		return ""
	}

	words := strings.Split(name, " ")
	for len(words) > 1 && isLegalSuffix(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	name = strings.Join(words, " ")

	if len(words) > 1 && isAllCaps(name) {
		name = titleCase(words)
	}
	return name
}

func isLegalSuffix(word string) bool {
	w := strings.ToLower(strings.Trim(word, "."))
	if len(w) < 2 {
		return false
	}
	for _, suffix := range legalSuffixes {
		if strings.HasPrefix(suffix, w) {
			return true
		}
	}
	return false
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func titleCase(words []string) string {
	out := make([]string, len(words))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		out[i] = string(runes)
	}
	return strings.Join(out, " ")
}
