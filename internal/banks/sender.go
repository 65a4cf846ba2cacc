package banks

import "strings"

// matchesSender reports whether a raw sender ID belongs to an
// institution identified by the given DLT bank codes or bare names.
// Matching tolerates case differences, the hyphenated telecom routing
// scheme (2-letter prefix + bank code + optional suffix letter, e.g.
// "AX-AXISBK-S"), bare bank-name senders and numeric short codes.
func matchesSender(sender string, codes, names []string) bool {
	s := strings.ToUpper(strings.TrimSpace(sender))
	if s == "" {
		return false
	}

	for _, n := range names {
		if s == strings.ToUpper(n) {
			return true
		}
	}

	seg := bankSegment(s)
	for _, c := range codes {
		if seg == strings.ToUpper(c) {
			return true
		}
	}
	return false
}

// bankSegment extracts the institution code from a sender ID:
// "AX-AXISBK-S" -> "AXISBK", "VM-BOBTXN" -> "BOBTXN", "AXISBK" -> "AXISBK".
// The leading 2-letter segment is telecom routing, not institution
// identity, and is skipped only when a further segment exists.
func bankSegment(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) >= 2 && len(parts[0]) == 2 {
		return parts[1]
	}
	return parts[0]
}
