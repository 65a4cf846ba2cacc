package extract

import (
	"regexp"
	"strings"
)

var maskRunes = map[rune]bool{
	'x': true, 'X': true, '*': true, '•': true, '#': true,
}

var trailingDigits = regexp.MustCompile(`\d{4,}$`)

// AccountLast4 normalizes a masked account or card fragment to its last
// 4 visible characters. It accepts X-masked ("XX0818"), asterisk-masked
// ("****5494"), dotted ("...5494") and dash-separated forms. When fewer
// than 4 true digits are visible the mask filler is kept (as 'X') rather
// than padded with digits, so the value can never be mistaken for a real
// account number.
func AccountLast4(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '/':
			return -1
		}
		if maskRunes[r] {
			return 'X'
		}
		return r
	}, strings.TrimSpace(s))

	if cleaned == "" {
		return ""
	}

	if m := trailingDigits.FindString(cleaned); m != "" {
		return m[len(m)-4:]
	}

	runes := []rune(cleaned)
	if len(runes) <= 4 {
		return string(runes)
	}
	return string(runes[len(runes)-4:])
}
