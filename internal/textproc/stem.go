package textproc

import "strings"

// suffixRules are applied in order; the first matching rule wins. Each rule
// requires the stemmed result to keep at least minStemLen characters, which
// keeps short words like "bus" or "ring" intact.
var suffixRules = []struct {
	suffix  string
	replace string
}{
	{"ies", "y"},
	{"sses", "ss"},
	{"ing", ""},
	{"edly", ""},
	{"ed", ""},
	{"ly", ""},
	{"s", ""},
}

const minStemLen = 3

// stem reduces a token to a rough base form by stripping common English
// suffixes. This is deliberately not a full morphological analyzer; it only
// needs to map close variants ("designing", "designed", "designs") onto the
// same term so they share a vocabulary slot.
func stem(token string) string {
	if len(token) <= minStemLen {
		return token
	}
	for _, rule := range suffixRules {
		if !strings.HasSuffix(token, rule.suffix) {
			continue
		}
		// "ss" endings ("business", "class") are not plurals.
		if rule.suffix == "s" && strings.HasSuffix(token, "ss") {
			continue
		}
		stemmed := token[:len(token)-len(rule.suffix)] + rule.replace
		if len(stemmed) < minStemLen {
			return token
		}
		return stemmed
	}
	return token
}
