package kbbi

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// nonWordRE strips everything that is not a letter, digit, whitespace
	// or underscore. Underscores survive the strip and are converted to
	// spaces afterwards, so "pi_jar" and "pi jar" share a key.
	nonWordRE = regexp.MustCompile(`[^\p{L}\p{N}\s_]+`)
	spacesRE  = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a lookup string into an index key: NFC-composed,
// lowercased, punctuation removed, underscores mapped to spaces, whitespace
// runs collapsed, and trimmed. It is idempotent, and empty or
// punctuation-only input yields "", which is never a valid index key.
//
// Example: "pi.jar" -> "pijar", "Rumah  Sakit" -> "rumah sakit".
func Normalize(s string) string {
	s = norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
	s = nonWordRE.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", " ")
	s = spacesRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
