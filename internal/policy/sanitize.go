package policy

import "strings"

var angleBrackets = strings.NewReplacer("<", " ", ">", " ")

// SanitizeText blanks angle brackets in user-supplied text before storage so
// stored values cannot carry markup. This is a storage mitigation, not a
// moderation rule; it always runs after profanity masking.
func SanitizeText(s string) string {
	return strings.TrimSpace(angleBrackets.Replace(s))
}
