package domain

import "strings"

// ValidIdentity reports whether s is an email-shaped identity: non-empty,
// no whitespace, exactly one '@', and at least one '.' after it.
func ValidIdentity(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n\r") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	rest := s[at+1:]
	dot := strings.Index(rest, ".")
	// The dot must separate non-empty labels on both sides.
	return dot > 0 && dot < len(rest)-1
}
