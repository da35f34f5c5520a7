package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MaxNameLength caps display names, counted in runes.
const MaxNameLength = 100

// NormalizeEmail returns the canonical form of an email used as a login
// identity: surrounding space trimmed, Unicode NFC, lower case.
// Inputs that are not a single local@domain pair are returned trimmed and
// lowercased so they still compare consistently.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = norm.NFC.String(email)
	// cases.Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(email)
}

// ValidEmail performs a structural check only: one '@', non-empty local part,
// a dotted domain, no whitespace or control characters.
func ValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return strings.IndexFunc(email, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) < 0
}

// NormalizeName trims a display name, drops control characters, collapses
// runs of whitespace and truncates to MaxNameLength runes.
func NormalizeName(name string) string {
	name = norm.NFC.String(name)
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	name = strings.Join(strings.Fields(name), " ")

	if r := []rune(name); len(r) > MaxNameLength {
		name = strings.TrimSpace(string(r[:MaxNameLength]))
	}
	return name
}

// MaskEmail keeps the domain and the first character of the local part so
// an address can be logged without exposing it.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || local == "" {
		return "***"
	}
	r := []rune(local)
	return string(r[0]) + strings.Repeat("*", len(r)-1) + "@" + domain
}
