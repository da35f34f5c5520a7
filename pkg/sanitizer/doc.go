// Package sanitizer normalizes user supplied identity fields before they are
// stored or compared.
//
// Emails are the login identity, so two spellings that a user considers the
// same address must normalize to the same string:
//
//	sanitizer.NormalizeEmail("  Alice@Example.COM ") // "alice@example.com"
//
// Normalization uses Unicode NFC (golang.org/x/text/unicode/norm) followed by
// language-neutral lower casing (golang.org/x/text/cases).
package sanitizer
