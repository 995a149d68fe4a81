package service

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// emailPattern is a basic syntactic check, same rule on signup and admin paths.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the syntactic check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidName reports whether the trimmed name length is within [3,60].
func ValidName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= 3 && n <= 60
}

// ValidSignupPassword is the self-signup policy: length 8-16 with at least
// one upper-case letter and one special (non-word, non-space) character.
// It is intentionally stricter than ValidAdminPassword; the two rules are
// kept as independent predicates.
func ValidSignupPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case isSpecial(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}

// isSpecial matches anything outside word characters and whitespace.
func isSpecial(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return false
	}
	return true
}

// ValidAdminPassword is the admin-creation policy: length within [6,64].
func ValidAdminPassword(password string) bool {
	return len(password) >= 6 && len(password) <= 64
}

// Round1 rounds half up to one decimal place. Aggregates are recomputed from
// the full rating set and rounded once here, so repeated writes cannot drift.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
