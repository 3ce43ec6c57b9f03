package service

import (
	"strings"
)

// weakPrefixes are common throwaway openings; a password starting with one
// of them (case-insensitively) forfeits the pattern bonus.
var weakPrefixes = []string{"123", "abc", "qwerty", "password", "admin", "welcome"}

const (
	// MaxPasswordStrength caps the rubric; the raw criteria sum to 7.
	MaxPasswordStrength = 5
)

// EvaluatePasswordStrength scores a candidate password on a 0-5 rubric.
// Each criterion is independent and additive:
//
//	+2 length >= 12, else +1 length >= 8
//	+1 contains an uppercase letter
//	+1 contains a lowercase letter
//	+1 contains a digit
//	+1 contains a character outside [A-Za-z0-9]
//	+1 does not start with a weak prefix
//
// The sum is clamped to 5. The empty string scores the defined minimum 0.
func EvaluatePasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	strength := 0

	if len(password) >= 12 {
		strength += 2
	} else if len(password) >= 8 {
		strength += 1
	}

	hasUpper, hasLower, hasDigit, hasSpecial := classifyChars(password)
	if hasUpper {
		strength++
	}
	if hasLower {
		strength++
	}
	if hasDigit {
		strength++
	}
	if hasSpecial {
		strength++
	}

	if !hasWeakPrefix(password) {
		strength++
	}

	if strength > MaxPasswordStrength {
		strength = MaxPasswordStrength
	}
	return strength
}

// PasswordImprovements lists advice for each missing rubric property, in
// fixed order: length, uppercase, lowercase, digit, special character.
// Advisory only; it never feeds back into the score.
func PasswordImprovements(password string) []string {
	improvements := []string{}

	hasUpper, hasLower, hasDigit, hasSpecial := classifyChars(password)

	if len(password) < 12 {
		improvements = append(improvements, "Use at least 12 characters")
	}
	if !hasUpper {
		improvements = append(improvements, "Include uppercase letters")
	}
	if !hasLower {
		improvements = append(improvements, "Include lowercase letters")
	}
	if !hasDigit {
		improvements = append(improvements, "Include numbers")
	}
	if !hasSpecial {
		improvements = append(improvements, "Include special characters")
	}

	return improvements
}

// classifyChars reports which ASCII character classes occur in s; anything
// outside [A-Za-z0-9] counts as special.
func classifyChars(s string) (hasUpper, hasLower, hasDigit, hasSpecial bool) {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return
}

func hasWeakPrefix(password string) bool {
	lower := strings.ToLower(password)
	for _, prefix := range weakPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
