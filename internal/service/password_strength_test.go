package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePasswordStrength(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		expected int
	}{
		{"empty string scores the minimum", "", 0},
		{"all criteria met clamps at 5", "Tr0ub4dor&3Extra", 5},
		{"denylisted prefix withholds the pattern bonus", "password123", 3},
		{"short lowercase only", "abcdefg", 1}, // lowercase bonus only; "abc" prefix is denylisted
		{"qwerty prefix", "qwerty1!", 4}, // len 8 (+1), lower, digit, special; no pattern bonus
		{"digits only weak prefix", "12345678", 2},
		{"digits only safe prefix", "98765432", 3},
		{"mixed without length", "aB1!", 5},
		{"uppercase only long", "SAFEPASSWORDX", 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EvaluatePasswordStrength(tc.password))
		})
	}
}

func TestEvaluatePasswordStrengthBounds(t *testing.T) {
	// Raw criteria sum to 7; the clamp must hold for any input.
	inputs := []string{
		"",
		"a",
		"Tr0ub4dor&3Extra",
		"Sup3r-Str0ng_P@ssw0rd!",
		"ALLUPPERCASELETTERS",
		"密码Test1!密码密码",
		"    spaces count as special    ",
		"zzzzzzzzzzzzZZZZZZ999!!!",
	}

	for _, input := range inputs {
		score := EvaluatePasswordStrength(input)
		assert.GreaterOrEqual(t, score, 0, "input %q", input)
		assert.LessOrEqual(t, score, MaxPasswordStrength, "input %q", input)
	}
}

func TestEvaluatePasswordStrengthMonotonic(t *testing.T) {
	// Adding a missing character class never lowers the score.
	pairs := []struct {
		weaker   string
		stronger string
	}{
		{"secret1!", "Secret1!"},     // add uppercase
		{"SECRET1!", "SECRETa1!"},    // add lowercase
		{"nodigits!", "nodigits1!"},  // add digit
		{"noSpecial1", "noSpecial1!"}, // add special
	}

	for _, p := range pairs {
		assert.GreaterOrEqual(t,
			EvaluatePasswordStrength(p.stronger),
			EvaluatePasswordStrength(p.weaker),
			"%q -> %q", p.weaker, p.stronger)
	}
}

func TestPasswordImprovements(t *testing.T) {
	t.Run("everything missing, fixed order", func(t *testing.T) {
		improvements := PasswordImprovements("")
		assert.Equal(t, []string{
			"Use at least 12 characters",
			"Include uppercase letters",
			"Include lowercase letters",
			"Include numbers",
			"Include special characters",
		}, improvements)
	})

	t.Run("nothing missing", func(t *testing.T) {
		assert.Empty(t, PasswordImprovements("Tr0ub4dor&3Extra"))
	})

	t.Run("partial", func(t *testing.T) {
		improvements := PasswordImprovements("lowercaseonlybutlong")
		assert.Equal(t, []string{
			"Include uppercase letters",
			"Include numbers",
			"Include special characters",
		}, improvements)
	})

	t.Run("advice does not change the score", func(t *testing.T) {
		password := "password123"
		before := EvaluatePasswordStrength(password)
		PasswordImprovements(password)
		assert.Equal(t, before, EvaluatePasswordStrength(password))
	})
}
