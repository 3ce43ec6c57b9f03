package service

import (
	"testing"

	"secaware_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phishingScenario() *model.Scenario {
	return &model.Scenario{
		Type:              model.ScenarioPhishing,
		CorrectAction:     "phishing",
		CorrectFeedback:   "Well spotted.",
		IncorrectFeedback: "This was a phishing attempt.",
		Indicators:        []string{"Lookalike domain", "Urgency"},
	}
}

func TestJudgeAction(t *testing.T) {
	scenario := phishingScenario()

	t.Run("matching action is correct", func(t *testing.T) {
		verdict := JudgeAction(scenario, "phishing")
		assert.True(t, verdict.Correct)
		assert.Equal(t, "Well spotted.", verdict.Message)
		assert.Equal(t, []string{"Lookalike domain", "Urgency"}, verdict.Indicators)
	})

	t.Run("wrong action is incorrect", func(t *testing.T) {
		verdict := JudgeAction(scenario, "safe")
		assert.False(t, verdict.Correct)
		assert.Equal(t, "This was a phishing attempt.", verdict.Message)
		assert.Equal(t, []string{"Lookalike domain", "Urgency"}, verdict.Indicators)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		verdict := JudgeAction(scenario, "Phishing")
		assert.False(t, verdict.Correct)
	})

	t.Run("no strength fields for action scenarios", func(t *testing.T) {
		verdict := JudgeAction(scenario, "phishing")
		assert.Nil(t, verdict.Strength)
		assert.Nil(t, verdict.Improvements)
	})
}

func TestJudgePassword(t *testing.T) {
	scenario := &model.Scenario{
		Type: model.ScenarioPassword,
		PasswordContext: &model.PasswordContext{
			SystemName:       "Corporate VPN",
			RequiredStrength: 4,
		},
		CorrectAction: "password",
	}

	t.Run("strong password passes", func(t *testing.T) {
		verdict := JudgePassword(scenario, "Tr0ub4dor&3Extra")
		assert.True(t, verdict.Correct)
		assert.Equal(t, "This password meets the security requirements.", verdict.Message)
		require.NotNil(t, verdict.Strength)
		assert.Equal(t, 5, *verdict.Strength)
		assert.Empty(t, verdict.Improvements)
	})

	t.Run("weak password fails with advice", func(t *testing.T) {
		verdict := JudgePassword(scenario, "password123")
		assert.False(t, verdict.Correct)
		assert.Equal(t, "This password does not meet the security requirements.", verdict.Message)
		require.NotNil(t, verdict.Strength)
		assert.Equal(t, 3, *verdict.Strength)
		assert.Equal(t, []string{
			"Use at least 12 characters",
			"Include uppercase letters",
			"Include special characters",
		}, verdict.Improvements)
	})

	t.Run("score equal to threshold passes", func(t *testing.T) {
		// "qwerty1!" scores exactly 4.
		verdict := JudgePassword(scenario, "qwerty1!")
		assert.True(t, verdict.Correct)
	})

	t.Run("missing password context means threshold zero", func(t *testing.T) {
		bare := &model.Scenario{Type: model.ScenarioPassword, CorrectAction: "password"}
		verdict := JudgePassword(bare, "")
		assert.True(t, verdict.Correct)
	})
}
