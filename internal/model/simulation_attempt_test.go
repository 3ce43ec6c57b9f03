package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationAttemptBeforeCreate(t *testing.T) {
	a := SimulationAttempt{UserID: 7, ScenarioID: 1}

	require.NoError(t, a.BeforeCreate(nil))
	_, err := uuid.Parse(a.UUID)
	assert.NoError(t, err, "hook must assign a well-formed identifier")

	// Two inserted attempts never share an identifier.
	b := SimulationAttempt{UserID: 7, ScenarioID: 1}
	require.NoError(t, b.BeforeCreate(nil))
	assert.NotEqual(t, a.UUID, b.UUID)

	// A pre-assigned identifier is kept.
	first := a.UUID
	require.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, first, a.UUID)
}
