package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	id, err := ParseUint("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	// Malformed ids are rejected instead of resolving to record 0.
	for _, input := range []string{"", "abc", "-1", "1.5", "0x10"} {
		_, err := ParseUint(input)
		assert.Error(t, err, "input %q", input)
	}

	id, err = ParseUint("0")
	require.NoError(t, err)
	assert.Equal(t, uint(0), id)
}
