package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseIDInvalid(t *testing.T) {
	for _, value := range []string{"abc", "", "4.2"} {
		_, err := ParseID(value)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid id")
	}
}
