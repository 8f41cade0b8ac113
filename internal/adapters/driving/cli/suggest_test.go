package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCmd_RequiresPrefix(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("suggest")

	require.Error(t, err)
}

func TestSuggestCmd_MatchesPlaceAndFacets(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("suggest", "ar")

	require.NoError(t, err)
	assert.Contains(t, out, "Aria Cafe")
	assert.Contains(t, out, "parking")
}

func TestSuggestCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("suggest", "zzzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No suggestions.")
}

func TestSuggestCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	suggestJSON = true
	defer func() { suggestJSON = false }()

	out, err := execute("suggest", "wifi")

	require.NoError(t, err)
	assert.Contains(t, out, `"amenities"`)
	assert.Contains(t, out, "wifi")
}
