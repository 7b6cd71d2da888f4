package roles

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_SortedAndPopulated(t *testing.T) {
	names := List()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "ML Engineer")
	assert.Contains(t, names, "Backend Engineer")

	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestContext_KnownRole(t *testing.T) {
	ctx := Context("ML Engineer")

	// Known roles return their catalog entry as indented JSON.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(ctx), &decoded))
	assert.Contains(t, decoded, "core_technical")
}

func TestContext_UnknownRole(t *testing.T) {
	ctx := Context("Blacksmith")
	assert.Equal(t, "General skills for a Blacksmith role.", ctx)
}
