package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSupportedStrategies(t *testing.T) {
	t.Parallel()
	supported := GetSupportedStrategies()
	require.Len(t, supported, 3)
	seen := make(map[string]bool)
	for _, s := range supported {
		assert.NotEmpty(t, s.Name())
		assert.NotEmpty(t, s.Description())
		assert.False(t, seen[s.Name()], "duplicate strategy name %v", s.Name())
		seen[s.Name()] = true
	}
}

func TestLoadStrategyByName(t *testing.T) {
	t.Parallel()
	_, err := LoadStrategyByName("not-a-strategy")
	assert.ErrorIs(t, err, ErrStrategyNotFound)

	s, err := LoadStrategyByName("momentum")
	require.NoError(t, err)
	assert.Equal(t, "momentum", s.Name())

	// lookup is case insensitive
	s, err = LoadStrategyByName("DollarCostAverage")
	require.NoError(t, err)
	assert.Equal(t, "dollarcostaverage", s.Name())
}
