package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quants/config"
	"github.com/teranos/quants/errors"
	"github.com/teranos/quants/market"
)

func TestResolveDimension(t *testing.T) {
	entry, err := resolveDimension("10 km", "")
	require.NoError(t, err)
	assert.Equal(t, "length", entry.Name)

	// Explicit --dim wins over inference.
	entry, err = resolveDimension("1 gr", "mass")
	require.NoError(t, err)
	assert.Equal(t, "mass", entry.Name)

	_, err = resolveDimension("10 km", "charisma")
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))

	_, err = resolveDimension("10 wizards", "")
	require.Error(t, err)
}

func TestFindRate(t *testing.T) {
	cfg := &config.Config{Rates: map[string]float64{"USD/EUR": 0.85}}

	rate, err := findRate(cfg, market.USD, market.EUR)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, rate.Rate(), 1e-12)

	// Reverse direction resolves the same configured pair.
	rate, err = findRate(cfg, market.EUR, market.USD)
	require.NoError(t, err)
	assert.Equal(t, market.USD, rate.Base())

	_, err = findRate(cfg, market.USD, market.GBP)
	require.Error(t, err)
	assert.True(t, errors.IsConversionError(err))
}
