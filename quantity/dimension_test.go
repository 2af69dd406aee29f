package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quants/errors"
)

func TestUnitBySymbol(t *testing.T) {
	u, ok := UnitBySymbol(strides, "lp")
	assert.True(t, ok)
	assert.Equal(t, leaps, u)

	_, ok = UnitBySymbol(strides, "LP")
	assert.False(t, ok, "symbol lookup is case-sensitive")

	_, ok = UnitBySymbol(strides, "furlong")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantUnit  stride
	}{
		{"value space unit", "10 pc", 10, paces},
		{"no space", "10pc", 10, paces},
		{"negative decimal", "-10.5 st", -10.5, steps},
		{"explicit plus", "+3 lp", 3, leaps},
		{"exponent", "1.5e3 pc", 1500, paces},
		{"uppercase exponent", "1.5E-2 pc", 0.015, paces},
		{"signed exponent", "2e+2 st", 200, steps},
		{"surrounding whitespace", "  42 lp  ", 42, leaps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(strides, tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantValue, q.Value(), 1e-12)
			assert.Equal(t, tt.wantUnit, q.Unit())
		})
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unit only", "pc"},
		{"value only", "10"},
		{"unknown unit", "10 furlongs"},
		{"two decimal points", "1.2.3 pc"},
		{"bare sign", "- pc"},
		{"garbage", "ten paces"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strides, tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "Distance", perr.Dimension)
			assert.Equal(t, tt.input, perr.Input)
		})
	}
}

func TestMustParse(t *testing.T) {
	q := MustParse(strides, "2 lp")
	assert.Equal(t, dist(2, leaps), q)

	assert.Panics(t, func() {
		MustParse(strides, "nonsense")
	})
}
