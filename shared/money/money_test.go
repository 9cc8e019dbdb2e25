package money_test

import (
	"fieldserve/shared/money"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		places   int32
		expected string
	}{
		{"exact", "10.25", 2, "10.25"},
		{"tie rounds up", "10.125", 2, "10.13"},
		{"below tie rounds down", "10.1249", 2, "10.12"},
		{"negative tie rounds towards positive", "-10.125", 2, "-10.12"},
		{"zero places", "2.5", 0, "3"},
		{"long expansion", "33.333333333", 2, "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.RoundHalfUp(decimal.RequireFromString(tt.input), tt.places)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}

func TestPercent(t *testing.T) {
	got := money.Percent(decimal.NewFromInt(900), decimal.NewFromInt(9))

	assert.True(t, got.Equal(decimal.NewFromInt(81)))
}

func TestParse(t *testing.T) {
	d, err := money.Parse(" 12.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	d, err = money.Parse("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = money.Parse("abc")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	d, err := money.ParseAmount("10.010")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("10.01")))

	for _, value := range []string{"10.005", "0.004"} {
		_, err = money.ParseAmount(value)
		assert.ErrorIs(t, err, money.ErrPrecision, value)
	}

	_, err = money.ParseAmount("abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, money.ErrPrecision)
}

func TestClamp(t *testing.T) {
	lower, upper := decimal.Zero, decimal.NewFromInt(100)

	assert.True(t, money.Clamp(decimal.NewFromInt(-5), lower, upper).Equal(lower))
	assert.True(t, money.Clamp(decimal.NewFromInt(150), lower, upper).Equal(upper))
	assert.True(t, money.Clamp(decimal.NewFromInt(50), lower, upper).Equal(decimal.NewFromInt(50)))
}
