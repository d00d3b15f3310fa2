package fine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/casefine/internal/fine"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
)

func TestCompute(t *testing.T) {
	type testCase struct {
		name       string
		offense    offense.Type
		priors     int
		wantAmount string
	}

	tests := []testCase{
		{
			name:       "FirstOffenseIsBaseFine",
			offense:    offense.TypeParkingViolation,
			priors:     0,
			wantAmount: "75",
		},
		{
			name:       "OnePriorAddsQuarter",
			offense:    offense.TypeParkingViolation,
			priors:     1,
			wantAmount: "93.75",
		},
		{
			name:       "TwoPriors",
			offense:    offense.TypeNoiseDisturbance,
			priors:     2,
			wantAmount: "225",
		},
		{
			name:       "TenPriors",
			offense:    offense.TypeEnvironmental,
			priors:     10,
			wantAmount: "3500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fine.Compute(tt.offense, tt.priors)
			require.NoError(t, err)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.wantAmount)),
				"got %s, want %s", got, tt.wantAmount)
		})
	}
}

func TestCompute_UnknownType(t *testing.T) {
	_, err := fine.Compute(offense.Type("jaywalking"), 0)
	assert.Error(t, err)
}
