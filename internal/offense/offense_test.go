package offense_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/casefine/internal/offense"
)

func TestCatalog(t *testing.T) {
	types := offense.Types()
	assert.Len(t, types, 8)

	info, ok := offense.Lookup(offense.TypeParkingViolation)
	require.True(t, ok)
	assert.True(t, info.BaseFine.Equal(decimal.NewFromInt(75)))

	_, ok = offense.Lookup(offense.Type("jaywalking"))
	assert.False(t, ok)

	assert.True(t, offense.TypeFoodSafety.IsValid())
	assert.False(t, offense.Type("").IsValid())
}

func TestOffense_WithinStatuteOfLimitations(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name string
		date time.Time
		want bool
	}

	tests := []testCase{
		{
			name: "Recent",
			date: today.AddDate(0, -1, 0),
			want: true,
		},
		{
			name: "JustInside",
			date: today.AddDate(0, -24, 1),
			want: true,
		},
		{
			name: "ExactlyAtLimit",
			date: today.AddDate(0, -24, 0),
			want: false,
		},
		{
			name: "Expired",
			date: today.AddDate(0, -30, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := offense.Offense{Date: tt.date, Type: offense.TypeParkingViolation}
			assert.Equal(t, tt.want, o.WithinStatuteOfLimitations(today, 24))
		})
	}
}
