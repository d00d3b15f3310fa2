package intake_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/casefine/internal/intake"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
)

const sampleExport = `TICKETEX 3000 Export
Generated;2026-03-01

full_name;date_of_birth;address;location;offense_date;offense_type;evidence
Jane Smith;1990-06-15;12 Harbor St;Main St & 4th Ave;2026-02-20;parking_violation;Photo ref 4471
Miguel Torres;1985-01-02;9 Elm Rd;Dock 3;2026-02-21;noise_disturbance;
;;;;;
Ana Pereira;1978-11-30;7 Oak Ln;Market Sq;2026-02-22;WASTE_DISPOSAL;Witness statement
`

func TestParser_Parse(t *testing.T) {
	subs, err := intake.NewParser().Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, subs, 3)

	first := subs[0]
	assert.Equal(t, "Jane Smith", first.FullName)
	assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), first.DateOfBirth)
	assert.Equal(t, "12 Harbor St", first.Address)
	assert.Equal(t, "Main St & 4th Ave", first.Location)
	assert.Equal(t, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, offense.TypeParkingViolation, first.Type)
	assert.Equal(t, "Photo ref 4471", first.EvidenceNote)

	assert.Empty(t, subs[1].EvidenceNote)

	// Offense types are matched case-insensitively.
	assert.Equal(t, offense.TypeWasteDisposal, subs[2].Type)
}

func TestParser_ParseNoEvidenceColumn(t *testing.T) {
	input := "full_name;date_of_birth;address;location;offense_date;offense_type\n" +
		"Jane Smith;1990-06-15;12 Harbor St;Main St;2026-02-20;parking_violation\n"

	subs, err := intake.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Empty(t, subs[0].EvidenceNote)
}

func TestParser_ParseWindows1252(t *testing.T) {
	input := "full_name;date_of_birth;address;location;offense_date;offense_type\n" +
		"José Muñoz;1990-06-15;12 Harbor St;München Platz;2026-02-20;parking_violation\n"

	encoded, err := charmap.Windows1252.NewEncoder().String(input)
	require.NoError(t, err)

	subs, err := intake.NewParser().Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "José Muñoz", subs[0].FullName)
	assert.Equal(t, "München Platz", subs[0].Location)
}

func TestParser_ParseErrors(t *testing.T) {
	type testCase struct {
		name  string
		input string
	}

	header := "full_name;date_of_birth;address;location;offense_date;offense_type\n"

	tests := []testCase{
		{
			name:  "NoHeader",
			input: "just some text\nno columns here\n",
		},
		{
			name:  "MissingName",
			input: header + ";1990-06-15;addr;loc;2026-02-20;parking_violation\n",
		},
		{
			name:  "BadBirthDate",
			input: header + "Jane Smith;15/06/1990;addr;loc;2026-02-20;parking_violation\n",
		},
		{
			name:  "BadOffenseDate",
			input: header + "Jane Smith;1990-06-15;addr;loc;soon;parking_violation\n",
		},
		{
			name:  "UnknownOffenseType",
			input: header + "Jane Smith;1990-06-15;addr;loc;2026-02-20;jaywalking\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs, err := intake.NewParser().Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
			assert.Nil(t, subs, "a bad row fails the whole batch")
		})
	}
}
